package main

import (
	"context"
	"flag"
	"log"
	"os"

	"catring/internal/config"
	"catring/internal/db"
	"catring/internal/domain"
	"catring/internal/importer"
	productrepo "catring/internal/repository/product"
	userrepo "catring/internal/repository/user"
)

func main() {
	var (
		filePath     string
		catererEmail string
	)
	flag.StringVar(&filePath, "file", "", "Path to menu CSV (name, description, price, category, image_url)")
	flag.StringVar(&catererEmail, "caterer", "", "Email of the caterer that will own the imported dishes")
	flag.Parse()

	if filePath == "" || catererEmail == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	users := userrepo.NewPostgres(pool, logger)
	caterer, err := users.GetByEmail(ctx, catererEmail)
	if err != nil {
		logger.Fatalf("lookup caterer %s: %v", catererEmail, err)
	}
	if caterer.Role != domain.RoleCaterer {
		logger.Fatalf("user %s is not a caterer", catererEmail)
	}

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	products := productrepo.NewPostgres(pool, logger)
	imp := importer.NewCSVImporter(f, products, caterer.ID)

	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", count, err)
	}

	logger.Printf("imported %d products for %s", count, caterer.Name)
}
