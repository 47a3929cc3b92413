package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catring/internal/audit"
	"catring/internal/config"
	"catring/internal/db"
	"catring/internal/httpserver"
	"catring/internal/metrics"
	auditrepo "catring/internal/repository/audit"
	cartrepo "catring/internal/repository/cart"
	orderrepo "catring/internal/repository/order"
	productrepo "catring/internal/repository/product"
	tokenrepo "catring/internal/repository/token"
	userrepo "catring/internal/repository/user"
	cartsvc "catring/internal/service/cart"
	catalogsvc "catring/internal/service/catalog"
	checkoutsvc "catring/internal/service/checkout"
	customersvc "catring/internal/service/customer"
	ordersvc "catring/internal/service/order"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var publisher audit.Publisher
	if kp := audit.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AuditTopic); kp != nil {
		defer kp.Close()
		publisher = kp
	}
	recorder := audit.NewRecorder(auditrepo.NewPostgres(dbpool), publisher, logger)

	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	customerService := customersvc.New(userRepo, tokenRepo, recorder)
	catalogService := catalogsvc.New(productRepo, recorder)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo, recorder)
	checkoutService := checkoutsvc.New(cartRepo, orderRepo, userRepo, recorder)

	registry := prometheus.NewRegistry()
	serverMetrics := metrics.NewServerMetrics(registry)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CustomerSvc: customerService,
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		CheckoutSvc: checkoutService,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     serverMetrics,
		Registry:    registry,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
