package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Category    string
	ImageURL    string
}

// Apply inserts a demo caterer and a small menu for manual testing. It is
// idempotent: the caterer upserts on email and dishes are skipped when a
// product with the same name already exists for that caterer.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	catererID, err := ensureCaterer(ctx, pool, "kitchen@catring.dev", "CatRing Demo Kitchen", "DemoKitchen1")
	if err != nil {
		return fmt.Errorf("ensure caterer: %w", err)
	}

	dishes := []productSeed{
		{
			Name:        "Butter Chicken",
			Description: "Tender chicken in a rich tomato and butter gravy",
			PriceCents:  1599,
			Category:    "Main Course",
		},
		{
			Name:        "Palak Paneer",
			Description: "Cottage cheese cubes simmered in spinach gravy",
			PriceCents:  1399,
			Category:    "Main Course",
		},
		{
			Name:        "Vegetable Biryani",
			Description: "Fragrant basmati rice layered with spiced vegetables",
			PriceCents:  1299,
			Category:    "Rice",
		},
		{
			Name:        "Samosa Platter",
			Description: "Crispy pastry triangles with spiced potato filling",
			PriceCents:  999,
			Category:    "Starters",
		},
		{
			Name:        "Gulab Jamun",
			Description: "Soft milk dumplings soaked in rose syrup",
			PriceCents:  799,
			Category:    "Desserts",
		},
		{
			Name:        "Masala Dosa",
			Description: "Crisp rice crepe with spiced potato stuffing",
			PriceCents:  1199,
			Category:    "South Indian",
		},
	}

	for _, d := range dishes {
		if err := insertDish(ctx, pool, catererID, d); err != nil {
			return fmt.Errorf("insert dish %s: %w", d.Name, err)
		}
	}

	return nil
}

func ensureCaterer(ctx context.Context, pool *pgxpool.Pool, email, name, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	const q = `
INSERT INTO users (email, password_hash, name, role)
VALUES ($1, $2, $3, 'caterer')
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, email, string(hashed), name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func insertDish(ctx context.Context, pool *pgxpool.Pool, catererID string, d productSeed) error {
	const q = `
INSERT INTO products (name, description, price_cents, category, image_url, created_by)
SELECT $1, $2, $3, $4, $5, $6
WHERE NOT EXISTS (
    SELECT 1 FROM products WHERE created_by = $6 AND name = $1
)
`
	_, err := pool.Exec(ctx, q, d.Name, d.Description, d.PriceCents, d.Category, d.ImageURL, catererID)
	return err
}
