package cart

import (
	"context"

	"catring/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const q = `
SELECT user_id::text, product_id::text, name, price_cents, COALESCE(image_url, ''), quantity, created_at
FROM cart_items
WHERE user_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var it domain.CartItem
		if err := rows.Scan(&it.UserID, &it.ProductID, &it.Name, &it.PriceCents, &it.ImageURL, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) AddItem(ctx context.Context, item domain.CartItem) error {
	const q = `
INSERT INTO cart_items (user_id, product_id, name, price_cents, image_url, quantity)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
ON CONFLICT (user_id, product_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity
`
	_, err := r.pool.Exec(ctx, q, item.UserID, item.ProductID, item.Name, item.PriceCents, item.ImageURL, item.Quantity)
	return err
}

func (r *postgresRepo) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE user_id = $2 AND product_id = $3
`
	cmd, err := r.pool.Exec(ctx, q, quantity, userID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Remove(ctx context.Context, userID, productID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	return err
}
