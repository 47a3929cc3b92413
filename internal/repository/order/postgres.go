package order

import (
	"context"
	"errors"
	"io"
	"log"

	"catring/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) CreateFromCart(ctx context.Context, order domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var created domain.Order
	created.Items = order.Items
	err = tx.QueryRow(ctx, `
INSERT INTO orders (id, user_id, total_cents, status, address)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, user_id::text, total_cents, status, address, created_at
`, order.ID, order.UserID, order.TotalCents, order.Status, order.Address).Scan(
		&created.ID,
		&created.UserID,
		&created.TotalCents,
		&created.Status,
		&created.Address,
		&created.CreatedAt,
	)
	if err != nil {
		r.logger.Printf("order repo: create id=%s error=%v", order.ID, err)
		return nil, err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, name, price_cents, quantity)
VALUES ($1, $2, $3, $4, $5)
`, created.ID, item.ProductID, item.Name, item.PriceCents, item.Quantity); err != nil {
			r.logger.Printf("order repo: insert item order=%s product=%s error=%v", created.ID, item.ProductID, err)
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, order.UserID); err != nil {
		r.logger.Printf("order repo: clear cart user=%s error=%v", order.UserID, err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s user=%s total_cents=%d", created.ID, created.UserID, created.TotalCents)
	return &created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, total_cents, status, address, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.Address, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}
	if err := r.loadItems(ctx, []*domain.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, total_cents, status, address, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *postgresRepo) ListByCaterer(ctx context.Context, catererID string) ([]domain.Order, error) {
	const q = `
SELECT DISTINCT o.id::text, o.user_id::text, o.total_cents, o.status, o.address, o.created_at
FROM orders o
JOIN order_items oi ON oi.order_id = o.id
JOIN products p ON p.id = oi.product_id
WHERE p.created_by = $1
ORDER BY o.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, catererID)
	if err != nil {
		r.logger.Printf("order repo: list caterer=%s error=%v", catererID, err)
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *postgresRepo) SetStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		r.logger.Printf("order repo: set status id=%s status=%s error=%v", id, status, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) collect(ctx context.Context, rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.Address, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *postgresRepo) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	const q = `
SELECT order_id::text, product_id::text, name, price_cents, quantity
FROM order_items
WHERE order_id = ANY($1::uuid[])
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("order repo: load items error=%v", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.Name, &item.PriceCents, &item.Quantity); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}
