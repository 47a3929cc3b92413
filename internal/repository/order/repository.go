package order

import (
	"context"

	"catring/internal/domain"
)

type Repository interface {
	// CreateFromCart inserts the order with its items and clears the
	// customer's cart rows in a single transaction.
	CreateFromCart(ctx context.Context, order domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// ListByCaterer returns orders containing at least one product created by
	// the caterer, newest first. The join happens at read time; caterer
	// ownership is never stored on the order.
	ListByCaterer(ctx context.Context, catererID string) ([]domain.Order, error)
	// SetStatus overwrites the status without any version check; concurrent
	// writers are last-write-wins.
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
