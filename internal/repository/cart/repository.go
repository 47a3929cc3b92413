package cart

import (
	"context"

	"catring/internal/domain"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	// AddItem upserts a line keyed by product: a new line starts at the given
	// quantity, an existing one is incremented by it.
	AddItem(ctx context.Context, item domain.CartItem) error
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	// Remove deletes a line. Removing an absent line is a no-op.
	Remove(ctx context.Context, userID, productID string) error
}
