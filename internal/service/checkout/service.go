package checkout

import (
	"context"
	"fmt"
	"strings"

	"catring/internal/domain"
	cartrepo "catring/internal/repository/cart"
	orderrepo "catring/internal/repository/order"
	userrepo "catring/internal/repository/user"
	"github.com/google/uuid"
)

// Service converts a non-empty cart plus a delivery address into a persisted
// order, clearing the cart in the same database transaction.
type Service struct {
	carts  cartRepo
	orders orderRepo
	users  userRepo
	audit  auditLog
}

type cartRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
}

type orderRepo interface {
	CreateFromCart(ctx context.Context, order domain.Order) (*domain.Order, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type auditLog interface {
	Record(typ domain.AuditType, userID, description string)
}

func New(carts cartrepo.Repository, orders orderrepo.Repository, users userrepo.Repository, audit auditLog) *Service {
	return &Service{carts: carts, orders: orders, users: users, audit: audit}
}

// Checkout validates the preconditions, snapshots the cart into order items
// and persists the order. Preconditions failing abort before any write. The
// audit entry is recorded after the fact and is not part of the transaction.
func (s *Service) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(user.Address) == "" {
		return nil, domain.ErrAddressRequired
	}

	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	totals := domain.ComputeTotals(items)
	snapshot := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		snapshot = append(snapshot, domain.OrderItem{
			ProductID:  it.ProductID,
			Name:       it.Name,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		})
	}

	created, err := s.orders.CreateFromCart(ctx, domain.Order{
		ID:         uuid.NewString(),
		UserID:     userID,
		Items:      snapshot,
		TotalCents: totals.TotalCents,
		Status:     domain.StatusPending,
		Address:    user.Address,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditCreateOrder, userID,
		fmt.Sprintf("User created order #%s for ₹%d.%02d.", created.ID, totals.TotalCents/100, totals.TotalCents%100))
	return created, nil
}
