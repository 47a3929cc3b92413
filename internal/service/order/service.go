package order

import (
	"context"
	"fmt"

	"catring/internal/domain"
	orderrepo "catring/internal/repository/order"
)

// Service drives the order lifecycle: customer-facing history and cancel,
// caterer-facing order board and status changes.
type Service struct {
	repo  orderRepo
	audit auditLog
}

type orderRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListByCaterer(ctx context.Context, catererID string) ([]domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type auditLog interface {
	Record(typ domain.AuditType, userID, description string)
}

func New(repo orderrepo.Repository, audit auditLog) *Service {
	return &Service{repo: repo, audit: audit}
}

func (s *Service) ListForCustomer(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListForCaterer returns orders containing at least one of the caterer's
// products, newest first.
func (s *Service) ListForCaterer(ctx context.Context, catererID string) ([]domain.Order, error) {
	return s.repo.ListByCaterer(ctx, catererID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// AdvanceStatus moves an order to newStatus on behalf of a caterer. The
// transition is validated against the status table with a point-in-time read;
// there is no compare-and-swap, so concurrent writers are last-write-wins.
func (s *Service) AdvanceStatus(ctx context.Context, catererID, orderID string, newStatus domain.OrderStatus) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(o.Status, newStatus) {
		return nil, fmt.Errorf("%s -> %s: %w", o.Status, newStatus, domain.ErrInvalidTransition)
	}
	if err := s.repo.SetStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}
	s.audit.Record(domain.AuditUpdateOrderStatus, catererID,
		fmt.Sprintf("Caterer updated order #%s to '%s'.", shortID(orderID), newStatus))
	o.Status = newStatus
	return o, nil
}

// Cancel sets the customer's own order to Cancelled. Permitted only while the
// order is still Pending.
func (s *Service) Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if !o.Cancellable() {
		return nil, fmt.Errorf("%s -> %s: %w", o.Status, domain.StatusCancelled, domain.ErrInvalidTransition)
	}
	if err := s.repo.SetStatus(ctx, orderID, domain.StatusCancelled); err != nil {
		return nil, err
	}
	s.audit.Record(domain.AuditUpdateOrderStatus, userID,
		fmt.Sprintf("Customer cancelled order #%s.", shortID(orderID)))
	o.Status = domain.StatusCancelled
	return o, nil
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
