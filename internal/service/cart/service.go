package cart

import (
	"context"
	"errors"
	"fmt"

	"catring/internal/domain"
	cartrepo "catring/internal/repository/cart"
)

// Service maintains per-customer cart lines and derives order-ready totals.
type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, item domain.CartItem) error
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	Remove(ctx context.Context, userID, productID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, productRepo: products}
}

// View is a cart with its computed totals.
type View struct {
	Items  []domain.CartItem `json:"items"`
	Totals domain.Totals     `json:"totals"`
}

func (s *Service) Get(ctx context.Context, userID string) (*View, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &View{Items: items, Totals: domain.ComputeTotals(items)}, nil
}

// Add upserts a line for the product. A new line starts at quantity (1 when
// unspecified); an existing line is incremented by it. Name, price and image
// are snapshotted from the product at add time.
func (s *Service) Add(ctx context.Context, userID, productID string, quantity int) (*View, error) {
	if quantity < 0 {
		return nil, errors.New("quantity must be positive")
	}
	if quantity == 0 {
		quantity = 1
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
		}
		return nil, err
	}
	if err := s.repo.AddItem(ctx, domain.CartItem{
		UserID:     userID,
		ProductID:  product.ID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		ImageURL:   product.ImageURL,
		Quantity:   quantity,
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// SetQuantity overwrites a line's quantity. A quantity of zero or less is
// equivalent to removing the line.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*View, error) {
	if quantity <= 0 {
		return s.Remove(ctx, userID, productID)
	}
	if err := s.repo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Remove deletes a line. Removing an absent line is a no-op.
func (s *Service) Remove(ctx context.Context, userID, productID string) (*View, error) {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}
