package product

import (
	"context"

	"catring/internal/domain"
)

type Update struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Category    string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCreator(ctx context.Context, creatorID string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, in Update) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
