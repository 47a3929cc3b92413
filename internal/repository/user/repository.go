package user

import (
	"context"

	"catring/internal/domain"
)

type ProfileUpdate struct {
	Name    string
	Phone   string
	Address string
}

type Repository interface {
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*domain.User, error)
}
