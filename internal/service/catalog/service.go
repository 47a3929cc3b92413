package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catring/internal/domain"
	productrepo "catring/internal/repository/product"
)

// Service handles the caterer-owned product catalog. Browsing is public;
// create/update/delete are restricted to the product's creator.
type Service struct {
	repo  productRepo
	audit auditLog
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCreator(ctx context.Context, creatorID string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, in productrepo.Update) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type auditLog interface {
	Record(typ domain.AuditType, userID, description string)
}

func New(repo productrepo.Repository, audit auditLog) *Service {
	return &Service{repo: repo, audit: audit}
}

type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if in.PriceCents <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCaterer(ctx context.Context, catererID string) ([]domain.Product, error) {
	return s.repo.ListByCreator(ctx, catererID)
}

func (s *Service) Create(ctx context.Context, catererID string, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		CreatedBy:   catererID,
	})
	if err != nil {
		return nil, err
	}
	s.audit.Record(domain.AuditCreateProduct, catererID, fmt.Sprintf("Caterer added product '%s'.", created.Name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, catererID, id string, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, catererID, id); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, productrepo.Update{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
	})
	if err != nil {
		return nil, err
	}
	s.audit.Record(domain.AuditUpdateProduct, catererID, fmt.Sprintf("Caterer updated product '%s'.", updated.Name))
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, catererID, id string) error {
	if err := s.requireOwner(ctx, catererID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(domain.AuditDeleteProduct, catererID, fmt.Sprintf("Caterer deleted product #%s.", id))
	return nil
}

func (s *Service) requireOwner(ctx context.Context, catererID, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.CreatedBy != catererID {
		return domain.ErrForbidden
	}
	return nil
}
