package httpserver

import (
	"context"

	"catring/internal/domain"
	"catring/internal/metrics"
	cartsvc "catring/internal/service/cart"
	catalogsvc "catring/internal/service/catalog"
	customersvc "catring/internal/service/customer"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps carries the services the router wires into handlers. Handlers depend
// on these narrow interfaces so tests can substitute stubs.
type Deps struct {
	CustomerSvc customerService
	CatalogSvc  catalogService
	CartSvc     cartService
	OrderSvc    orderService
	CheckoutSvc checkoutService
	CORSOrigins []string
	Metrics     *metrics.ServerMetrics
	Registry    *prometheus.Registry
}

type customerService interface {
	Register(ctx context.Context, in customersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Logout(ctx context.Context, token string) error
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in customersvc.ProfileInput) (*domain.User, error)
	AccessTTLSeconds() int
}

type catalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	ListByCaterer(ctx context.Context, catererID string) ([]domain.Product, error)
	Create(ctx context.Context, catererID string, in catalogsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, catererID, id string, in catalogsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, catererID, id string) error
}

type cartService interface {
	Get(ctx context.Context, userID string) (*cartsvc.View, error)
	Add(ctx context.Context, userID, productID string, quantity int) (*cartsvc.View, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*cartsvc.View, error)
	Remove(ctx context.Context, userID, productID string) (*cartsvc.View, error)
}

type orderService interface {
	ListForCustomer(ctx context.Context, userID string) ([]domain.Order, error)
	ListForCaterer(ctx context.Context, catererID string) ([]domain.Order, error)
	Get(ctx context.Context, userID, id string) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, catererID, orderID string, newStatus domain.OrderStatus) (*domain.Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

type checkoutService interface {
	Checkout(ctx context.Context, userID string) (*domain.Order, error)
}
