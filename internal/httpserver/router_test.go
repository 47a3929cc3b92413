package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catring/internal/domain"
	cartsvc "catring/internal/service/cart"
	catalogsvc "catring/internal/service/catalog"
	customersvc "catring/internal/service/customer"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCatalogService struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubCatalogService) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogService) Get(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) ListByCaterer(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogService) Create(_ context.Context, _ string, _ catalogsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) Update(_ context.Context, _, _ string, _ catalogsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) Delete(_ context.Context, _, _ string) error {
	return s.err
}

type stubCartService struct {
	view *cartsvc.View
	err  error
}

func (s *stubCartService) Get(_ context.Context, _ string) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s *stubCartService) Add(_ context.Context, _, _ string, _ int) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s *stubCartService) SetQuantity(_ context.Context, _, _ string, _ int) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s *stubCartService) Remove(_ context.Context, _, _ string) (*cartsvc.View, error) {
	return s.view, s.err
}

type stubOrderService struct {
	orders     []domain.Order
	order      *domain.Order
	err        error
	gotStatus  domain.OrderStatus
	gotOrderID string
}

func (s *stubOrderService) ListForCustomer(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) ListForCaterer(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) Get(_ context.Context, _, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) AdvanceStatus(_ context.Context, _, orderID string, newStatus domain.OrderStatus) (*domain.Order, error) {
	s.gotOrderID = orderID
	s.gotStatus = newStatus
	return s.order, s.err
}

func (s *stubOrderService) Cancel(_ context.Context, _, _ string) (*domain.Order, error) {
	return s.order, s.err
}

type stubCheckoutService struct {
	order *domain.Order
	err   error
}

func (s *stubCheckoutService) Checkout(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.CustomerSvc == nil {
		deps.CustomerSvc = &stubCustomerAuthSvc{}
	}
	if deps.CatalogSvc == nil {
		deps.CatalogSvc = &stubCatalogService{}
	}
	if deps.CartSvc == nil {
		deps.CartSvc = &stubCartService{}
	}
	if deps.OrderSvc == nil {
		deps.OrderSvc = &stubOrderService{}
	}
	if deps.CheckoutSvc == nil {
		deps.CheckoutSvc = &stubCheckoutService{}
	}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	router := testRouter(t, Deps{
		CatalogSvc: &stubCatalogService{products: []domain.Product{
			{ID: "p1", Name: "Butter Chicken", PriceCents: 1599},
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"Butter Chicken"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	router := testRouter(t, Deps{
		CatalogSvc: &stubCatalogService{err: domain.ErrNotFound},
	})

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetCart_RequiresAuth(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{lookupErr: customersvc.ErrInvalidToken},
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItem(t *testing.T) {
	view := &cartsvc.View{
		Items: []domain.CartItem{{ProductID: "p1", Name: "Samosa Platter", PriceCents: 999, Quantity: 2}},
		Totals: domain.Totals{
			SubtotalCents: 1998,
			TaxCents:      100,
			TotalCents:    2098,
		},
	}
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleCustomer}},
		CartSvc:     &stubCartService{view: view},
	})

	body := `{"productId":"p1","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"totalCents":2098`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAddCartItem_MissingProductID(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleCustomer}},
	})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCheckout_Created(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleCustomer}},
		CheckoutSvc: &stubCheckoutService{order: &domain.Order{
			ID:         "o1",
			UserID:     "u1",
			TotalCents: 26250,
			Status:     domain.StatusPending,
		}},
	})

	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"Pending"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleCustomer}},
		CheckoutSvc: &stubCheckoutService{err: domain.ErrEmptyCart},
	})

	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateProduct_CustomerForbidden(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleCustomer}},
	})

	body := `{"name":"Masala Dosa","priceCents":1199}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestOrderStatus_Updated(t *testing.T) {
	orderSvc := &stubOrderService{order: &domain.Order{ID: "o1", Status: domain.StatusAccepted}}
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "cat1", Role: domain.RoleCaterer}},
		OrderSvc:    orderSvc,
	})

	body := `{"status":"Accepted"}`
	req := httptest.NewRequest(http.MethodPut, "/caterer/orders/o1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if orderSvc.gotOrderID != "o1" || orderSvc.gotStatus != domain.StatusAccepted {
		t.Fatalf("service called with id=%q status=%q", orderSvc.gotOrderID, orderSvc.gotStatus)
	}
}

func TestOrderStatus_UnknownStatus(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "cat1", Role: domain.RoleCaterer}},
	})

	body := `{"status":"Shipped"}`
	req := httptest.NewRequest(http.MethodPut, "/caterer/orders/o1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestOrderStatus_InvalidTransition(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "cat1", Role: domain.RoleCaterer}},
		OrderSvc:    &stubOrderService{err: domain.ErrInvalidTransition},
	})

	body := `{"status":"Accepted"}`
	req := httptest.NewRequest(http.MethodPut, "/caterer/orders/o1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCancelOrder_Forbidden(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleCustomer}},
		OrderSvc:    &stubOrderService{err: domain.ErrInvalidTransition},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/o1/cancel", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}
