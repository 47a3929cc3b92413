package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catring/internal/domain"
	customersvc "catring/internal/service/customer"
)

type stubCustomerAuthSvc struct {
	user        *domain.User
	registerErr error
	loginErr    error
	lookupErr   error
	loggedOut   string
}

func (s *stubCustomerAuthSvc) Register(_ context.Context, _ customersvc.RegisterInput) (*domain.User, error) {
	return s.user, s.registerErr
}

func (s *stubCustomerAuthSvc) Login(_ context.Context, _, _ string) (*domain.User, string, string, error) {
	return s.user, "access", "refresh", s.loginErr
}

func (s *stubCustomerAuthSvc) Logout(_ context.Context, token string) error {
	s.loggedOut = token
	return nil
}

func (s *stubCustomerAuthSvc) LookupByToken(_ context.Context, _ string) (*domain.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.user, nil
}

func (s *stubCustomerAuthSvc) Profile(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.lookupErr
}

func (s *stubCustomerAuthSvc) UpdateProfile(_ context.Context, _ string, _ customersvc.ProfileInput) (*domain.User, error) {
	return s.user, s.lookupErr
}

func (s *stubCustomerAuthSvc) AccessTTLSeconds() int {
	return 3600
}

func TestRegisterHandler_Created(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{
			user: &domain.User{ID: "u1", Email: "amit@example.com", Name: "Amit", Role: domain.RoleCustomer},
		},
	})

	body := `{"name":"Amit","email":"amit@example.com","password":"Abcdefg1"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"amit@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{registerErr: domain.ErrAlreadyExists},
	})

	body := `{"name":"Amit","email":"amit@example.com","password":"Abcdefg1"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_Success(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{
			user: &domain.User{ID: "u1", Email: "amit@example.com", Role: domain.RoleCustomer},
		},
	})

	body := `{"email":"amit@example.com","password":"Abcdefg1"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	for _, want := range []string{`"accessToken":"access"`, `"refreshToken":"refresh"`, `"expiresIn":3600`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("body missing %s: %s", want, rec.Body.String())
		}
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{loginErr: customersvc.ErrInvalidCredentials},
	})

	body := `{"email":"amit@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLogoutHandler_RevokesBearerToken(t *testing.T) {
	svc := &stubCustomerAuthSvc{
		user: &domain.User{ID: "u1", Role: domain.RoleCustomer},
	}
	router := testRouter(t, Deps{CustomerSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.loggedOut != "tok-123" {
		t.Fatalf("expected token tok-123 revoked, got %q", svc.loggedOut)
	}
}

func TestProfileHandler_Success(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{
			user: &domain.User{ID: "u1", Email: "me@example.com", Role: domain.RoleCustomer},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"me@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateProfileHandler_Success(t *testing.T) {
	router := testRouter(t, Deps{
		CustomerSvc: &stubCustomerAuthSvc{
			user: &domain.User{ID: "u1", Name: "Amit K", Address: "12 MG Road", Role: domain.RoleCustomer},
		},
	})

	body := `{"name":"Amit K","address":"12 MG Road"}`
	req := httptest.NewRequest(http.MethodPut, "/me", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"address":"12 MG Road"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
