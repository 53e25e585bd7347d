package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

func newRoleContext(p *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		c.Set(principalKey, *p)
	}
	return c, rec
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	c, rec := newRoleContext(&domain.Principal{UserID: "a1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_CustomerForbidden(t *testing.T) {
	c, _ := newRoleContext(&domain.Principal{UserID: "c1", Role: domain.RoleCustomer})

	calls := 0
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		calls++
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("handler must not run for a forbidden role")
	}
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	c, _ := newRoleContext(nil)

	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
