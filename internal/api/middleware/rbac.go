package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/api/metrics"
	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// RequireRole lets the request through only when the authenticated role is
// one of allowed. It must run after Authenticate.
func RequireRole(allowed ...domain.Role) echo.MiddlewareFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return unauthorized()
			}
			if _, ok := set[p.Role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
