package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/api/metrics"
	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

const principalKey = "principal"

// Authenticate verifies the bearer token and attaches the caller's identity to
// the request. Missing or invalid credentials end the request with 401.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return unauthorized()
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				return unauthorized()
			}

			SetPrincipal(c, principal)
			return next(c)
		}
	}
}

// SetPrincipal attaches an authenticated identity to the request.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the identity set by Authenticate.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthorized() error {
	metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
}
