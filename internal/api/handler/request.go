package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/api/envelope"
	"github.com/storefront/ecommerce-api/internal/api/middleware"
	"github.com/storefront/ecommerce-api/internal/api/validation"
	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// bindAndValidate decodes the body into req and runs the registered
// validator. An undecodable body is reported like any other invalid input.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return malformedBody()
	}
	return c.Validate(req)
}

func malformedBody() error {
	return validation.Errors{{Field: "body", Message: "must be a valid JSON object"}}
}

// principal returns the authenticated caller. Routes behind Authenticate
// always have one; a missing principal means the route was mis-wired.
func principal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return p, nil
}

func success(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope.Success(message, data, status))
}
