package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-api/internal/api/envelope"
	"github.com/storefront/ecommerce-api/internal/api/validation"
	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders rejected input as a 422 "fail" envelope.
//   - Maps known domain errors to their HTTP status and an "error" envelope.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, envelope.Envelope) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusUnprocessableEntity, envelope.Validation(verrs)
	}

	// Echo's own errors (bind failures, 404 from router, auth gates).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("http error")
		}
		return he.Code, envelope.Error(fmt.Sprintf("%v", he.Message), he.Code)
	}

	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusUnprocessableEntity, envelope.ValidationMessage("Email already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnprocessableEntity, envelope.ValidationMessage("Incorrect email or password")
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusUnprocessableEntity, envelope.ValidationMessage("Product title already exists")
	case errors.Is(err, domain.ErrOrderNotPayable):
		return http.StatusUnprocessableEntity, envelope.ValidationMessage("Order is not awaiting payment")
	case errors.Is(err, domain.ErrAmountMismatch):
		return http.StatusUnprocessableEntity, envelope.ValidationMessage("Amount does not match the order total")
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusUnprocessableEntity, envelope.ValidationMessage("Invalid role")
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, envelope.Error("Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, envelope.Error("Forbidden", http.StatusForbidden)
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, envelope.Error("User not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, envelope.Error("Product not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrCartNotFound):
		return http.StatusNotFound, envelope.Error("Cart not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, envelope.Error("Order not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateRequest):
		return http.StatusConflict, envelope.Error("Request already processed", http.StatusConflict)
	case errors.Is(err, domain.ErrPaymentDeclined):
		return http.StatusPaymentRequired, envelope.Error("Payment declined", http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrPaymentUnavailable):
		return http.StatusServiceUnavailable, envelope.Error("Payment service unavailable", http.StatusServiceUnavailable)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, envelope.Error("Server error", http.StatusInternalServerError)
}
