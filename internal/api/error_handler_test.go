package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/storefront/ecommerce-api/internal/api/validation"
	"github.com/storefront/ecommerce-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation errors",
			err:      validation.Errors{{Field: "email", Message: "is required"}},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"status":"fail","message":[{"field":"email","message":"is required"}]}`,
		},
		{
			name:     "email taken",
			err:      fmt.Errorf("register: %w", domain.ErrEmailTaken),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"status":"fail","message":"Email already registered"}`,
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized"),
			wantCode: http.StatusUnauthorized,
			wantBody: `{"status":"error","statusCode":401,"message":"Unauthorized"}`,
		},
		{
			name:     "forbidden",
			err:      domain.ErrForbidden,
			wantCode: http.StatusForbidden,
			wantBody: `{"status":"error","statusCode":403,"message":"Forbidden"}`,
		},
		{
			name:     "not found",
			err:      domain.ErrOrderNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"status":"error","statusCode":404,"message":"Order not found"}`,
		},
		{
			name:     "replayed checkout",
			err:      domain.ErrDuplicateRequest,
			wantCode: http.StatusConflict,
			wantBody: `{"status":"error","statusCode":409,"message":"Request already processed"}`,
		},
		{
			name:     "order already paid",
			err:      domain.ErrOrderNotPayable,
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"status":"fail","message":"Order is not awaiting payment"}`,
		},
		{
			name:     "amount differs from order total",
			err:      domain.ErrAmountMismatch,
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"status":"fail","message":"Amount does not match the order total"}`,
		},
		{
			name:     "payment declined",
			err:      fmt.Errorf("%w: card expired", domain.ErrPaymentDeclined),
			wantCode: http.StatusPaymentRequired,
			wantBody: `{"status":"error","statusCode":402,"message":"Payment declined"}`,
		},
		{
			name:     "unexpected error hides details",
			err:      errors.New("mongo: connection pool exhausted"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"status":"error","statusCode":500,"message":"Server error"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrUserNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
