package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/api/metrics"
	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

// HeaderIdempotencyKey lets clients retry a checkout safely.
const HeaderIdempotencyKey = "Idempotency-Key"

type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type paymentRequest struct {
	TokenID  string `json:"tokenId"  validate:"required"`
	Amount   int64  `json:"amount"   validate:"required,gt=0"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
	OrderID  string `json:"orderId"  validate:"omitempty,mongodb"`
}

// Pay handles POST /api/checkout/payment.
//
// @Summary      Pay with a card token
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string          false  "Client-chosen key; a replay is rejected"
// @Param        body             body      paymentRequest  true   "Payment"
// @Success      200              {object}  envelope.SuccessBody{data=domain.Charge}
// @Failure      402              {object}  envelope.ErrorBody
// @Failure      403              {object}  envelope.ErrorBody
// @Failure      409              {object}  envelope.ErrorBody
// @Failure      422              {object}  envelope.FailBody
// @Failure      503              {object}  envelope.ErrorBody
// @Router       /api/checkout/payment [post]
func (h *CheckoutHandler) Pay(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	var req paymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	start := time.Now()
	charge, err := h.service.Pay(c.Request().Context(), actor, ports.PaymentInput{
		SourceToken:    req.TokenID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		OrderID:        req.OrderID,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	metrics.PaymentDuration.Observe(time.Since(start).Seconds())
	metrics.PaymentsTotal.WithLabelValues(paymentResult(err)).Inc()
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Payment successful", charge)
}

func paymentResult(err error) string {
	switch {
	case err == nil:
		return "captured"
	case errors.Is(err, domain.ErrPaymentDeclined):
		return "declined"
	case errors.Is(err, domain.ErrDuplicateRequest):
		return "duplicate"
	case errors.Is(err, domain.ErrPaymentUnavailable):
		return "unavailable"
	}
	return "error"
}
