package ports

import (
	"context"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// ChargeRequest is what the payment gateway needs to capture a payment.
type ChargeRequest struct {
	SourceToken    string
	Amount         int64 // minor currency units
	Currency       string
	Description    string
	IdempotencyKey string
}

// PaymentGateway is the opaque external payment service.
type PaymentGateway interface {
	// Charge returns domain.ErrPaymentDeclined when the gateway refuses the
	// payment and domain.ErrPaymentUnavailable when it cannot be reached.
	Charge(ctx context.Context, req ChargeRequest) (*domain.Charge, error)
}

// IdempotencyGuard remembers request keys that have already been accepted.
type IdempotencyGuard interface {
	// Acquire reports true the first time key is seen.
	Acquire(ctx context.Context, key string) (bool, error)
	// Release forgets key so a failed request can be retried.
	Release(ctx context.Context, key string) error
}

// PaymentInput is a checkout request.
type PaymentInput struct {
	SourceToken    string
	Amount         int64
	Currency       string
	OrderID        string
	IdempotencyKey string
}

type CheckoutService interface {
	Pay(ctx context.Context, actor domain.Principal, input PaymentInput) (*domain.Charge, error)
}
