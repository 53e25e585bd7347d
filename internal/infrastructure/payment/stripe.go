// Package payment holds the payment gateway adapters.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

// chargeCreator is the subset of the Stripe charges client used here.
type chargeCreator interface {
	New(params *stripe.ChargeParams) (*stripe.Charge, error)
}

// StripeGateway captures payments through the Stripe charges API.
type StripeGateway struct {
	charges chargeCreator
}

// NewStripeGateway builds a gateway for the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	sc := client.New(secretKey, nil)
	return &StripeGateway{charges: sc.Charges}
}

func (g *StripeGateway) Charge(ctx context.Context, req ports.ChargeRequest) (*domain.Charge, error) {
	params := &stripe.ChargeParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		Source:   &stripe.PaymentSourceSourceParams{Token: stripe.String(req.SourceToken)},
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	ch, err := g.charges.New(params)
	if err != nil {
		return nil, classify(err)
	}

	return &domain.Charge{
		ID:       ch.ID,
		Amount:   ch.Amount,
		Currency: string(ch.Currency),
		Status:   string(ch.Status),
		Paid:     ch.Paid,
	}, nil
}

// classify maps Stripe failures onto the domain errors: anything the card or
// the request itself caused is a decline, the rest means Stripe is unusable.
func classify(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		switch se.Type {
		case stripe.ErrorTypeCard, stripe.ErrorTypeInvalidRequest:
			return fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, se.Msg)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrPaymentUnavailable, err)
}

// Unavailable is the gateway used when no payment provider is configured.
type Unavailable struct{}

func (Unavailable) Charge(context.Context, ports.ChargeRequest) (*domain.Charge, error) {
	return nil, domain.ErrPaymentUnavailable
}
