package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type CheckoutService struct {
	gateway         ports.PaymentGateway
	orders          ports.OrderRepository
	guard           ports.IdempotencyGuard
	defaultCurrency string
	logger          zerolog.Logger
}

// NewCheckoutService wires the payment flow. guard may be nil, in which case
// idempotency keys are forwarded to the gateway but not checked locally.
func NewCheckoutService(gateway ports.PaymentGateway, orders ports.OrderRepository, guard ports.IdempotencyGuard, defaultCurrency string, logger zerolog.Logger) *CheckoutService {
	if defaultCurrency == "" {
		defaultCurrency = "usd"
	}
	return &CheckoutService{
		gateway:         gateway,
		orders:          orders,
		guard:           guard,
		defaultCurrency: strings.ToLower(defaultCurrency),
		logger:          logger,
	}
}

// Pay charges the caller. When OrderID is set the order must belong to the
// caller, still be pending and the amount must equal its total; the order is
// marked paid once the charge succeeds.
func (s *CheckoutService) Pay(ctx context.Context, actor domain.Principal, input ports.PaymentInput) (*domain.Charge, error) {
	if input.OrderID != "" {
		order, err := s.orders.FindByID(ctx, input.OrderID)
		if err != nil {
			return nil, err
		}
		if !actor.CanAccess(order.UserID) {
			return nil, domain.ErrForbidden
		}
		if order.Status != domain.OrderPending {
			return nil, domain.ErrOrderNotPayable
		}
		if input.Amount != order.AmountMinor() {
			return nil, domain.ErrAmountMismatch
		}
	}

	// Keys are chosen by clients, so they are only unique per caller.
	key := ""
	if input.IdempotencyKey != "" {
		key = actor.UserID + ":" + input.IdempotencyKey
	}

	claimed := false
	if key != "" && s.guard != nil {
		ok, err := s.guard.Acquire(ctx, key)
		switch {
		case err != nil:
			// The gateway still deduplicates on the same key.
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency store unavailable")
		case !ok:
			s.logger.Info().Str("idempotency_key", key).Msg("checkout replay rejected")
			return nil, domain.ErrDuplicateRequest
		default:
			claimed = true
		}
	}

	currency := strings.ToLower(input.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}

	req := ports.ChargeRequest{
		SourceToken:    input.SourceToken,
		Amount:         input.Amount,
		Currency:       currency,
		IdempotencyKey: key,
	}
	if input.OrderID != "" {
		req.Description = fmt.Sprintf("order %s", input.OrderID)
	}

	charge, err := s.gateway.Charge(ctx, req)
	if err != nil {
		if claimed {
			if rerr := s.guard.Release(ctx, key); rerr != nil {
				s.logger.Warn().Err(rerr).Str("idempotency_key", key).Msg("idempotency release failed")
			}
		}
		s.logger.Warn().Err(err).Str("user_id", actor.UserID).Int64("amount", input.Amount).Msg("payment failed")
		return nil, err
	}

	if input.OrderID != "" {
		charge.OrderID = input.OrderID
		if err := s.orders.MarkPaid(ctx, input.OrderID, charge.ID); err != nil {
			// The money moved; surface the failure but keep the charge id in the log.
			s.logger.Error().Err(err).Str("order_id", input.OrderID).Str("charge_id", charge.ID).Msg("failed to mark order paid")
			return nil, err
		}
	}

	s.logger.Info().Str("charge_id", charge.ID).Str("user_id", actor.UserID).Int64("amount", charge.Amount).Str("currency", charge.Currency).Msg("payment captured")
	return charge, nil
}
