package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")

	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrCartNotFound    = errors.New("cart not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPayable = errors.New("order is not awaiting payment")
	ErrAmountMismatch  = errors.New("amount does not match the order total")

	ErrPaymentDeclined    = errors.New("payment declined")
	ErrPaymentUnavailable = errors.New("payment service unavailable")
	ErrDuplicateRequest   = errors.New("request already processed")
)
