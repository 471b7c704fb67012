package payment

import "errors"

var (
	ErrInvalidMethod     = errors.New("invalid payment method")
	ErrInvalidMobile     = errors.New("invalid mobile number format")
	ErrInvalidPin        = errors.New("pin must be 4 digits")
	ErrNotFound          = errors.New("booking not found")
	ErrForbidden         = errors.New("forbidden")
	ErrNoPaymentRequired = errors.New("no payment required")
	ErrNotPayable        = errors.New("booking is not payable")
	ErrTxnIDExhausted    = errors.New("could not allocate a unique transaction id")
)
