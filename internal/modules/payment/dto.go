package payment

import "turfbook/internal/domain"

type PayRequest struct {
	Method       string `json:"payment_method" binding:"required"`
	MobileNumber string `json:"mobile" binding:"required"`
	Pin          string `json:"pin" binding:"required"`
}

// PayResult reports a completed (or replayed) payment.
type PayResult struct {
	Payment    *domain.Payment `json:"payment"`
	MethodName string          `json:"payment_method"`
	// AlreadyPaid is set when the call replayed an existing payment.
	AlreadyPaid bool `json:"already_paid,omitempty"`
}
