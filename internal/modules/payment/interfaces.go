package payment

import (
	"context"

	"turfbook/internal/domain"
)

// PaymentRepository persists payments. CreateCompleted must write the payment
// and confirm the booking atomically.
type PaymentRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
	CreateCompleted(ctx context.Context, p *domain.Payment) error
}

// BookingReader resolves the booking being paid for.
type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// FieldReader resolves the booked field's availability mode.
type FieldReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}
