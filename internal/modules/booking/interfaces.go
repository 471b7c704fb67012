package booking

import (
	"context"

	"turfbook/internal/domain"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	HeldSlotIDs(ctx context.Context, fieldID int64, date string) ([]int64, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

// FieldReader resolves the field being booked.
type FieldReader interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Field, error)
}

// SlotReader resolves slot templates.
type SlotReader interface {
	GetByID(ctx context.Context, id int64) (*domain.FieldTimeSlot, error)
	GetByField(ctx context.Context, fieldID int64, onlyAvailable bool) ([]domain.FieldTimeSlot, error)
}

// TeamWriter attaches a team formation to a fresh booking.
type TeamWriter interface {
	CreateTeam(ctx context.Context, t *domain.TeamFormation) error
}
