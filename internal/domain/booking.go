package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

// Booking reserves one slot template on one date for one field. At most one
// booking per (field, time slot, date) may be Pending or Confirmed; the
// partial unique index idx_no_double_booking enforces that at insert time.
type Booking struct {
	ID                  int64         `json:"id"`
	UserID              int64         `json:"user_id"`
	FieldID             int64         `json:"field_id"`
	TimeSlotID          int64         `json:"time_slot_id"`
	BookingDate         string        `json:"booking_date"`
	PlayersCount        int           `json:"players_count"`
	SpecialRequirements string        `json:"special_requirements,omitempty"`
	Status              BookingStatus `json:"status"`
	TotalCost           float64       `json:"total_cost"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// IsHeld reports whether the booking still occupies its slot.
func (b *Booking) IsHeld() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
