package domain

import (
	"math"
	"time"
)

type FieldType string

const (
	FieldCricket    FieldType = "Cricket"
	FieldFootball   FieldType = "Football"
	FieldTennis     FieldType = "Tennis"
	FieldBasketball FieldType = "Basketball"
)

type AvailabilityType string

const (
	AvailabilityFree AvailabilityType = "Free"
	AvailabilityPaid AvailabilityType = "Paid"
)

func ParseFieldType(s string) (FieldType, bool) {
	switch FieldType(s) {
	case FieldCricket, FieldFootball, FieldTennis, FieldBasketball:
		return FieldType(s), true
	}
	return "", false
}

func ParseAvailabilityType(s string) (AvailabilityType, bool) {
	switch AvailabilityType(s) {
	case AvailabilityFree, AvailabilityPaid:
		return AvailabilityType(s), true
	}
	return "", false
}

type Field struct {
	ID           int64            `json:"id"`
	OwnerID      int64            `json:"owner_id"`
	Name         string           `json:"name"`
	FieldType    FieldType        `json:"field_type"`
	Location     string           `json:"location"`
	Description  string           `json:"description"`
	CostPerHour  float64          `json:"cost_per_hour"`
	Availability AvailabilityType `json:"availability_type"`
	ImageURL     string           `json:"image_url,omitempty"`
	IsWomenOnly  bool             `json:"is_women_only"`
	Capacity     int              `json:"capacity"`
	Amenities    string           `json:"amenities,omitempty"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// SlotCost is the price of one fixed 90-minute slot. Free fields always
// cost 0.00 regardless of the stored hourly rate.
func (f *Field) SlotCost() float64 {
	if f.Availability == AvailabilityFree {
		return 0
	}
	return math.Round(f.CostPerHour*1.5*100) / 100
}

// FieldTimeSlot is a template-level slot attached to a field. Start and End
// are wall-clock "HH:MM" values; the flag disables the template for every
// date at once.
type FieldTimeSlot struct {
	ID          int64  `json:"id"`
	FieldID     int64  `json:"field_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

// DefaultTimeSlots are the eleven 90-minute templates attached to every new
// field, 06:00 through 22:30.
func DefaultTimeSlots(fieldID int64) []FieldTimeSlot {
	pairs := [][2]string{
		{"06:00", "07:30"},
		{"07:30", "09:00"},
		{"09:00", "10:30"},
		{"10:30", "12:00"},
		{"12:00", "13:30"},
		{"13:30", "15:00"},
		{"15:00", "16:30"},
		{"16:30", "18:00"},
		{"18:00", "19:30"},
		{"19:30", "21:00"},
		{"21:00", "22:30"},
	}
	out := make([]FieldTimeSlot, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, FieldTimeSlot{
			FieldID:     fieldID,
			StartTime:   p[0],
			EndTime:     p[1],
			IsAvailable: true,
		})
	}
	return out
}
