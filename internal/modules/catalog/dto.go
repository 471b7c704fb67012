package catalog

import "turfbook/internal/domain"

type CreateFieldRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=120"`
	FieldType    string  `json:"field_type" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Description  string  `json:"description"`
	CostPerHour  float64 `json:"cost_per_hour" binding:"min=0"`
	Availability string  `json:"availability_type" binding:"required"`
	ImageURL     string  `json:"image_url"`
	IsWomenOnly  bool    `json:"is_women_only"`
	Capacity     int     `json:"capacity" binding:"required,min=1"`
	Amenities    string  `json:"amenities"`
}

// UpdateFieldRequest carries only the fields the owner wants to change.
type UpdateFieldRequest struct {
	Name         *string  `json:"name,omitempty"`
	FieldType    *string  `json:"field_type,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Description  *string  `json:"description,omitempty"`
	CostPerHour  *float64 `json:"cost_per_hour,omitempty"`
	Availability *string  `json:"availability_type,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	IsWomenOnly  *bool    `json:"is_women_only,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	Amenities    *string  `json:"amenities,omitempty"`
}

type SlotAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// DateSummary counts the slot templates still open on one date of the
// booking window.
type DateSummary struct {
	Date      string `json:"date"`
	FreeSlots int    `json:"free_slots"`
}

// FieldDetail is the public detail view: the field itself, its slot
// templates, recent reviews, the running average rating and a per-date
// availability summary over the booking window.
type FieldDetail struct {
	Field         domain.Field          `json:"field"`
	SlotCost      float64               `json:"slot_cost"`
	Slots         []domain.FieldTimeSlot `json:"time_slots"`
	Reviews       []domain.Review       `json:"reviews"`
	AverageRating float64               `json:"average_rating"`
	ReviewCount   int                   `json:"review_count"`
	Availability  []DateSummary         `json:"availability"`
}
