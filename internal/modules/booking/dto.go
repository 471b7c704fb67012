package booking

import "turfbook/internal/domain"

type TeamFormationRequest struct {
	LookingForPlayers bool   `json:"looking_for_players"`
	RequiredPlayers   int    `json:"required_players,omitempty"`
	SkillLevel        string `json:"skill_level,omitempty"`
	Description       string `json:"description,omitempty"`
}

type ReserveRequest struct {
	UserID              int64                 `json:"-"`
	FieldID             int64                 `json:"-"`
	BookingDate         string                `json:"booking_date" binding:"required"`
	TimeSlotID          int64                 `json:"time_slot_id" binding:"required"`
	PlayersCount        int                   `json:"players_count" binding:"required,gte=1"`
	SpecialRequirements string                `json:"special_requirements,omitempty"`
	Team                *TeamFormationRequest `json:"team,omitempty"`
}

// SlotStatus annotates a slot template with its booked state on one date.
type SlotStatus struct {
	Slot     domain.FieldTimeSlot `json:"slot"`
	IsBooked bool                 `json:"is_booked"`
}

type DayAvailability struct {
	FieldID int64        `json:"field_id"`
	Date    string       `json:"date"`
	Slots   []SlotStatus `json:"slots"`
}
