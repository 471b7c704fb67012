package domain

import "time"

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
)

func ParseSkillLevel(s string) (SkillLevel, bool) {
	switch SkillLevel(s) {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return SkillLevel(s), true
	}
	return "", false
}

// TeamFormation marks a booking whose owner is recruiting co-players.
// One per booking.
type TeamFormation struct {
	ID                int64      `json:"id"`
	BookingID         int64      `json:"booking_id" gorm:"uniqueIndex"`
	LookingForPlayers bool       `json:"looking_for_players"`
	RequiredPlayers   int        `json:"required_players"`
	SkillLevel        SkillLevel `json:"skill_level,omitempty"`
	Description       string     `json:"description,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type JoinRequestStatus string

const (
	JoinPending  JoinRequestStatus = "Pending"
	JoinAccepted JoinRequestStatus = "Accepted"
	JoinRejected JoinRequestStatus = "Rejected"
)

// JoinRequest is unique per (team formation, user).
type JoinRequest struct {
	ID              int64             `json:"id"`
	TeamFormationID int64             `json:"team_formation_id" gorm:"uniqueIndex:idx_join_once,priority:1"`
	UserID          int64             `json:"user_id" gorm:"uniqueIndex:idx_join_once,priority:2"`
	Message         string            `json:"message,omitempty"`
	Status          JoinRequestStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}
