package domain

import "time"

// Review is unique per (user, field). Only users holding a Confirmed or
// Completed booking for the field may write one.
type Review struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:idx_review_once,priority:1"`
	FieldID   int64     `json:"field_id" gorm:"uniqueIndex:idx_review_once,priority:2"`
	Rating    int       `json:"rating"`
	Title     string    `json:"experience_title,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Photos    []string  `json:"photos,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
