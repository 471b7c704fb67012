package review

import (
	"context"

	"turfbook/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	Update(ctx context.Context, rv *domain.Review) error
	GetByUserAndField(ctx context.Context, userID, fieldID int64) (*domain.Review, error)
	GetByField(ctx context.Context, fieldID int64) ([]domain.Review, error)
	AverageForField(ctx context.Context, fieldID int64) (float64, error)
	DeleteByUserAndField(ctx context.Context, userID, fieldID int64) error
}

type FieldReader interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Field, error)
}

// BookingGate answers whether the user ever held a confirmed or completed
// booking for the field.
type BookingGate interface {
	HasHeldOrCompletedForField(ctx context.Context, userID, fieldID int64) (bool, error)
}
