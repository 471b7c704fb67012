package catalog

import (
	"context"

	"turfbook/internal/domain"
	"turfbook/internal/repository"
)

type FieldRepository interface {
	Create(ctx context.Context, f *domain.Field) error
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Field, error)
	Update(ctx context.Context, f *domain.Field) error
	SetActive(ctx context.Context, id int64, active bool) error
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Field, error)
	List(ctx context.Context, f repository.FieldFilter) ([]domain.Field, error)
	Search(ctx context.Context, query string) ([]domain.Field, error)
	AdvancedSearch(ctx context.Context, f repository.AdvancedFilter) ([]domain.Field, error)
}

type SlotRepository interface {
	CreateBatch(ctx context.Context, slots []domain.FieldTimeSlot) error
	GetByField(ctx context.Context, fieldID int64, onlyAvailable bool) ([]domain.FieldTimeSlot, error)
	SetAvailability(ctx context.Context, slotID, fieldID int64, available bool) error
}

type ReviewReader interface {
	GetByField(ctx context.Context, fieldID int64) ([]domain.Review, error)
	AverageForField(ctx context.Context, fieldID int64) (float64, error)
}

type BookingLister interface {
	GetByField(ctx context.Context, fieldID int64) ([]domain.Booking, error)
	HeldSlotIDs(ctx context.Context, fieldID int64, date string) ([]int64, error)
}
