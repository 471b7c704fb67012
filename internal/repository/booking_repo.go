package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"turfbook/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	UserID              int64     `gorm:"column:user_id"`
	FieldID             int64     `gorm:"column:field_id"`
	TimeSlotID          int64     `gorm:"column:time_slot_id"`
	BookingDate         string    `gorm:"column:booking_date"`
	PlayersCount        int       `gorm:"column:players_count"`
	SpecialRequirements *string   `gorm:"column:special_requirements"`
	Status              string    `gorm:"column:status"`
	TotalCost           float64   `gorm:"column:total_cost"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var reqs string
	if m.SpecialRequirements != nil {
		reqs = *m.SpecialRequirements
	}

	return &domain.Booking{
		ID:                  m.ID,
		UserID:              m.UserID,
		FieldID:             m.FieldID,
		TimeSlotID:          m.TimeSlotID,
		BookingDate:         m.BookingDate,
		PlayersCount:        m.PlayersCount,
		SpecialRequirements: reqs,
		Status:              domain.BookingStatus(m.Status),
		TotalCost:           m.TotalCost,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var reqs *string
	if b.SpecialRequirements != "" {
		v := b.SpecialRequirements
		reqs = &v
	}

	return bookingModel{
		ID:                  b.ID,
		UserID:              b.UserID,
		FieldID:             b.FieldID,
		TimeSlotID:          b.TimeSlotID,
		BookingDate:         b.BookingDate,
		PlayersCount:        b.PlayersCount,
		SpecialRequirements: reqs,
		Status:              string(b.Status),
		TotalCost:           b.TotalCost,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// Create inserts the booking. A unique violation here means another held
// booking already occupies the (field, slot, date) tuple; callers map it
// with IsUniqueViolation.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByField(ctx context.Context, fieldID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Where("field_id = ?", fieldID).
		Order("booking_date DESC, created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// HeldSlotIDs returns the slot template ids occupied by a Pending or
// Confirmed booking on the given date.
func (r *BookingRepository) HeldSlotIDs(ctx context.Context, fieldID int64, date string) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("field_id = ? AND booking_date = ? AND status IN ?", fieldID, date,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Pluck("time_slot_id", &ids)
	return ids, tx.Error
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", bookingID).
		Update("status", string(status)).Error
}

// HasHeldOrCompletedForField reports whether the user holds a Confirmed or
// Completed booking for the field. Gates review creation.
func (r *BookingRepository) HasHeldOrCompletedForField(ctx context.Context, userID, fieldID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("user_id = ? AND field_id = ? AND status IN ?", userID, fieldID,
			[]string{string(domain.BookingConfirmed), string(domain.BookingCompleted)}).
		Count(&cnt)
	return cnt > 0, tx.Error
}
