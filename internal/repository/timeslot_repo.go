package repository

import (
	"context"

	"gorm.io/gorm"

	"turfbook/internal/domain"
)

type TimeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) CreateBatch(ctx context.Context, slots []domain.FieldTimeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&slots).Error
}

func (r *TimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.FieldTimeSlot, error) {
	var s domain.FieldTimeSlot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *TimeSlotRepository) GetByField(ctx context.Context, fieldID int64, onlyAvailable bool) ([]domain.FieldTimeSlot, error) {
	q := r.db.WithContext(ctx).Where("field_id = ?", fieldID)
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var out []domain.FieldTimeSlot
	tx := q.Order("start_time").Find(&out)
	return out, tx.Error
}

func (r *TimeSlotRepository) SetAvailability(ctx context.Context, slotID, fieldID int64, available bool) error {
	tx := r.db.WithContext(ctx).Model(&domain.FieldTimeSlot{}).
		Where("id = ? AND field_id = ?", slotID, fieldID).
		Update("is_available", available)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
