package repository

import (
	"context"

	"gorm.io/gorm"

	"turfbook/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewRepository) GetByUserAndField(ctx context.Context, userID, fieldID int64) (*domain.Review, error) {
	var rv domain.Review
	tx := r.db.WithContext(ctx).Where("user_id = ? AND field_id = ?", userID, fieldID).First(&rv)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rv, nil
}

func (r *ReviewRepository) GetByField(ctx context.Context, fieldID int64) ([]domain.Review, error) {
	var out []domain.Review
	tx := r.db.WithContext(ctx).Where("field_id = ?", fieldID).Order("created_at DESC").Find(&out)
	return out, tx.Error
}

func (r *ReviewRepository) AverageForField(ctx context.Context, fieldID int64) (float64, error) {
	var avg *float64
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("AVG(rating)").Where("field_id = ?", fieldID).Scan(&avg)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *ReviewRepository) DeleteByUserAndField(ctx context.Context, userID, fieldID int64) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND field_id = ?", userID, fieldID).
		Delete(&domain.Review{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
