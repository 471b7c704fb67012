package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"turfbook/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// CreateCompleted persists the payment and confirms its booking in one
// transaction, so a failure on either side leaves no partial state.
func (r *PaymentRepository) CreateCompleted(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Table("bookings").Where("id = ?", p.BookingID).
			Update("status", string(domain.BookingConfirmed)).Error
	})
}

// ExistsTransactionID reports whether a transaction id is already taken.
func (r *PaymentRepository) ExistsTransactionID(ctx context.Context, txnID string) (bool, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).Where("transaction_id = ?", txnID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
