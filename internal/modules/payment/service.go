package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"turfbook/internal/domain"
	"turfbook/internal/repository"
)

// txnIDAttempts bounds transaction-id regeneration on collision.
const txnIDAttempts = 5

type Service struct {
	payments PaymentRepository
	bookings BookingReader
	fields   FieldReader

	now func() time.Time
}

func NewService(payments PaymentRepository, bookings BookingReader, fields FieldReader) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		fields:   fields,
		now:      time.Now,
	}
}

// Pay runs the mobile-money simulation for a booking. All validation happens
// before any write; a repeat call on an already-paid booking replays the
// stored payment without touching anything.
func (s *Service) Pay(ctx context.Context, userID, bookingID int64, req PayRequest) (*PayResult, error) {
	method, ok := domain.ParsePaymentMethod(req.Method)
	if !ok {
		return nil, ErrInvalidMethod
	}

	mobile := normalizeMobile(req.MobileNumber)
	if !validMobile(mobile) {
		return nil, ErrInvalidMobile
	}
	if !validPin(req.Pin) {
		return nil, ErrInvalidPin
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}

	field, err := s.fields.GetByID(ctx, b.FieldID)
	if err != nil {
		return nil, err
	}
	if field.Availability == domain.AvailabilityFree {
		return nil, ErrNoPaymentRequired
	}

	if existing, err := s.payments.GetByBookingID(ctx, bookingID); err == nil {
		return &PayResult{Payment: existing, MethodName: existing.Method.DisplayName(), AlreadyPaid: true}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if b.Status != domain.BookingPending {
		return nil, ErrNotPayable
	}

	for attempt := 0; attempt < txnIDAttempts; attempt++ {
		p := &domain.Payment{
			BookingID:     bookingID,
			Method:        method,
			MobileNumber:  mobile,
			TransactionID: s.generateTxnID(method),
			Amount:        b.TotalCost,
			Status:        domain.PaymentCompleted,
		}

		err := s.payments.CreateCompleted(ctx, p)
		if err == nil {
			return &PayResult{Payment: p, MethodName: method.DisplayName()}, nil
		}
		if !repository.IsUniqueViolation(err) {
			return nil, err
		}

		// The violation is either the per-booking constraint (a concurrent
		// pay won) or a transaction-id collision. Re-reading settles which.
		if existing, gerr := s.payments.GetByBookingID(ctx, bookingID); gerr == nil {
			return &PayResult{Payment: existing, MethodName: existing.Method.DisplayName(), AlreadyPaid: true}, nil
		}
	}

	return nil, ErrTxnIDExhausted
}

// GetForBooking returns the payment attached to the caller's booking.
func (s *Service) GetForBooking(ctx context.Context, userID, bookingID int64) (*domain.Payment, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}

	p, err := s.payments.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) generateTxnID(method domain.PaymentMethod) string {
	ts := s.now().Format("20060102150405")
	return fmt.Sprintf("%s%s%03d", method.TxnPrefix(), ts, rand.Intn(1000))
}

func normalizeMobile(mobile string) string {
	mobile = strings.ReplaceAll(mobile, " ", "")
	return strings.ReplaceAll(mobile, "-", "")
}

func validMobile(mobile string) bool {
	if len(mobile) != 11 || !strings.HasPrefix(mobile, "01") {
		return false
	}
	return allDigits(mobile)
}

func validPin(pin string) bool {
	return len(pin) == 4 && allDigits(pin)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
