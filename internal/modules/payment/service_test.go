package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"turfbook/internal/domain"
)

// Mock repositories
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) CreateCompleted(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil && args.Error(0) == nil {
		p.ID = 555
	}
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockFieldReader struct {
	mock.Mock
}

func (m *MockFieldReader) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Field), args.Error(1)
}

func newTestService(payments *MockPaymentRepository, bookings *MockBookingReader, fields *MockFieldReader) *Service {
	s := NewService(payments, bookings, fields)
	s.now = func() time.Time {
		return time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)
	}
	return s
}

func uniqueViolationErr() error {
	return errors.New(`duplicate key value violates unique constraint "payments_booking_id_key" (SQLSTATE 23505)`)
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{ID: 42, UserID: 7, FieldID: 5, Status: domain.BookingPending, TotalCost: 150}
}

func paidField() *domain.Field {
	return &domain.Field{ID: 5, CostPerHour: 100, Availability: domain.AvailabilityPaid}
}

func validRequest() PayRequest {
	return PayRequest{Method: "bkash", MobileNumber: "01712345678", Pin: "1234"}
}

func TestService_Pay_Success(t *testing.T) {
	mockPayments := new(MockPaymentRepository)
	mockBookings := new(MockBookingReader)
	mockFields := new(MockFieldReader)

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)
	mockFields.On("GetByID", mock.Anything, int64(5)).Return(paidField(), nil)
	mockPayments.On("GetByBookingID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)
	mockPayments.On("CreateCompleted", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockPayments, mockBookings, mockFields)

	result, err := service.Pay(context.Background(), 7, 42, validRequest())

	assert.NoError(t, err)
	assert.False(t, result.AlreadyPaid)
	assert.Equal(t, "bKash", result.MethodName)
	assert.Equal(t, 150.0, result.Payment.Amount)
	assert.Equal(t, domain.PaymentCompleted, result.Payment.Status)
	assert.True(t, strings.HasPrefix(result.Payment.TransactionID, "BK20260831143005"))
	assert.Len(t, result.Payment.TransactionID, len("BK20260831143005")+3)
}

func TestService_Pay_RepeatReplaysStoredPayment(t *testing.T) {
	mockPayments := new(MockPaymentRepository)
	mockBookings := new(MockBookingReader)
	mockFields := new(MockFieldReader)

	stored := &domain.Payment{
		ID:            555,
		BookingID:     42,
		Method:        domain.MethodNagad,
		TransactionID: "NG20260831140000123",
		Amount:        150,
		Status:        domain.PaymentCompleted,
	}

	booking := pendingBooking()
	booking.Status = domain.BookingConfirmed

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	mockFields.On("GetByID", mock.Anything, int64(5)).Return(paidField(), nil)
	mockPayments.On("GetByBookingID", mock.Anything, int64(42)).Return(stored, nil)

	service := newTestService(mockPayments, mockBookings, mockFields)

	result, err := service.Pay(context.Background(), 7, 42, validRequest())

	assert.NoError(t, err)
	assert.True(t, result.AlreadyPaid)
	assert.Equal(t, "NG20260831140000123", result.Payment.TransactionID)
	assert.Equal(t, "Nagad", result.MethodName)
	mockPayments.AssertNotCalled(t, "CreateCompleted", mock.Anything, mock.Anything)
}

func TestService_Pay_InvalidMobile(t *testing.T) {
	service := newTestService(new(MockPaymentRepository), new(MockBookingReader), new(MockFieldReader))

	cases := []string{
		"0171234567",   // 10 digits
		"017123456789", // 12 digits
		"02712345678",  // wrong prefix
		"01712a45678",  // non-digit
	}
	for _, mobile := range cases {
		req := validRequest()
		req.MobileNumber = mobile
		_, err := service.Pay(context.Background(), 7, 42, req)
		assert.ErrorIs(t, err, ErrInvalidMobile, mobile)
	}
}

func TestService_Pay_MobileNormalization(t *testing.T) {
	mockPayments := new(MockPaymentRepository)
	mockBookings := new(MockBookingReader)
	mockFields := new(MockFieldReader)

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)
	mockFields.On("GetByID", mock.Anything, int64(5)).Return(paidField(), nil)
	mockPayments.On("GetByBookingID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)
	mockPayments.On("CreateCompleted", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.MobileNumber == "01712345678"
	})).Return(nil)

	service := newTestService(mockPayments, mockBookings, mockFields)

	req := validRequest()
	req.MobileNumber = "017-1234 5678"
	_, err := service.Pay(context.Background(), 7, 42, req)

	assert.NoError(t, err)
	mockPayments.AssertExpectations(t)
}

func TestService_Pay_InvalidPin(t *testing.T) {
	service := newTestService(new(MockPaymentRepository), new(MockBookingReader), new(MockFieldReader))

	for _, pin := range []string{"123", "12345", "12a4", ""} {
		req := validRequest()
		req.Pin = pin
		_, err := service.Pay(context.Background(), 7, 42, req)
		assert.ErrorIs(t, err, ErrInvalidPin, pin)
	}
}

func TestService_Pay_InvalidMethod(t *testing.T) {
	service := newTestService(new(MockPaymentRepository), new(MockBookingReader), new(MockFieldReader))

	req := validRequest()
	req.Method = "paypal"
	_, err := service.Pay(context.Background(), 7, 42, req)

	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestService_Pay_FreeFieldRejected(t *testing.T) {
	mockBookings := new(MockBookingReader)
	mockFields := new(MockFieldReader)

	field := paidField()
	field.Availability = domain.AvailabilityFree

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)
	mockFields.On("GetByID", mock.Anything, int64(5)).Return(field, nil)

	service := newTestService(new(MockPaymentRepository), mockBookings, mockFields)

	_, err := service.Pay(context.Background(), 7, 42, validRequest())

	assert.ErrorIs(t, err, ErrNoPaymentRequired)
}

func TestService_Pay_OtherUsersBooking(t *testing.T) {
	mockBookings := new(MockBookingReader)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)

	service := newTestService(new(MockPaymentRepository), mockBookings, new(MockFieldReader))

	_, err := service.Pay(context.Background(), 8, 42, validRequest())

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Pay_CancelledBookingNotPayable(t *testing.T) {
	mockPayments := new(MockPaymentRepository)
	mockBookings := new(MockBookingReader)
	mockFields := new(MockFieldReader)

	booking := pendingBooking()
	booking.Status = domain.BookingCancelled

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	mockFields.On("GetByID", mock.Anything, int64(5)).Return(paidField(), nil)
	mockPayments.On("GetByBookingID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockPayments, mockBookings, mockFields)

	_, err := service.Pay(context.Background(), 7, 42, validRequest())

	assert.ErrorIs(t, err, ErrNotPayable)
}

func TestService_Pay_ConcurrentWinnerReplayed(t *testing.T) {
	mockPayments := new(MockPaymentRepository)
	mockBookings := new(MockBookingReader)
	mockFields := new(MockFieldReader)

	stored := &domain.Payment{
		ID:            556,
		BookingID:     42,
		Method:        domain.MethodBkash,
		TransactionID: "BK20260831143001042",
		Amount:        150,
		Status:        domain.PaymentCompleted,
	}

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)
	mockFields.On("GetByID", mock.Anything, int64(5)).Return(paidField(), nil)

	// no payment at the pre-check, then the concurrent winner shows up
	mockPayments.On("GetByBookingID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound).Once()
	mockPayments.On("CreateCompleted", mock.Anything, mock.Anything).
		Return(uniqueViolationErr()).Once()
	mockPayments.On("GetByBookingID", mock.Anything, int64(42)).Return(stored, nil).Once()

	service := newTestService(mockPayments, mockBookings, mockFields)

	result, err := service.Pay(context.Background(), 7, 42, validRequest())

	assert.NoError(t, err)
	assert.True(t, result.AlreadyPaid)
	assert.Equal(t, "BK20260831143001042", result.Payment.TransactionID)
}

func TestService_GetForBooking(t *testing.T) {
	mockPayments := new(MockPaymentRepository)
	mockBookings := new(MockBookingReader)

	stored := &domain.Payment{ID: 555, BookingID: 42, TransactionID: "UP20260831120000007"}

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)
	mockPayments.On("GetByBookingID", mock.Anything, int64(42)).Return(stored, nil)

	service := newTestService(mockPayments, mockBookings, new(MockFieldReader))

	p, err := service.GetForBooking(context.Background(), 7, 42)

	assert.NoError(t, err)
	assert.Equal(t, stored.TransactionID, p.TransactionID)
}
