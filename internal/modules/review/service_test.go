package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"turfbook/internal/domain"
)

// Mock repositories
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil && args.Error(0) == nil {
		rv.ID = 321
	}
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByUserAndField(ctx context.Context, userID, fieldID int64) (*domain.Review, error) {
	args := m.Called(ctx, userID, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByField(ctx context.Context, fieldID int64) ([]domain.Review, error) {
	args := m.Called(ctx, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) AverageForField(ctx context.Context, fieldID int64) (float64, error) {
	args := m.Called(ctx, fieldID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) DeleteByUserAndField(ctx context.Context, userID, fieldID int64) error {
	args := m.Called(ctx, userID, fieldID)
	return args.Error(0)
}

type MockFieldReader struct {
	mock.Mock
}

func (m *MockFieldReader) GetActiveByID(ctx context.Context, id int64) (*domain.Field, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Field), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) HasHeldOrCompletedForField(ctx context.Context, userID, fieldID int64) (bool, error) {
	args := m.Called(ctx, userID, fieldID)
	return args.Bool(0), args.Error(1)
}

func activeField() *domain.Field {
	return &domain.Field{ID: 5, Name: "City Turf", IsActive: true}
}

func TestService_Upsert_CreatesReview(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockFields := new(MockFieldReader)
	mockGate := new(MockBookingGate)

	mockFields.On("GetActiveByID", mock.Anything, int64(5)).Return(activeField(), nil)
	mockGate.On("HasHeldOrCompletedForField", mock.Anything, int64(7), int64(5)).Return(true, nil)
	mockReviews.On("GetByUserAndField", mock.Anything, int64(7), int64(5)).Return(nil, gorm.ErrRecordNotFound)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockReviews, mockFields, mockGate)

	rv, err := service.Upsert(context.Background(), 7, 5, UpsertRequest{Rating: 5, Title: "Great turf"})

	assert.NoError(t, err)
	assert.Equal(t, 5, rv.Rating)
	assert.Equal(t, int64(321), rv.ID)
	mockReviews.AssertExpectations(t)
}

func TestService_Upsert_OverwritesExisting(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockFields := new(MockFieldReader)
	mockGate := new(MockBookingGate)

	existing := &domain.Review{ID: 321, UserID: 7, FieldID: 5, Rating: 2, Comment: "meh"}

	mockFields.On("GetActiveByID", mock.Anything, int64(5)).Return(activeField(), nil)
	mockGate.On("HasHeldOrCompletedForField", mock.Anything, int64(7), int64(5)).Return(true, nil)
	mockReviews.On("GetByUserAndField", mock.Anything, int64(7), int64(5)).Return(existing, nil)
	mockReviews.On("Update", mock.Anything, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.ID == 321 && rv.Rating == 4 && rv.Comment == "improved a lot"
	})).Return(nil)

	service := NewService(mockReviews, mockFields, mockGate)

	rv, err := service.Upsert(context.Background(), 7, 5, UpsertRequest{Rating: 4, Comment: "improved a lot"})

	assert.NoError(t, err)
	assert.Equal(t, 4, rv.Rating)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Upsert_RequiresQualifyingBooking(t *testing.T) {
	mockFields := new(MockFieldReader)
	mockGate := new(MockBookingGate)

	mockFields.On("GetActiveByID", mock.Anything, int64(5)).Return(activeField(), nil)
	mockGate.On("HasHeldOrCompletedForField", mock.Anything, int64(7), int64(5)).Return(false, nil)

	service := NewService(new(MockReviewRepository), mockFields, mockGate)

	_, err := service.Upsert(context.Background(), 7, 5, UpsertRequest{Rating: 5})

	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestService_Upsert_RatingOutOfRange(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockFieldReader), new(MockBookingGate))

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Upsert(context.Background(), 7, 5, UpsertRequest{Rating: rating})
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestService_Upsert_TooManyPhotos(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockFieldReader), new(MockBookingGate))

	photos := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg"}
	_, err := service.Upsert(context.Background(), 7, 5, UpsertRequest{Rating: 4, Photos: photos})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ForField_AggregatesAverage(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockFields := new(MockFieldReader)

	mockFields.On("GetActiveByID", mock.Anything, int64(5)).Return(activeField(), nil)
	mockReviews.On("GetByField", mock.Anything, int64(5)).Return([]domain.Review{
		{ID: 1, Rating: 5},
		{ID: 2, Rating: 4},
	}, nil)
	mockReviews.On("AverageForField", mock.Anything, int64(5)).Return(4.5, nil)

	service := NewService(mockReviews, mockFields, new(MockBookingGate))

	out, err := service.ForField(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, 4.5, out.AverageRating)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockReviews.On("DeleteByUserAndField", mock.Anything, int64(7), int64(5)).Return(gorm.ErrRecordNotFound)

	service := NewService(mockReviews, new(MockFieldReader), new(MockBookingGate))

	err := service.Delete(context.Background(), 7, 5)

	assert.ErrorIs(t, err, ErrNotFound)
}
