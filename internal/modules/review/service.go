package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"turfbook/internal/domain"
	"turfbook/internal/repository"
)

// maxPhotos caps the photo URLs attached to a single review.
const maxPhotos = 5

type Service struct {
	reviews  ReviewRepository
	fields   FieldReader
	bookings BookingGate
}

func NewService(reviews ReviewRepository, fields FieldReader, bookings BookingGate) *Service {
	return &Service{reviews: reviews, fields: fields, bookings: bookings}
}

// Upsert creates the caller's review for a field, or overwrites the existing
// one. A user keeps at most one review per field; only players who held a
// confirmed or completed booking there may review.
func (s *Service) Upsert(ctx context.Context, userID, fieldID int64, req UpsertRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}
	if len(req.Photos) > maxPhotos {
		return nil, ErrValidation
	}

	if _, err := s.fields.GetActiveByID(ctx, fieldID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}

	eligible, err := s.bookings.HasHeldOrCompletedForField(ctx, userID, fieldID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNotEligible
	}

	existing, err := s.reviews.GetByUserAndField(ctx, userID, fieldID)
	switch {
	case err == nil:
		existing.Rating = req.Rating
		existing.Title = req.Title
		existing.Comment = req.Comment
		existing.Photos = req.Photos
		if err := s.reviews.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to create
	default:
		return nil, err
	}

	rv := &domain.Review{
		UserID:  userID,
		FieldID: fieldID,
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
		Photos:  req.Photos,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		// a concurrent create for the same (user, field) pair lost the
		// race; re-read and overwrite
		if repository.IsUniqueViolation(err) {
			return s.Upsert(ctx, userID, fieldID, req)
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ForField(ctx context.Context, fieldID int64) (*FieldReviews, error) {
	if _, err := s.fields.GetActiveByID(ctx, fieldID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}

	reviews, err := s.reviews.GetByField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	avg, err := s.reviews.AverageForField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	return &FieldReviews{Reviews: reviews, AverageRating: avg, Count: len(reviews)}, nil
}

// Delete removes the caller's own review for the field.
func (s *Service) Delete(ctx context.Context, userID, fieldID int64) error {
	if err := s.reviews.DeleteByUserAndField(ctx, userID, fieldID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
