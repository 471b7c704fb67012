package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"turfbook/internal/domain"
	"turfbook/internal/repository"
)

// availabilityWindowDays mirrors the booking window: detail pages summarize
// today plus the next seven days.
const availabilityWindowDays = 7

type Service struct {
	fields   FieldRepository
	slots    SlotRepository
	reviews  ReviewReader
	bookings BookingLister

	now func() time.Time
}

func NewService(fields FieldRepository, slots SlotRepository, reviews ReviewReader, bookings BookingLister) *Service {
	return &Service{fields: fields, slots: slots, reviews: reviews, bookings: bookings, now: time.Now}
}

func (s *Service) List(ctx context.Context, filter repository.FieldFilter) ([]domain.Field, error) {
	return s.fields.List(ctx, filter)
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.Field, error) {
	return s.fields.Search(ctx, query)
}

func (s *Service) AdvancedSearch(ctx context.Context, filter repository.AdvancedFilter) ([]domain.Field, error) {
	return s.fields.AdvancedSearch(ctx, filter)
}

// Detail assembles the public field page: slot templates, reviews, the
// average rating and a free-slot count for each date of the booking window.
func (s *Service) Detail(ctx context.Context, fieldID int64) (*FieldDetail, error) {
	field, err := s.fields.GetActiveByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	slots, err := s.slots.GetByField(ctx, fieldID, false)
	if err != nil {
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

	summary, err := s.availabilitySummary(ctx, fieldID, slots)
	if err != nil {
		return nil, err
	}

	return &FieldDetail{
		Field:         *field,
		SlotCost:      field.SlotCost(),
		Slots:         slots,
		Reviews:       reviews,
		AverageRating: avg,
		ReviewCount:   len(reviews),
		Availability:  summary,
	}, nil
}

func (s *Service) availabilitySummary(ctx context.Context, fieldID int64, slots []domain.FieldTimeSlot) ([]DateSummary, error) {
	open := make(map[int64]bool, len(slots))
	for _, slot := range slots {
		if slot.IsAvailable {
			open[slot.ID] = true
		}
	}

	today := s.now()
	summary := make([]DateSummary, 0, availabilityWindowDays+1)
	for i := 0; i <= availabilityWindowDays; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")

		held, err := s.bookings.HeldSlotIDs(ctx, fieldID, date)
		if err != nil {
			return nil, err
		}

		free := len(open)
		for _, id := range held {
			if open[id] {
				free--
			}
		}
		summary = append(summary, DateSummary{Date: date, FreeSlots: free})
	}
	return summary, nil
}

// CreateField registers a new field for the owner and attaches the default
// slot templates in the same call.
func (s *Service) CreateField(ctx context.Context, ownerID int64, req CreateFieldRequest) (*domain.Field, error) {
	fieldType, ok := domain.ParseFieldType(req.FieldType)
	if !ok {
		return nil, ErrValidation
	}
	availability, ok := domain.ParseAvailabilityType(req.Availability)
	if !ok {
		return nil, ErrValidation
	}
	if availability == domain.AvailabilityPaid && req.CostPerHour <= 0 {
		return nil, ErrValidation
	}

	field := &domain.Field{
		OwnerID:      ownerID,
		Name:         req.Name,
		FieldType:    fieldType,
		Location:     req.Location,
		Description:  req.Description,
		CostPerHour:  req.CostPerHour,
		Availability: availability,
		ImageURL:     req.ImageURL,
		IsWomenOnly:  req.IsWomenOnly,
		Capacity:     req.Capacity,
		Amenities:    req.Amenities,
		IsActive:     true,
	}
	if availability == domain.AvailabilityFree {
		field.CostPerHour = 0
	}

	if err := s.fields.Create(ctx, field); err != nil {
		return nil, err
	}

	if err := s.slots.CreateBatch(ctx, domain.DefaultTimeSlots(field.ID)); err != nil {
		return nil, err
	}
	return field, nil
}

func (s *Service) UpdateField(ctx context.Context, ownerID, fieldID int64, req UpdateFieldRequest) (*domain.Field, error) {
	field, err := s.ownedField(ctx, ownerID, fieldID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.FieldType != nil {
		t, ok := domain.ParseFieldType(*req.FieldType)
		if !ok {
			return nil, ErrValidation
		}
		field.FieldType = t
	}
	if req.Location != nil {
		field.Location = *req.Location
	}
	if req.Description != nil {
		field.Description = *req.Description
	}
	if req.CostPerHour != nil {
		if *req.CostPerHour < 0 {
			return nil, ErrValidation
		}
		field.CostPerHour = *req.CostPerHour
	}
	if req.Availability != nil {
		a, ok := domain.ParseAvailabilityType(*req.Availability)
		if !ok {
			return nil, ErrValidation
		}
		field.Availability = a
	}
	if req.ImageURL != nil {
		field.ImageURL = *req.ImageURL
	}
	if req.IsWomenOnly != nil {
		field.IsWomenOnly = *req.IsWomenOnly
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrValidation
		}
		field.Capacity = *req.Capacity
	}
	if req.Amenities != nil {
		field.Amenities = *req.Amenities
	}

	if field.Availability == domain.AvailabilityFree {
		field.CostPerHour = 0
	}
	if field.Availability == domain.AvailabilityPaid && field.CostPerHour <= 0 {
		return nil, ErrValidation
	}

	if err := s.fields.Update(ctx, field); err != nil {
		return nil, err
	}
	return field, nil
}

// DeactivateField hides the field from listings and new bookings. Existing
// bookings are untouched.
func (s *Service) DeactivateField(ctx context.Context, ownerID, fieldID int64) error {
	if _, err := s.ownedField(ctx, ownerID, fieldID); err != nil {
		return err
	}
	return s.fields.SetActive(ctx, fieldID, false)
}

func (s *Service) MyFields(ctx context.Context, ownerID int64) ([]domain.Field, error) {
	return s.fields.GetByOwner(ctx, ownerID)
}

func (s *Service) ListSlots(ctx context.Context, ownerID, fieldID int64) ([]domain.FieldTimeSlot, error) {
	if _, err := s.ownedField(ctx, ownerID, fieldID); err != nil {
		return nil, err
	}
	return s.slots.GetByField(ctx, fieldID, false)
}

// SetSlotAvailability flips one slot template on or off across all dates.
func (s *Service) SetSlotAvailability(ctx context.Context, ownerID, fieldID, slotID int64, available bool) error {
	if _, err := s.ownedField(ctx, ownerID, fieldID); err != nil {
		return err
	}

	if err := s.slots.SetAvailability(ctx, slotID, fieldID, available); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	return nil
}

func (s *Service) FieldBookings(ctx context.Context, ownerID, fieldID int64) ([]domain.Booking, error) {
	if _, err := s.ownedField(ctx, ownerID, fieldID); err != nil {
		return nil, err
	}
	return s.bookings.GetByField(ctx, fieldID)
}

func (s *Service) ownedField(ctx context.Context, ownerID, fieldID int64) (*domain.Field, error) {
	field, err := s.fields.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if field.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return field, nil
}
