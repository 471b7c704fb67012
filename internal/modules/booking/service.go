package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"turfbook/internal/domain"
	"turfbook/internal/repository"
)

// advanceWindowDays is how far ahead a slot can be reserved, today included.
const advanceWindowDays = 7

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	fields   FieldReader
	slots    SlotReader
	teams    TeamWriter

	now func() time.Time
}

func NewService(bookings BookingRepository, fields FieldReader, slots SlotReader, teams TeamWriter) *Service {
	return &Service{
		bookings: bookings,
		fields:   fields,
		slots:    slots,
		teams:    teams,
		now:      time.Now,
	}
}

// Reserve books one slot template on one date. The pre-check against held
// bookings gives a friendly conflict early, but correctness rests on the
// partial unique index: the losing insert of a race comes back as a unique
// violation and is reported as the same conflict.
func (s *Service) Reserve(ctx context.Context, req ReserveRequest) (*domain.Booking, error) {
	date, err := time.Parse(dateLayout, req.BookingDate)
	if err != nil {
		return nil, ErrValidation
	}

	today := s.today()
	if date.Before(today) || date.After(today.AddDate(0, 0, advanceWindowDays)) {
		return nil, ErrDateOutOfRange
	}

	field, err := s.fields.GetActiveByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}

	slot, err := s.slots.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	if slot.FieldID != field.ID {
		return nil, ErrSlotNotFound
	}
	if !slot.IsAvailable {
		return nil, ErrSlotDisabled
	}

	if req.PlayersCount < 1 || (field.Capacity > 0 && req.PlayersCount > field.Capacity) {
		return nil, ErrValidation
	}

	held, err := s.bookings.HeldSlotIDs(ctx, field.ID, req.BookingDate)
	if err != nil {
		return nil, err
	}
	for _, id := range held {
		if id == slot.ID {
			return nil, ErrSlotTaken
		}
	}

	status := domain.BookingPending
	if field.Availability == domain.AvailabilityFree {
		// auto-confirm, nothing to pay
		status = domain.BookingConfirmed
	}

	b := &domain.Booking{
		UserID:              req.UserID,
		FieldID:             field.ID,
		TimeSlotID:          slot.ID,
		BookingDate:         req.BookingDate,
		PlayersCount:        req.PlayersCount,
		SpecialRequirements: req.SpecialRequirements,
		Status:              status,
		TotalCost:           field.SlotCost(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if req.Team != nil && req.Team.LookingForPlayers {
		team := &domain.TeamFormation{
			BookingID:         b.ID,
			LookingForPlayers: true,
			RequiredPlayers:   req.Team.RequiredPlayers,
			Description:       req.Team.Description,
		}
		if team.RequiredPlayers < 1 {
			team.RequiredPlayers = 1
		}
		if lvl, ok := domain.ParseSkillLevel(req.Team.SkillLevel); ok {
			team.SkillLevel = lvl
		}
		if err := s.teams.CreateTeam(ctx, team); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Cancel moves a Confirmed booking to Cancelled. Pending bookings stay
// uncancellable here, matching the established policy: an unpaid booking
// never confirms and simply expires from view.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
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
	if b.Status != domain.BookingConfirmed {
		return nil, ErrNotCancellable
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, err
	}

	b.Status = domain.BookingCancelled
	return b, nil
}

func (s *Service) MyBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.GetByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
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
	return b, nil
}

// DayAvailability returns the field's enabled slot templates annotated with
// their booked state on the given date.
func (s *Service) DayAvailability(ctx context.Context, fieldID int64, dateStr string) (*DayAvailability, error) {
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return nil, ErrValidation
	}

	if _, err := s.fields.GetActiveByID(ctx, fieldID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}

	slots, err := s.slots.GetByField(ctx, fieldID, true)
	if err != nil {
		return nil, err
	}

	held, err := s.bookings.HeldSlotIDs(ctx, fieldID, dateStr)
	if err != nil {
		return nil, err
	}
	heldSet := make(map[int64]bool, len(held))
	for _, id := range held {
		heldSet[id] = true
	}

	out := &DayAvailability{FieldID: fieldID, Date: dateStr, Slots: make([]SlotStatus, 0, len(slots))}
	for _, slot := range slots {
		out.Slots = append(out.Slots, SlotStatus{Slot: slot, IsBooked: heldSet[slot.ID]})
	}
	return out, nil
}

func (s *Service) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
