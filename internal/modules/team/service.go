package team

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"turfbook/internal/domain"
	"turfbook/internal/repository"
)

type Service struct {
	teams    TeamRepository
	bookings BookingReader
}

func NewService(teams TeamRepository, bookings BookingReader) *Service {
	return &Service{teams: teams, bookings: bookings}
}

// Join files a join request for a recruiting team. A second request by the
// same user is reported as ErrAlreadyRequested and changes nothing; the
// first request stays Pending.
func (s *Service) Join(ctx context.Context, userID, teamID int64, message string) (*domain.JoinRequest, error) {
	t, err := s.teams.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, t.BookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID == userID {
		return nil, ErrOwnTeam
	}

	if _, err := s.teams.GetJoinRequest(ctx, teamID, userID); err == nil {
		return nil, ErrAlreadyRequested
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	jr := &domain.JoinRequest{
		TeamFormationID: teamID,
		UserID:          userID,
		Message:         message,
		Status:          domain.JoinPending,
	}

	if err := s.teams.CreateJoinRequest(ctx, jr); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyRequested
		}
		return nil, err
	}
	return jr, nil
}

// Manage lets the team owner accept or reject a pending request. Repeating a
// decision is a no-op; flipping a decided request is rejected. Acceptance
// does not decrement the team's required player count.
func (s *Service) Manage(ctx context.Context, ownerID, teamID int64, req ManageRequestBody) (*domain.JoinRequest, error) {
	if err := s.requireOwner(ctx, ownerID, teamID); err != nil {
		return nil, err
	}

	jr, err := s.teams.GetJoinRequestByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if jr.TeamFormationID != teamID {
		return nil, ErrRequestNotFound
	}

	var target domain.JoinRequestStatus
	switch req.Action {
	case "accept":
		target = domain.JoinAccepted
	case "reject":
		target = domain.JoinRejected
	default:
		return nil, ErrValidation
	}

	if jr.Status == target {
		return jr, nil
	}
	if jr.Status != domain.JoinPending {
		return nil, ErrAlreadyDecided
	}

	if err := s.teams.UpdateJoinRequestStatus(ctx, jr.ID, target); err != nil {
		return nil, err
	}

	jr.Status = target
	return jr, nil
}

// PendingRequests lists the requests awaiting the owner's decision.
func (s *Service) PendingRequests(ctx context.Context, ownerID, teamID int64) ([]domain.JoinRequest, error) {
	if err := s.requireOwner(ctx, ownerID, teamID); err != nil {
		return nil, err
	}
	return s.teams.PendingJoinRequests(ctx, teamID)
}

// OpenTeams lists formations recruiting on upcoming confirmed bookings for
// a field.
func (s *Service) OpenTeams(ctx context.Context, fieldID int64) ([]domain.TeamFormation, error) {
	return s.teams.OpenTeamsByField(ctx, fieldID)
}

func (s *Service) requireOwner(ctx context.Context, ownerID, teamID int64) error {
	t, err := s.teams.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	b, err := s.bookings.GetByID(ctx, t.BookingID)
	if err != nil {
		return err
	}
	if b.UserID != ownerID {
		return ErrForbidden
	}
	return nil
}
