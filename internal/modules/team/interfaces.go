package team

import (
	"context"

	"turfbook/internal/domain"
)

// TeamRepository defines the persistence operations for team formations and
// their join requests.
type TeamRepository interface {
	GetTeamByID(ctx context.Context, id int64) (*domain.TeamFormation, error)
	OpenTeamsByField(ctx context.Context, fieldID int64) ([]domain.TeamFormation, error)
	CreateJoinRequest(ctx context.Context, jr *domain.JoinRequest) error
	GetJoinRequestByID(ctx context.Context, id int64) (*domain.JoinRequest, error)
	GetJoinRequest(ctx context.Context, teamID, userID int64) (*domain.JoinRequest, error)
	PendingJoinRequests(ctx context.Context, teamID int64) ([]domain.JoinRequest, error)
	UpdateJoinRequestStatus(ctx context.Context, id int64, status domain.JoinRequestStatus) error
}

// BookingReader resolves the booking behind a team formation, to identify
// the team owner.
type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
