package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"turfbook/internal/domain"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) CreateTeam(ctx context.Context, t *domain.TeamFormation) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, id int64) (*domain.TeamFormation, error) {
	var t domain.TeamFormation
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) GetTeamByBookingID(ctx context.Context, bookingID int64) (*domain.TeamFormation, error) {
	var t domain.TeamFormation
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&t)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

// OpenTeamsByField lists formations still recruiting on confirmed upcoming
// bookings for the field.
func (r *TeamRepository) OpenTeamsByField(ctx context.Context, fieldID int64) ([]domain.TeamFormation, error) {
	today := time.Now().Format("2006-01-02")

	var out []domain.TeamFormation
	tx := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = team_formations.booking_id").
		Where("bookings.field_id = ? AND bookings.status = ? AND bookings.booking_date >= ?",
			fieldID, string(domain.BookingConfirmed), today).
		Where("team_formations.looking_for_players = ?", true).
		Find(&out)
	return out, tx.Error
}

func (r *TeamRepository) CreateJoinRequest(ctx context.Context, jr *domain.JoinRequest) error {
	return r.db.WithContext(ctx).Create(jr).Error
}

func (r *TeamRepository) GetJoinRequestByID(ctx context.Context, id int64) (*domain.JoinRequest, error) {
	var jr domain.JoinRequest
	if err := r.db.WithContext(ctx).First(&jr, id).Error; err != nil {
		return nil, err
	}
	return &jr, nil
}

func (r *TeamRepository) GetJoinRequest(ctx context.Context, teamID, userID int64) (*domain.JoinRequest, error) {
	var jr domain.JoinRequest
	tx := r.db.WithContext(ctx).
		Where("team_formation_id = ? AND user_id = ?", teamID, userID).First(&jr)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &jr, nil
}

func (r *TeamRepository) PendingJoinRequests(ctx context.Context, teamID int64) ([]domain.JoinRequest, error) {
	var out []domain.JoinRequest
	tx := r.db.WithContext(ctx).
		Where("team_formation_id = ? AND status = ?", teamID, string(domain.JoinPending)).
		Order("created_at").Find(&out)
	return out, tx.Error
}

func (r *TeamRepository) UpdateJoinRequestStatus(ctx context.Context, id int64, status domain.JoinRequestStatus) error {
	return r.db.WithContext(ctx).Model(&domain.JoinRequest{}).Where("id = ?", id).
		Update("status", string(status)).Error
}
