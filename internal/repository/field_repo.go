package repository

import (
	"context"

	"gorm.io/gorm"

	"turfbook/internal/domain"
)

type FieldRepository struct {
	db *gorm.DB
}

func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

// FieldFilter covers the basic listing filters.
type FieldFilter struct {
	FieldType    string
	Availability string
	WomenOnly    bool
	Location     string
}

// AdvancedFilter extends FieldFilter with price, rating, capacity, amenity
// and slot-availability constraints.
type AdvancedFilter struct {
	FieldFilter
	MinPrice      *float64
	MaxPrice      *float64
	MinRating     *float64
	MinCapacity   *int
	Amenity       string
	AvailableDate string // YYYY-MM-DD; used together with AvailableTime
	AvailableTime string // HH:MM
	SortBy        string // name | price_low | price_high | rating | newest
}

func (r *FieldRepository) Create(ctx context.Context, f *domain.Field) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FieldRepository) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	var f domain.Field
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FieldRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Field, error) {
	var f domain.Field
	tx := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FieldRepository) Update(ctx context.Context, f *domain.Field) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FieldRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Field{}).Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *FieldRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Field, error) {
	var out []domain.Field
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&out)
	return out, tx.Error
}

func (r *FieldRepository) List(ctx context.Context, f FieldFilter) ([]domain.Field, error) {
	q := r.applyBasicFilter(r.db.WithContext(ctx).Model(&domain.Field{}), f)

	var out []domain.Field
	tx := q.Order("name").Find(&out)
	return out, tx.Error
}

// Search is the simple keyword search over name, location, type and
// description.
func (r *FieldRepository) Search(ctx context.Context, query string) ([]domain.Field, error) {
	q := r.db.WithContext(ctx).Model(&domain.Field{}).Where("is_active = ?", true)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?) OR LOWER(field_type) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			like, like, like, like,
		)
	}

	var out []domain.Field
	tx := q.Order("name").Find(&out)
	return out, tx.Error
}

func (r *FieldRepository) AdvancedSearch(ctx context.Context, f AdvancedFilter) ([]domain.Field, error) {
	q := r.applyBasicFilter(r.db.WithContext(ctx).Table("fields"), f.FieldFilter)

	needRating := f.MinRating != nil || f.SortBy == "rating"
	if needRating {
		q = q.Joins("LEFT JOIN (SELECT field_id, AVG(rating) AS avg_rating FROM reviews GROUP BY field_id) rv ON rv.field_id = fields.id")
	}
	if f.MinRating != nil {
		q = q.Where("rv.avg_rating >= ?", *f.MinRating)
	}
	if f.MinPrice != nil {
		q = q.Where("cost_per_hour >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("cost_per_hour <= ?", *f.MaxPrice)
	}
	if f.MinCapacity != nil {
		q = q.Where("capacity >= ?", *f.MinCapacity)
	}
	if f.Amenity != "" {
		q = q.Where("LOWER(amenities) LIKE LOWER(?)", "%"+f.Amenity+"%")
	}

	// A field matches date/time availability when it has an enabled slot
	// template covering the requested time that no held booking occupies on
	// the requested date.
	if f.AvailableDate != "" && f.AvailableTime != "" {
		q = q.Where(`EXISTS (
			SELECT 1 FROM field_time_slots s
			WHERE s.field_id = fields.id
			  AND s.is_available = ?
			  AND s.start_time <= ? AND s.end_time > ?
			  AND NOT EXISTS (
				SELECT 1 FROM bookings b
				WHERE b.field_id = fields.id
				  AND b.time_slot_id = s.id
				  AND b.booking_date = ?
				  AND b.status IN ('Pending', 'Confirmed')
			  )
		)`, true, f.AvailableTime, f.AvailableTime, f.AvailableDate)
	}

	switch f.SortBy {
	case "price_low":
		q = q.Order("cost_per_hour ASC")
	case "price_high":
		q = q.Order("cost_per_hour DESC")
	case "rating":
		q = q.Order("COALESCE(rv.avg_rating, 0) DESC")
	case "newest":
		q = q.Order("created_at DESC")
	default:
		q = q.Order("name ASC")
	}

	var out []domain.Field
	tx := q.Select("fields.*").Find(&out)
	return out, tx.Error
}

func (r *FieldRepository) applyBasicFilter(q *gorm.DB, f FieldFilter) *gorm.DB {
	q = q.Where("is_active = ?", true)
	if f.FieldType != "" && f.FieldType != "All" {
		q = q.Where("field_type = ?", f.FieldType)
	}
	if f.Availability != "" && f.Availability != "All" {
		q = q.Where("availability = ?", f.Availability)
	}
	if f.WomenOnly {
		q = q.Where("is_women_only = ?", true)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE LOWER(?)", "%"+f.Location+"%")
	}
	return q
}
