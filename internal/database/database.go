package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"turfbook/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema plus the constraints GORM tags cannot express.
// idx_no_double_booking is the consistency anchor of the whole system: it
// serializes concurrent reservations of the same (field, slot, date) tuple,
// so the loser of a race fails its INSERT with a unique violation instead of
// double-booking the slot. Both PostgreSQL and SQLite support partial
// indexes, so the same statement works for either backend.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Field{},
		&domain.FieldTimeSlot{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.TeamFormation{},
		&domain.JoinRequest{},
		&domain.Review{},
	); err != nil {
		return err
	}

	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON bookings (field_id, time_slot_id, booking_date)
WHERE status IN ('Pending', 'Confirmed')
`).Error
}
