package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"turfbook/internal/database"
	"turfbook/internal/domain"
)

func main() {
	db, err := database.Connect("turfbook.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM join_requests")
	db.Exec("DELETE FROM team_formations")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM field_time_slots")
	db.Exec("DELETE FROM fields")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	players := make([]domain.User, 0, 3)
	playerNames := []string{"rafiq", "sumaiya", "tanvir"}
	for i, name := range playerNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("player123"), bcrypt.DefaultCost)
		p := domain.User{
			Username:     name,
			Email:        fmt.Sprintf("%s@example.com", name),
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Player %d", i+1),
			Role:         domain.RolePlayer,
			Age:          20 + i,
			Gender:       domain.GenderMale,
			Mobile:       fmt.Sprintf("017123456%02d", i+10),
			IsActive:     true,
		}
		if name == "sumaiya" {
			p.Gender = domain.GenderFemale
		}
		db.Create(&p)
		players = append(players, p)
	}

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := domain.User{
		Username:     "karim",
		Email:        "karim@turfbook.com",
		PasswordHash: string(ownerHash),
		Name:         "Karim Rahman",
		Role:         domain.RoleFieldOwner,
		Age:          35,
		Gender:       domain.GenderMale,
		Mobile:       "01811223344",
		IsActive:     true,
	}
	db.Create(&owner)
	log.Println("Owner created: karim / owner123")

	// ================== FIELDS ==================
	log.Println("Creating fields...")

	fields := []domain.Field{
		{
			OwnerID:      owner.ID,
			Name:         "Dhanmondi Football Turf",
			FieldType:    domain.FieldFootball,
			Location:     "Dhanmondi, Dhaka",
			Description:  "Full-size artificial turf with floodlights",
			CostPerHour:  100,
			Availability: domain.AvailabilityPaid,
			Capacity:     14,
			Amenities:    "Floodlights, Changing room, Parking",
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Mirpur Cricket Ground",
			FieldType:    domain.FieldCricket,
			Location:     "Mirpur, Dhaka",
			Description:  "Practice nets and open ground",
			CostPerHour:  40,
			Availability: domain.AvailabilityPaid,
			Capacity:     22,
			Amenities:    "Nets, Drinking water",
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Gulshan Community Court",
			FieldType:    domain.FieldBasketball,
			Location:     "Gulshan, Dhaka",
			Description:  "Free community basketball court",
			CostPerHour:  0,
			Availability: domain.AvailabilityFree,
			Capacity:     10,
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Banani Ladies Tennis Club",
			FieldType:    domain.FieldTennis,
			Location:     "Banani, Dhaka",
			Description:  "Women-only tennis courts",
			CostPerHour:  80,
			Availability: domain.AvailabilityPaid,
			IsWomenOnly:  true,
			Capacity:     4,
			Amenities:    "Coaching, Equipment rental",
			IsActive:     true,
		},
	}
	for i := range fields {
		db.Create(&fields[i])
		slots := domain.DefaultTimeSlots(fields[i].ID)
		db.Create(&slots)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	var slots []domain.FieldTimeSlot
	db.Where("field_id = ?", fields[0].ID).Order("start_time").Find(&slots)

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	confirmed := domain.Booking{
		UserID:       players[0].ID,
		FieldID:      fields[0].ID,
		TimeSlotID:   slots[rand.Intn(len(slots))].ID,
		BookingDate:  today,
		PlayersCount: 10,
		Status:       domain.BookingConfirmed,
		TotalCost:    150,
	}
	db.Create(&confirmed)

	db.Create(&domain.Payment{
		BookingID:     confirmed.ID,
		Method:        domain.MethodBkash,
		MobileNumber:  players[0].Mobile,
		TransactionID: fmt.Sprintf("BK%s%03d", time.Now().Format("20060102150405"), rand.Intn(1000)),
		Amount:        confirmed.TotalCost,
		Status:        domain.PaymentCompleted,
	})

	pending := domain.Booking{
		UserID:       players[1].ID,
		FieldID:      fields[0].ID,
		TimeSlotID:   slots[(rand.Intn(len(slots)-1) + 1)].ID,
		BookingDate:  tomorrow,
		PlayersCount: 8,
		Status:       domain.BookingPending,
		TotalCost:    150,
	}
	db.Create(&pending)

	// ================== TEAM FORMATION ==================
	log.Println("Creating team formation...")

	teamBooking := domain.Booking{
		UserID:       players[2].ID,
		FieldID:      fields[2].ID,
		TimeSlotID:   mustFirstSlot(db, fields[2].ID),
		BookingDate:  tomorrow,
		PlayersCount: 4,
		Status:       domain.BookingConfirmed,
		TotalCost:    0,
	}
	db.Create(&teamBooking)

	team := domain.TeamFormation{
		BookingID:         teamBooking.ID,
		LookingForPlayers: true,
		RequiredPlayers:   6,
		SkillLevel:        domain.SkillIntermediate,
		Description:       "Casual 5v5, need six more",
	}
	db.Create(&team)

	db.Create(&domain.JoinRequest{
		TeamFormationID: team.ID,
		UserID:          players[0].ID,
		Message:         "Count me in",
		Status:          domain.JoinPending,
	})

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	db.Create(&domain.Review{
		UserID:  players[0].ID,
		FieldID: fields[0].ID,
		Rating:  5,
		Title:   "Great turf",
		Comment: "Excellent surface and the floodlights are bright",
	})

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Players: rafiq / sumaiya / tanvir, password player123")
	log.Println("Owner:   karim, password owner123")
}

func mustFirstSlot(db *gorm.DB, fieldID int64) int64 {
	var s domain.FieldTimeSlot
	if err := db.Where("field_id = ?", fieldID).Order("start_time").First(&s).Error; err != nil {
		log.Fatal("No time slots for field:", err)
	}
	return s.ID
}
