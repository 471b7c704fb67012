package domain

import "time"

type Role string

const (
	RolePlayer     Role = "player"
	RoleFieldOwner Role = "field_owner"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username" gorm:"uniqueIndex"`
	Email            string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash     string    `json:"-"`
	Name             string    `json:"name"`
	Role             Role      `json:"role"`
	Age              int       `json:"age"`
	Gender           Gender    `json:"gender"`
	Mobile           string    `json:"mobile,omitempty"`
	Address          string    `json:"address,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (u *User) IsFieldOwner() bool {
	return u.Role == RoleFieldOwner
}
