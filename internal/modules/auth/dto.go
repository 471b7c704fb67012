package auth

type RegisterRequest struct {
	Username         string `json:"username" binding:"required,min=3"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	Name             string `json:"name" binding:"required"`
	Role             string `json:"role,omitempty"`
	Age              int    `json:"age,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Mobile           string `json:"mobile,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name             string `json:"name,omitempty"`
	Age              int    `json:"age,omitempty" validate:"omitempty,gte=10,lte=100"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female"`
	Mobile           string `json:"mobile,omitempty" validate:"omitempty,len=11,numeric,startswith=01"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty" validate:"omitempty,len=11,numeric"`
}

type UserPublic struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
