package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUsernameAlreadyTaken = errors.New("username already taken")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrAccountDisabled      = errors.New("account disabled")
	ErrInvalidRole          = errors.New("invalid role")
)
