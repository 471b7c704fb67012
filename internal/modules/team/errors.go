package team

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("team formation not found")
	ErrRequestNotFound  = errors.New("join request not found")
	ErrForbidden        = errors.New("forbidden")
	ErrOwnTeam          = errors.New("cannot join your own team")
	ErrAlreadyRequested = errors.New("join request already exists")
	ErrAlreadyDecided   = errors.New("join request already decided")
)
