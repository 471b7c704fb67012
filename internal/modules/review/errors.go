package review

import "errors"

var (
	ErrValidation    = errors.New("invalid review data")
	ErrFieldNotFound = errors.New("field not found")
	ErrNotEligible   = errors.New("no qualifying booking for this field")
	ErrNotFound      = errors.New("review not found")
)
