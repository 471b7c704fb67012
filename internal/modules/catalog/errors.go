package catalog

import "errors"

var (
	ErrValidation   = errors.New("invalid field data")
	ErrNotFound     = errors.New("field not found")
	ErrSlotNotFound = errors.New("time slot not found")
	ErrForbidden    = errors.New("field belongs to another owner")
)
