package booking

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrDateOutOfRange = errors.New("booking date outside advance window")
	ErrFieldNotFound  = errors.New("field not found")
	ErrSlotNotFound   = errors.New("time slot not found")
	ErrSlotDisabled   = errors.New("time slot disabled")
	ErrSlotTaken      = errors.New("time slot already booked")
	ErrNotFound       = errors.New("booking not found")
	ErrForbidden      = errors.New("forbidden")
	ErrNotCancellable = errors.New("booking cannot be cancelled")
)
