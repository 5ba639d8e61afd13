package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("listing not found")
	ErrUnavailable      = errors.New("listing not available for booking")
	ErrClashUnconfirmed = errors.New("busy-date clash requires confirmation")
	ErrOverlap          = errors.New("booking overlaps an existing booking")
)
