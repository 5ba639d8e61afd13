package catalog

import "errors"

var (
	ErrNotFound    = errors.New("listing not found")
	ErrForbidden   = errors.New("listing does not belong to user")
	ErrInvalidType = errors.New("invalid listing type")
)
