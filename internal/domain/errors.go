package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrItemNotFound = errors.New("catalog item not found")
	ErrInvalidEvent = errors.New("event must carry an item id")
)
