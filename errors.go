package ncube

import "errors"

// Sentinel errors for the ncube package.
var (
	// Initialization errors
	ErrAlreadyInitialized     = errors.New("ncube: cube already initialized")
	ErrInvalidDimension       = errors.New("ncube: dimension must be at least 2")
	ErrNilFactory             = errors.New("ncube: piece factory is nil")
	ErrInvalidHistoryCapacity = errors.New("ncube: history capacity must not be negative")

	// Rotation errors
	ErrInvalidAxis  = errors.New("ncube: invalid rotation axis")
	ErrInvalidLayer = errors.New("ncube: layer out of range")

	// Parsing errors
	ErrInvalidNotation = errors.New("ncube: invalid move notation")
)
