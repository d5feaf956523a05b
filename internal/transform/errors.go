package transform

import "errors"

var (
	// ErrInvalidParameter is returned for out-of-range or nonsensical method parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrUnknownMethod is returned when a method name is not in the catalog.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrDimensionMismatch is returned when the image is too small for the requested block size.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
