package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when an image cannot be read, decoded, encoded or written.
	ErrIO = errors.New("image I/O failure")
	// ErrUnsupportedFormat is returned for output extensions without an encoder.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported image format", ErrIO)
)
