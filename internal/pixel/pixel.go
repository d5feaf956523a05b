// Package pixel holds the in-memory representation of a decoded image.
//
// A Buffer is always three channels (R, G, B) of 8-bit samples, stored
// row-major and channel-minor. Codecs normalize every other color model to
// this layout before any transform sees it.
package pixel

import (
	"bytes"
	"errors"
	"fmt"
)

// Channels is the fixed number of samples per pixel.
const Channels = 3

// ErrInvalidDimensions is returned when a buffer would have no pixels or the
// sample count does not match the dimensions.
var ErrInvalidDimensions = errors.New("invalid buffer dimensions")

// RGB is a single pixel.
type RGB [Channels]uint8

// Buffer is a decoded image of Height rows and Width columns.
type Buffer struct {
	Height int
	Width  int

	// Pix holds Height*Width*Channels samples.
	Pix []uint8
}

// New allocates a zeroed buffer.
func New(height, width int) (*Buffer, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	return &Buffer{
		Height: height,
		Width:  width,
		Pix:    make([]uint8, height*width*Channels),
	}, nil
}

// FromSamples wraps an existing sample slice without copying it.
func FromSamples(height, width int, samples []uint8) (*Buffer, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	if want := height * width * Channels; len(samples) != want {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrInvalidDimensions, len(samples), want)
	}

	return &Buffer{Height: height, Width: width, Pix: samples}, nil
}

// Offset returns the index of the first sample of the pixel at (row, col).
func (b *Buffer) Offset(row, col int) int {
	if row < 0 || row >= b.Height || col < 0 || col >= b.Width {
		panic(fmt.Sprintf("pixel: (%d,%d) out of range %dx%d", row, col, b.Height, b.Width))
	}

	return (row*b.Width + col) * Channels
}

// At returns the pixel at (row, col).
func (b *Buffer) At(row, col int) RGB {
	i := b.Offset(row, col)

	return RGB{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// Set stores the pixel at (row, col).
func (b *Buffer) Set(row, col int, px RGB) {
	i := b.Offset(row, col)

	copy(b.Pix[i:i+Channels], px[:])
}

// Swap exchanges two pixels. Both are read before either is written, so
// swapping a pixel with itself is a no-op.
func (b *Buffer) Swap(row1, col1, row2, col2 int) {
	i, j := b.Offset(row1, col1), b.Offset(row2, col2)

	for c := range Channels {
		b.Pix[i+c], b.Pix[j+c] = b.Pix[j+c], b.Pix[i+c]
	}
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Height: b.Height,
		Width:  b.Width,
		Pix:    bytes.Clone(b.Pix),
	}
}

// Equal reports whether both buffers have the same dimensions and samples.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}

	return b.Height == other.Height && b.Width == other.Width && bytes.Equal(b.Pix, other.Pix)
}

// Fill sets every pixel to px.
func (b *Buffer) Fill(px RGB) {
	for i := 0; i < len(b.Pix); i += Channels {
		copy(b.Pix[i:i+Channels], px[:])
	}
}

// Clip clamps a widened intermediate value into the sample range.
// It is the only narrowing point for numeric transforms; whatever lies
// outside [0,255] is lost.
func Clip(v int64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
