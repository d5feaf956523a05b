package transform

import (
	"github.com/dino50687/imgcrypt/internal/pixel"
)

// Transform is a reversible pixel transform.
type Transform interface {
	// Method returns the canonical name.
	Method() Method
	// Describe returns user-facing metadata.
	Describe() Description
	// Validate checks the parameters that do not depend on image dimensions.
	Validate(p Params) error
	// Apply performs the forward transform in place.
	Apply(buf *pixel.Buffer, p Params) error
	// Invert undoes Apply when given identical parameters.
	Invert(buf *pixel.Buffer, p Params) error
}

// Description documents a method for listings.
type Description struct {
	Summary       string
	Parameters    []string
	Reversibility string
}

// catalog is immutable after initialization.
//
//nolint:gochecknoglobals
var catalog = map[Method]Transform{
	XOR:           xorTransform{},
	Arithmetic:    arithmeticTransform{},
	BitShift:      bitShiftTransform{},
	AdjacentSwap:  adjacentSwapTransform{},
	RandomSwap:    randomSwapTransform{},
	BlockSwap:     blockSwapTransform{},
	ChannelRotate: channelRotateTransform{},
}

// Methods lists the catalog in presentation order.
func Methods() []Method {
	return []Method{XOR, Arithmetic, BitShift, AdjacentSwap, RandomSwap, BlockSwap, ChannelRotate}
}

// Lookup resolves a method name to its transform.
func Lookup(name string) (Transform, error) {
	method, err := ParseMethod(name)
	if err != nil {
		return nil, err
	}

	return catalog[method], nil
}

// lookupTable maps every possible sample through fn, clipping the result.
func lookupTable(fn func(int64) int64) *[256]uint8 {
	var table [256]uint8

	for s := range table {
		table[s] = pixel.Clip(fn(int64(s)))
	}

	return &table
}

// mapSamples rewrites every sample through table.
func mapSamples(buf *pixel.Buffer, table *[256]uint8) {
	for i, s := range buf.Pix {
		buf.Pix[i] = table[s]
	}
}
