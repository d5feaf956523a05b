package transform

import (
	"fmt"

	"github.com/dino50687/imgcrypt/internal/pixel"
)

// maxShift is the sample width; larger shifts give the same result.
const maxShift = 8

type bitShiftTransform struct{}

func (bitShiftTransform) Method() Method { return BitShift }

func (bitShiftTransform) Describe() Description {
	return Description{
		Summary: "Shift the bits of every sample, clipping to [0,255]",
		Parameters: []string{
			"amount [0,8] (default 2)",
			"direction left|right (default left)",
		},
		Reversibility: "exact only when no set bits are shifted out and nothing clips",
	}
}

func (t bitShiftTransform) Validate(p Params) error {
	_, err := t.direction(p)

	return err
}

// direction validates p and returns the normalized direction.
func (bitShiftTransform) direction(p Params) (Direction, error) {
	if p.Amount < 0 || p.Amount > maxShift {
		return "", fmt.Errorf("%w: shift amount %d outside [0,%d]", ErrInvalidParameter, p.Amount, maxShift)
	}

	return ParseDirection(string(p.Direction))
}

func (t bitShiftTransform) Apply(buf *pixel.Buffer, p Params) error {
	dir, err := t.direction(p)
	if err != nil {
		return err
	}

	mapSamples(buf, shiftTable(dir, p.Amount))

	return nil
}

func (t bitShiftTransform) Invert(buf *pixel.Buffer, p Params) error {
	dir, err := t.direction(p)
	if err != nil {
		return err
	}

	mapSamples(buf, shiftTable(dir.Opposite(), p.Amount))

	return nil
}

func shiftTable(dir Direction, amount int) *[256]uint8 {
	return lookupTable(func(s int64) int64 {
		if dir == Left {
			return s << amount
		}

		return s >> amount
	})
}
