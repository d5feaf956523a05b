package transform

import (
	"fmt"
	"math"

	"github.com/dino50687/imgcrypt/internal/pixel"
)

type arithmeticTransform struct{}

func (arithmeticTransform) Method() Method { return Arithmetic }

func (arithmeticTransform) Describe() Description {
	return Description{
		Summary: "Add, subtract, multiply or floor-divide every sample by a value, clipping to [0,255]",
		Parameters: []string{
			"operation add|subtract|multiply|divide (default add)",
			"value integer, non-zero for multiply/divide (default 50)",
		},
		Reversibility: "exact unless clipping occurred while encrypting",
	}
}

func (t arithmeticTransform) Validate(p Params) error {
	_, err := t.operation(p)

	return err
}

// operation validates p and returns the normalized operation.
func (arithmeticTransform) operation(p Params) (Operation, error) {
	op, err := ParseOperation(string(p.Operation))
	if err != nil {
		return "", err
	}

	if p.Value < math.MinInt32 || p.Value > math.MaxInt32 {
		return "", fmt.Errorf("%w: value %d outside the 32-bit range", ErrInvalidParameter, p.Value)
	}

	// multiply inverts through divide, so both need a non-zero value
	if p.Value == 0 && (op == Multiply || op == Divide) {
		return "", fmt.Errorf("%w: value must be non-zero for %s", ErrInvalidParameter, op)
	}

	return op, nil
}

func (t arithmeticTransform) Apply(buf *pixel.Buffer, p Params) error {
	op, err := t.operation(p)
	if err != nil {
		return err
	}

	mapSamples(buf, arithmeticTable(op, int64(p.Value)))

	return nil
}

func (t arithmeticTransform) Invert(buf *pixel.Buffer, p Params) error {
	op, err := t.operation(p)
	if err != nil {
		return err
	}

	mapSamples(buf, arithmeticTable(op.Inverse(), int64(p.Value)))

	return nil
}

func arithmeticTable(op Operation, value int64) *[256]uint8 {
	return lookupTable(func(s int64) int64 {
		switch op {
		case Add:
			return s + value
		case Subtract:
			return s - value
		case Multiply:
			return s * value
		case Divide:
			return floorDiv(s, value)
		default:
			return s
		}
	})
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b

	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
