package transform

import (
	"fmt"

	"github.com/dino50687/imgcrypt/internal/pixel"
)

type xorTransform struct{}

func (xorTransform) Method() Method { return XOR }

func (xorTransform) Describe() Description {
	return Description{
		Summary:       "XOR every sample with a key",
		Parameters:    []string{"key [0,255] (default 123)"},
		Reversibility: "exact, self-inverse",
	}
}

func (xorTransform) Validate(p Params) error {
	if p.Key < 0 || p.Key > 255 {
		return fmt.Errorf("%w: key %d outside [0,255]", ErrInvalidParameter, p.Key)
	}

	return nil
}

func (t xorTransform) Apply(buf *pixel.Buffer, p Params) error {
	if err := t.Validate(p); err != nil {
		return err
	}

	key := uint8(p.Key) //nolint:gosec // validated above

	for i := range buf.Pix {
		buf.Pix[i] ^= key
	}

	return nil
}

func (t xorTransform) Invert(buf *pixel.Buffer, p Params) error {
	return t.Apply(buf, p)
}
