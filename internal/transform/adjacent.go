package transform

import (
	"github.com/dino50687/imgcrypt/internal/pixel"
)

type adjacentSwapTransform struct{}

func (adjacentSwapTransform) Method() Method { return AdjacentSwap }

func (adjacentSwapTransform) Describe() Description {
	return Description{
		Summary:       "Swap column pairs (0,1), (2,3), ... in every row; an odd last column stays",
		Reversibility: "exact, self-inverse",
	}
}

func (adjacentSwapTransform) Validate(Params) error { return nil }

func (adjacentSwapTransform) Apply(buf *pixel.Buffer, _ Params) error {
	for row := range buf.Height {
		for col := 0; col+1 < buf.Width; col += 2 {
			buf.Swap(row, col, row, col+1)
		}
	}

	return nil
}

func (t adjacentSwapTransform) Invert(buf *pixel.Buffer, p Params) error {
	return t.Apply(buf, p)
}
