package transform

import (
	"fmt"
	"math"

	"github.com/dino50687/imgcrypt/internal/pixel"
	"github.com/dino50687/imgcrypt/internal/shuffle"
)

type randomSwapTransform struct{}

func (randomSwapTransform) Method() Method { return RandomSwap }

func (randomSwapTransform) Describe() Description {
	return Description{
		Summary: "Swap floor(H*W*percentage) seeded random pixel pairs",
		Parameters: []string{
			"percentage [0,1] (default 0.5)",
			"seed integer (default 42)",
		},
		Reversibility: "exact, the same swaps are replayed in reverse order",
	}
}

func (randomSwapTransform) Validate(p Params) error {
	if math.IsNaN(p.Percentage) || p.Percentage < 0 || p.Percentage > 1 {
		return fmt.Errorf("%w: swap percentage %v outside [0,1]", ErrInvalidParameter, p.Percentage)
	}

	return nil
}

// pairs regenerates the swap sequence for buf's dimensions.
func (randomSwapTransform) pairs(buf *pixel.Buffer, p Params) []shuffle.Pair {
	count := int(math.Floor(float64(buf.Height*buf.Width) * p.Percentage))

	return shuffle.New(p.Seed).PositionPairs(count, buf.Height, buf.Width)
}

func (t randomSwapTransform) Apply(buf *pixel.Buffer, p Params) error {
	if err := t.Validate(p); err != nil {
		return err
	}

	for _, pair := range t.pairs(buf, p) {
		buf.Swap(pair.A.Row, pair.A.Col, pair.B.Row, pair.B.Col)
	}

	return nil
}

func (t randomSwapTransform) Invert(buf *pixel.Buffer, p Params) error {
	if err := t.Validate(p); err != nil {
		return err
	}

	pairs := t.pairs(buf, p)

	for i := len(pairs) - 1; i >= 0; i-- {
		buf.Swap(pairs[i].A.Row, pairs[i].A.Col, pairs[i].B.Row, pairs[i].B.Col)
	}

	return nil
}
