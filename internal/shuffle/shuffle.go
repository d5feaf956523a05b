// Package shuffle produces reproducible pseudo-random draws for the positional
// transforms.
//
// The generator is fixed and fully specified so that the same seed yields the
// same sequence on every platform and in every implementation:
//
//   - seeding: state = splitmix64(uint64(seed)); a zero state is replaced by
//     0x9E3779B97F4A7C15.
//   - step (xorshift64*): x ^= x>>12; x ^= x<<25; x ^= x>>27;
//     output = x * 0x2545F4914F6CDD1D.
//   - bounded draw: Intn(n) = (uint64(uint32(output>>32)) * n) >> 32, one step
//     per draw with no rejection.
//
// A Generator is not safe for concurrent use; each transform call owns one.
package shuffle

const (
	goldenGamma  = 0x9E3779B97F4A7C15
	xorshiftMult = 0x2545F4914F6CDD1D
)

// Generator is a seeded xorshift64* stream.
type Generator struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed int64) *Generator {
	state := splitmix64(uint64(seed)) //nolint:gosec // two's complement reinterpretation is intended

	if state == 0 {
		state = goldenGamma
	}

	return &Generator{state: state}
}

// splitmix64 scrambles the seed so nearby seeds start far apart.
func splitmix64(x uint64) uint64 {
	x += goldenGamma
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB

	return x ^ (x >> 31)
}

// Uint64 advances the stream and returns the next output.
func (g *Generator) Uint64() uint64 {
	x := g.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	g.state = x

	return x * xorshiftMult
}

// Intn returns a value in [0, n). It panics if n <= 0 or n > 1<<32.
func (g *Generator) Intn(n int) int {
	if n <= 0 || uint64(n) > 1<<32 {
		panic("shuffle: Intn argument out of range")
	}

	hi := g.Uint64() >> 32

	return int((hi * uint64(n)) >> 32) //nolint:gosec // result < n
}

// Position is a (row, col) coordinate.
type Position struct {
	Row int
	Col int
}

// Pair is two positions whose pixels are exchanged.
type Pair struct {
	A Position
	B Position
}

// PositionPairs draws count pairs over a height x width grid. Each pair draws
// row, col, row, col in that order. Duplicate and self pairs are kept.
func (g *Generator) PositionPairs(count, height, width int) []Pair {
	pairs := make([]Pair, count)

	for i := range pairs {
		pairs[i].A.Row = g.Intn(height)
		pairs[i].A.Col = g.Intn(width)
		pairs[i].B.Row = g.Intn(height)
		pairs[i].B.Col = g.Intn(width)
	}

	return pairs
}

// Shuffle permutes n elements through swap, walking from the last index to
// the first and drawing once per element.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i >= 0; i-- {
		j := g.Intn(i + 1)
		swap(i, j)
	}
}

// Permutation returns a shuffled copy of the identity permutation [0, n).
func (g *Generator) Permutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	g.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	return perm
}
