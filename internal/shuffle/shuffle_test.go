package shuffle_test

import (
	"fmt"
	"os"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/dino50687/imgcrypt/internal/shuffle"
)

// Reference is one seed's expected draws, loaded from testdata/reference.yml.
type Reference struct {
	Seed         int64    `yaml:"seed"`
	Uint64       []uint64 `yaml:"uint64"`
	Intn10       []int    `yaml:"intn10"`
	Pairs        [][]int  `yaml:"pairs_4x5"`
	Permutation6 []int    `yaml:"permutation6"`
}

func loadReferences(t *testing.T) []Reference {
	t.Helper()

	data, err := os.ReadFile("testdata/reference.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var refs []Reference
	if err := yaml.Unmarshal(data, &refs); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	if len(refs) == 0 {
		t.Fatal("no reference cases found")
	}

	return refs
}

func TestReferenceSequences(t *testing.T) {
	t.Parallel()

	for _, ref := range loadReferences(t) {
		t.Run(fmt.Sprintf("seed_%d", ref.Seed), func(t *testing.T) {
			t.Parallel()

			gen := shuffle.New(ref.Seed)
			for i, want := range ref.Uint64 {
				if got := gen.Uint64(); got != want {
					t.Errorf("Uint64 #%d = %d, want %d", i, got, want)
				}
			}

			gen = shuffle.New(ref.Seed)
			for i, want := range ref.Intn10 {
				if got := gen.Intn(10); got != want {
					t.Errorf("Intn(10) #%d = %d, want %d", i, got, want)
				}
			}

			gen = shuffle.New(ref.Seed)
			pairs := gen.PositionPairs(len(ref.Pairs), 4, 5)

			for i, want := range ref.Pairs {
				got := []int{pairs[i].A.Row, pairs[i].A.Col, pairs[i].B.Row, pairs[i].B.Col}
				if !slices.Equal(got, want) {
					t.Errorf("pair #%d = %v, want %v", i, got, want)
				}
			}

			gen = shuffle.New(ref.Seed)
			if got := gen.Permutation(len(ref.Permutation6)); !slices.Equal(got, ref.Permutation6) {
				t.Errorf("Permutation = %v, want %v", got, ref.Permutation6)
			}
		})
	}
}

func TestSameSeedReplays(t *testing.T) {
	t.Parallel()

	first := shuffle.New(99).PositionPairs(500, 37, 53)
	second := shuffle.New(99).PositionPairs(500, 37, 53)

	if !slices.Equal(first, second) {
		t.Fatal("same seed produced different pairs")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	a := shuffle.New(42).Permutation(64)
	b := shuffle.New(43).Permutation(64)

	if slices.Equal(a, b) {
		t.Fatal("different seeds produced the same permutation")
	}
}

func TestPairsStayInBounds(t *testing.T) {
	t.Parallel()

	const height, width = 3, 7

	for _, pair := range shuffle.New(5).PositionPairs(1000, height, width) {
		for _, pos := range []shuffle.Position{pair.A, pair.B} {
			if pos.Row < 0 || pos.Row >= height || pos.Col < 0 || pos.Col >= width {
				t.Fatalf("position %+v out of %dx%d", pos, height, width)
			}
		}
	}
}

func TestPermutationIsBijective(t *testing.T) {
	t.Parallel()

	perm := shuffle.New(7).Permutation(100)
	seen := make([]bool, len(perm))

	for _, v := range perm {
		if seen[v] {
			t.Fatalf("value %d repeated", v)
		}

		seen[v] = true
	}
}

func TestShuffleDrawsOncePerElement(t *testing.T) {
	t.Parallel()

	const n = 10

	shuffled := shuffle.New(1)
	shuffled.Shuffle(n, func(int, int) {})

	skipped := shuffle.New(1)
	for range n {
		skipped.Uint64()
	}

	if shuffled.Uint64() != skipped.Uint64() {
		t.Fatal("Shuffle consumed a different number of draws than elements")
	}
}

func TestIntnPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	shuffle.New(1).Intn(0)
}
