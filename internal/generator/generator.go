package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidCount is returned when a negative value count is requested
var ErrInvalidCount = errors.New("count must be non-negative")

// Sentinel is the single extra value appended after the doubled range
const Sentinel = 0

// RNG wraps math/rand/v2.Rand for shuffling
type RNG struct {
	*rand.Rand
}

// NewRNG creates a new randomly seeded random number generator.
// Each call is independent, so two fixtures never share an ordering by construction.
func NewRNG() *RNG {
	return newRNGFromSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func newRNGFromSource(src rand.Source) *RNG {
	return &RNG{
		Rand: rand.New(src),
	}
}

// Sequence is the ordered list of values written to a fixture, one per line
type Sequence []int

// BuildSequence returns 1..n, followed by 1..n again, followed by the sentinel.
// The result has length 2n+1 and is not shuffled.
func BuildSequence(n int) (Sequence, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, n)
	}

	seq := make(Sequence, 0, 2*n+1)
	for i := 1; i <= n; i++ {
		seq = append(seq, i)
	}
	seq = append(seq, seq...)
	seq = append(seq, Sentinel)

	return seq, nil
}

// Shuffle permutes seq in place with a uniform Fisher-Yates shuffle
func Shuffle(seq Sequence, rng *RNG) {
	rng.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
}

// Options describes one fixture generation
type Options struct {
	Count      int
	OutputPath string
	RNG        *RNG // nil means a fresh NewRNG()
}

// Generate builds the doubled sequence for opts.Count, shuffles it and writes
// it to opts.OutputPath. The file is truncated if it already exists.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutputPath == "" {
		return nil, fmt.Errorf("output path cannot be empty")
	}

	seq, err := BuildSequence(opts.Count)
	if err != nil {
		return nil, err
	}

	rng := opts.RNG
	if rng == nil {
		rng = NewRNG()
	}
	Shuffle(seq, rng)

	res, err := WriteFile(ctx, opts.OutputPath, seq)
	if err != nil {
		return nil, err
	}
	return res, nil
}
