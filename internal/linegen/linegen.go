// Package linegen generates lines of random alphanumeric characters whose length is
// drawn around a target average.
package linegen

import (
	"math"
	"math/rand/v2"

	"github.com/jotfs/gentext/internal/errs"
)

// Alphabet is the set of characters a line is drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MaxAverage is the largest accepted average size. 2*MaxAverage-1 fits in an int.
const MaxAverage = math.MaxInt / 2

// Generator produces random lines. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator reading from src. If src is nil, a PCG source seeded from
// the process-wide random state is used, so output differs between runs.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rnd: rand.New(src)}
}

// ValidateAverage returns a BadArgument error if no line length range exists for avg.
func ValidateAverage(avg int) error {
	if avg < 1 {
		return errs.Errorf(errs.BadArgument, "average line size must be at least 1, got %d", avg)
	}
	if avg > MaxAverage {
		return errs.Errorf(errs.BadArgument, "average line size %d exceeds maximum %d", avg, MaxAverage)
	}
	return nil
}

// MaxLen returns the longest line a Generator may produce for avg.
func MaxLen(avg int) int {
	return 2*avg - 1
}

// Length draws a line length uniformly from [1, 2*avg-1].
func (g *Generator) Length(avg int) (int, error) {
	if err := ValidateAverage(avg); err != nil {
		return 0, err
	}
	return 1 + g.rnd.IntN(MaxLen(avg)), nil
}

// Append draws a line for avg and appends it to dst, without a trailing newline.
func (g *Generator) Append(dst []byte, avg int) ([]byte, error) {
	n, err := g.Length(avg)
	if err != nil {
		return dst, err
	}
	for i := 0; i < n; i++ {
		dst = append(dst, Alphabet[g.rnd.IntN(len(Alphabet))])
	}
	return dst, nil
}

// Line returns a random line for avg.
func (g *Generator) Line(avg int) (string, error) {
	b, err := g.Append(nil, avg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
