// Package sampler implements seedable weighted random sampling without
// replacement.
//
// The random stream is owned by an explicit Sampler value rather than
// package-level state, so two samplers with the same seed always
// produce identical selections over identical inputs.
package sampler

import (
	"math/rand"
	"time"

	"github.com/arthur-debert/thanos/pkg/errors"
)

// Sampler owns the pseudo-random stream for one selection run.
type Sampler struct {
	rng *rand.Rand
}

// New creates a time-seeded sampler.
func New() *Sampler {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a sampler with an explicit seed. Given the same
// seed and the same inputs, selections are reproducible.
func NewSeeded(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample draws up to k distinct items without replacement, biased by
// weight. Items and weights are parallel slices; a length mismatch or
// negative k is a programmer error and fails loudly.
//
// Each draw removes the selected item from the pool, so the returned
// order is selection order. When the remaining weights sum to zero the
// draw falls back to a uniform pick, which guarantees progress.
func Sample[T any](s *Sampler, items []T, weights []float64, k int) ([]T, error) {
	if len(items) != len(weights) {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"items and weights length mismatch: %d vs %d", len(items), len(weights))
	}
	if k < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "negative sample size: %d", k)
	}

	pool := make([]T, len(items))
	copy(pool, items)
	poolWeights := make([]float64, len(weights))
	copy(poolWeights, weights)

	if k > len(pool) {
		k = len(pool)
	}

	selected := make([]T, 0, k)
	for len(selected) < k && len(pool) > 0 {
		idx := s.draw(poolWeights)
		selected = append(selected, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
		poolWeights = append(poolWeights[:idx], poolWeights[idx+1:]...)
	}

	return selected, nil
}

// draw picks one index from the remaining pool by cumulative weight.
func (s *Sampler) draw(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	if total == 0 {
		return s.rng.Intn(len(weights))
	}

	r := s.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if cumulative >= r {
			return i
		}
	}

	// Floating point accumulation can leave r just above the final
	// cumulative sum.
	return len(weights) - 1
}
