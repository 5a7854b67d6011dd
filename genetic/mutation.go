package genetic

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// MutationMethod perturbs a chromosome in place.
type MutationMethod interface {
	Mutate(rng *rand.Rand, child Chromosome)
}

// GaussianMutation nudges each gene, with a fixed per-gene chance, by a
// random amount of at most its coefficient in either direction.
type GaussianMutation struct {
	chance      float32 // per-gene mutation probability, 0..1
	coefficient float32 // maximum perturbation magnitude
}

// NewGaussianMutation validates the parameters and builds the operator.
func NewGaussianMutation(chance, coefficient float32) (*GaussianMutation, error) {
	if chance < 0 || chance > 1 || math.IsNaN(float64(chance)) {
		return nil, fmt.Errorf("%w: mutation chance %v must be between 0 and 1", ErrInvalidConfig, chance)
	}
	if coefficient < 0 || math.IsNaN(float64(coefficient)) {
		return nil, fmt.Errorf("%w: mutation coefficient %v cannot be negative", ErrInvalidConfig, coefficient)
	}
	return &GaussianMutation{chance: chance, coefficient: coefficient}, nil
}

// Chance returns the per-gene mutation probability.
func (m *GaussianMutation) Chance() float32 { return m.chance }

// Coefficient returns the maximum perturbation magnitude.
func (m *GaussianMutation) Coefficient() float32 { return m.coefficient }

// Mutate implements MutationMethod. Per gene it draws the sign, then the
// mutate decision, then (only when mutating) the magnitude.
func (m *GaussianMutation) Mutate(rng *rand.Rand, child Chromosome) {
	chance := float64(m.chance)
	child.Update(func(_ int, gene float32) float32 {
		sign := float32(1)
		if rng.Float64() < 0.5 {
			sign = -1
		}
		if rng.Float64() < chance {
			gene += sign * m.coefficient * rng.Float32()
		}
		return gene
	})
}
