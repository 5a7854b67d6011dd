package genetic

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// SelectionMethod picks a parent. The population is viewed through its
// fitness values; Select returns the index of the chosen individual.
type SelectionMethod interface {
	Select(rng *rand.Rand, fitness []float32) (int, error)
}

// RouletteWheelSelection picks individual i with probability fitness[i] / Σ fitness.
//
// Individuals with zero fitness are never picked while the total is positive.
// If every fitness is zero the wheel is undefined, so selection falls back to
// a uniform pick. Negative, NaN or infinite fitness values are rejected with
// ErrUndefinedSelectionWeights.
type RouletteWheelSelection struct{}

// NewRouletteWheelSelection creates a roulette-wheel selector.
func NewRouletteWheelSelection() RouletteWheelSelection {
	return RouletteWheelSelection{}
}

// Select implements SelectionMethod.
func (RouletteWheelSelection) Select(rng *rand.Rand, fitness []float32) (int, error) {
	if len(fitness) == 0 {
		return 0, fmt.Errorf("roulette selection: %w", ErrEmptyPopulation)
	}

	total := 0.0
	for i, f := range fitness {
		fv := float64(f)
		if fv < 0 || math.IsNaN(fv) || math.IsInf(fv, 0) {
			return 0, fmt.Errorf("roulette selection: fitness %v at index %d: %w", f, i, ErrUndefinedSelectionWeights)
		}
		total += fv
	}
	if total == 0 {
		return rng.IntN(len(fitness)), nil
	}

	spin := rng.Float64() * total
	cumulative := 0.0
	last := 0
	for i, f := range fitness {
		if f == 0 {
			continue
		}
		cumulative += float64(f)
		if spin < cumulative {
			return i, nil
		}
		last = i
	}
	// Rounding can leave spin marginally past the final cumulative sum.
	return last, nil
}
