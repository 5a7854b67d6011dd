package genetic

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mutate(t *testing.T, rng *rand.Rand, chance, coefficient float32) []float32 {
	t.Helper()
	m, err := NewGaussianMutation(chance, coefficient)
	require.NoError(t, err)

	child := NewChromosome([]float32{1, 2, 3, 4, 5})
	m.Mutate(rng, child)
	return child.Genes()
}

func TestGaussianMutationInvalidConfig(t *testing.T) {
	for _, tc := range []struct {
		chance, coefficient float32
	}{
		{-0.1, 0.5},
		{1.1, 0.5},
		{float32(math.NaN()), 0.5},
		{0.5, -1},
	} {
		_, err := NewGaussianMutation(tc.chance, tc.coefficient)
		assert.ErrorIs(t, err, ErrInvalidConfig, "chance=%v coefficient=%v", tc.chance, tc.coefficient)
	}
}

func TestGaussianMutationBoundaries(t *testing.T) {
	unchanged := []float32{1, 2, 3, 4, 5}

	t.Run("zero chance and zero coefficient", func(t *testing.T) {
		assert.Equal(t, unchanged, mutate(t, seeded(), 0, 0))
	})
	t.Run("zero chance and nonzero coefficient", func(t *testing.T) {
		assert.Equal(t, unchanged, mutate(t, seeded(), 0, 1))
	})
	t.Run("fifty percent chance and zero coefficient", func(t *testing.T) {
		assert.Equal(t, unchanged, mutate(t, seeded(), 0.5, 0))
	})
	t.Run("max chance and zero coefficient", func(t *testing.T) {
		assert.Equal(t, unchanged, mutate(t, seeded(), 1, 0))
	})
	t.Run("max chance and nonzero coefficient", func(t *testing.T) {
		got := mutate(t, seeded(), 1, 0.5)
		for i, g := range got {
			assert.NotEqual(t, unchanged[i], g, "gene %d", i)
			assert.LessOrEqual(t, math.Abs(float64(g-unchanged[i])), 0.5, "gene %d", i)
		}
	})
}

func TestGaussianMutationDrawOrder(t *testing.T) {
	// Per gene: sign (< 0.5 is negative), mutate decision, then magnitude.
	rng := scripted(
		drawHalf, drawQuarter, magHalf, // +1, mutate, u=0.5
		drawZero, drawZero, magQuarter, // -1, mutate, u=0.25
	)
	m, err := NewGaussianMutation(1, 0.5)
	require.NoError(t, err)

	child := NewChromosome([]float32{1, 2})
	m.Mutate(rng, child)
	assert.Equal(t, []float32{1.25, 1.875}, child.Genes())
}

func TestGaussianMutationSkipsMagnitudeWhenNotMutating(t *testing.T) {
	rng := scripted(
		drawZero, drawHalf, // -1, 0.5 is not below chance: unchanged, no magnitude drawn
		drawHalf, drawQuarter, magThreeQuarters, // +1, mutate, u=0.75
	)
	m, err := NewGaussianMutation(0.5, 0.5)
	require.NoError(t, err)

	child := NewChromosome([]float32{1, 2})
	m.Mutate(rng, child)
	assert.Equal(t, []float32{1, 2.375}, child.Genes())
}

func TestGaussianMutationIsReproducible(t *testing.T) {
	assert.Equal(t, mutate(t, seeded(), 0.5, 0.5), mutate(t, seeded(), 0.5, 0.5))
}

func TestGaussianMutationAccessors(t *testing.T) {
	m, err := NewGaussianMutation(0.3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(0.3), m.Chance())
	assert.Equal(t, float32(0.5), m.Coefficient())
}
