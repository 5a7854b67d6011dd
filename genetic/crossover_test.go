package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformCrossoverCoinFlips(t *testing.T) {
	a := NewChromosome([]float32{1, 2, 3})
	b := NewChromosome([]float32{4, 5, 6})

	// heads (< 0.5) takes parent A, tails takes parent B
	child, err := NewUniformCrossover().Crossover(scripted(drawZero, drawHalf, drawQuarter), a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 5, 3}, child.Genes())
}

func TestUniformCrossoverMixesEvenly(t *testing.T) {
	const genes = 10000
	a := NewChromosome(make([]float32, genes))
	bGenes := make([]float32, genes)
	for i := range bGenes {
		bGenes[i] = 1
	}
	b := NewChromosome(bGenes)

	child, err := NewUniformCrossover().Crossover(seeded(), a, b)
	require.NoError(t, err)
	require.Equal(t, genes, child.Len())

	fromB := 0
	for _, g := range child.All() {
		fromB += int(g)
	}
	assert.InDelta(t, 0.5, float64(fromB)/genes, 0.03)
}

func TestUniformCrossoverKeepsPositions(t *testing.T) {
	a := NewChromosome([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	b := NewChromosome([]float32{-1, -2, -3, -4, -5, -6, -7, -8})

	child, err := NewUniformCrossover().Crossover(seeded(), a, b)
	require.NoError(t, err)
	require.Equal(t, a.Len(), child.Len())
	for i, g := range child.All() {
		assert.True(t, g == a.At(i) || g == b.At(i), "gene %d = %v", i, g)
	}
}

func TestUniformCrossoverDoesNotAliasParents(t *testing.T) {
	a := NewChromosome([]float32{1, 2})
	b := NewChromosome([]float32{1, 2})

	child, err := NewUniformCrossover().Crossover(seeded(), a, b)
	require.NoError(t, err)
	child.Update(func(int, float32) float32 { return 0 })

	assert.Equal(t, []float32{1, 2}, a.Genes())
	assert.Equal(t, []float32{1, 2}, b.Genes())
}

func TestUniformCrossoverArityMismatch(t *testing.T) {
	_, err := NewUniformCrossover().Crossover(seeded(), NewChromosome([]float32{1, 2}), NewChromosome([]float32{1, 2, 3}))
	assert.ErrorIs(t, err, ErrArityMismatch)
}
