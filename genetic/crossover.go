package genetic

import (
	"fmt"
	"math/rand/v2"
)

// CrossoverMethod combines two parent chromosomes into a child.
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, parentA, parentB Chromosome) (Chromosome, error)
}

// UniformCrossover copies each gene from either parent with a fair coin flip.
type UniformCrossover struct{}

// NewUniformCrossover creates a uniform crossover operator.
func NewUniformCrossover() UniformCrossover {
	return UniformCrossover{}
}

// Crossover implements CrossoverMethod. Parents must have equal length.
func (UniformCrossover) Crossover(rng *rand.Rand, parentA, parentB Chromosome) (Chromosome, error) {
	if parentA.Len() != parentB.Len() {
		return Chromosome{}, fmt.Errorf("uniform crossover: parent lengths %d and %d: %w", parentA.Len(), parentB.Len(), ErrArityMismatch)
	}

	genes := make([]float32, parentA.Len())
	for i := range genes {
		if rng.Float64() < 0.5 {
			genes[i] = parentA.genes[i]
		} else {
			genes[i] = parentB.genes[i]
		}
	}
	return Chromosome{genes: genes}, nil
}
