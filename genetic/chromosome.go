package genetic

import (
	"iter"
	"math"
)

// Chromosome is an ordered vector of genes. Its length is fixed by whatever
// produced it (usually a network topology); it never validates that length
// itself, so operators that combine chromosomes must check it.
type Chromosome struct {
	genes []float32
}

// NewChromosome builds a chromosome from a copy of genes.
func NewChromosome(genes []float32) Chromosome {
	c := Chromosome{genes: make([]float32, len(genes))}
	copy(c.genes, genes)
	return c
}

// Len returns the number of genes.
func (c Chromosome) Len() int {
	return len(c.genes)
}

// At returns the gene at index i. It panics if i is out of range, like a slice index.
func (c Chromosome) At(i int) float32 {
	return c.genes[i]
}

// All iterates over (index, gene) pairs without exposing the backing slice.
func (c Chromosome) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		for i, g := range c.genes {
			if !yield(i, g) {
				return
			}
		}
	}
}

// Update replaces every gene in place with fn(index, gene).
// Chromosomes sharing the same backing array observe the change.
func (c Chromosome) Update(fn func(i int, gene float32) float32) {
	for i, g := range c.genes {
		c.genes[i] = fn(i, g)
	}
}

// Genes returns a copy of the genes.
func (c Chromosome) Genes() []float32 {
	out := make([]float32, len(c.genes))
	copy(out, c.genes)
	return out
}

// Clone returns a chromosome with its own backing array.
func (c Chromosome) Clone() Chromosome {
	return NewChromosome(c.genes)
}

// Equal reports whether both chromosomes have the same length and every
// pair of genes differs by at most tolerance.
func (c Chromosome) Equal(other Chromosome, tolerance float32) bool {
	if len(c.genes) != len(other.genes) {
		return false
	}
	for i, g := range c.genes {
		if math.Abs(float64(g-other.genes[i])) > float64(tolerance) {
			return false
		}
	}
	return true
}

// Fingerprint hashes the genes (at 0.01 resolution) into a stable identity
// value, e.g. for tinting individuals of the same lineage alike.
func (c Chromosome) Fingerprint() int32 {
	var acc int32
	for _, g := range c.genes {
		acc = acc*23 + saturateInt32(float64(g)*100)
	}
	return acc
}

func saturateInt32(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
