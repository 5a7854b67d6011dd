package genetic

import (
	"math/rand/v2"
)

// Raw source outputs with a known decoding. rand.Rand's Float64 reads the
// low 53 bits, Float32 reads bits 32..55, so each set targets one of them.
const (
	drawZero          uint64 = 0
	drawQuarter       uint64 = 1 << 51
	drawHalf          uint64 = 1 << 52
	drawThreeQuarters uint64 = 1<<52 | 1<<51

	magQuarter       uint64 = 1 << 54
	magHalf          uint64 = 1 << 55
	magThreeQuarters uint64 = 1<<55 | 1<<54
)

// scriptedSource replays values cyclically.
type scriptedSource struct {
	values []uint64
	pos    int
}

func (s *scriptedSource) Uint64() uint64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func scripted(values ...uint64) *rand.Rand {
	return rand.New(&scriptedSource{values: values})
}

func seeded() *rand.Rand {
	return rand.New(rand.NewChaCha8([32]byte{}))
}

// testIndividual's fitness is the sum of its genes.
type testIndividual struct {
	chromosome Chromosome
	fitness    float32
}

func newTestIndividual(c Chromosome) *testIndividual {
	ind := &testIndividual{chromosome: c}
	ind.evaluate()
	return ind
}

func (t *testIndividual) evaluate() {
	t.fitness = 0
	for _, g := range t.chromosome.All() {
		t.fitness += g
	}
}

func (t *testIndividual) Fitness() float32       { return t.fitness }
func (t *testIndividual) Chromosome() Chromosome { return t.chromosome }

func individual(genes ...float32) *testIndividual {
	return newTestIndividual(NewChromosome(genes))
}

func scenarioPopulation() []*testIndividual {
	return []*testIndividual{
		individual(0, 0, 0), // 0
		individual(1, 1, 1), // 3
		individual(1, 2, 1), // 4
		individual(1, 2, 4), // 7
	}
}

func totalFitness(population []*testIndividual) float32 {
	var total float32
	for _, ind := range population {
		total += ind.Fitness()
	}
	return total
}

func genesOf(population []*testIndividual) [][]float32 {
	out := make([][]float32, len(population))
	for i, ind := range population {
		out[i] = ind.Chromosome().Genes()
	}
	return out
}
