package genetic

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/sourcegraph/conc/pool"
)

// GeneticAlgorithm produces one generation from the previous one using a
// selection, crossover and mutation strategy. It holds no per-generation
// state and can be reused for every generation.
type GeneticAlgorithm[I Individual] struct {
	create    CreateFunc[I]
	selection SelectionMethod
	crossover CrossoverMethod
	mutation  MutationMethod
}

// NewGeneticAlgorithm wires the strategies together. create turns each
// evolved chromosome into a new individual of the caller's type.
func NewGeneticAlgorithm[I Individual](create CreateFunc[I], selection SelectionMethod, crossover CrossoverMethod, mutation MutationMethod) *GeneticAlgorithm[I] {
	return &GeneticAlgorithm[I]{
		create:    create,
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
	}
}

// Evolve builds a new population of the same size. For every slot, in order,
// it selects two parents (with replacement, they may be the same individual),
// crosses them over, mutates the child and hands it to create. All randomness
// comes from rng in exactly that order, so a fixed seed reproduces the result.
// The input population is never modified.
func (ga *GeneticAlgorithm[I]) Evolve(rng *rand.Rand, population []I) ([]I, error) {
	if len(population) == 0 {
		return nil, fmt.Errorf("evolve: %w", ErrEmptyPopulation)
	}

	fitness := fitnessOf(population)
	next := make([]I, len(population))
	for slot := range next {
		child, err := ga.breed(rng, population, fitness)
		if err != nil {
			return nil, fmt.Errorf("evolve slot %d: %w", slot, err)
		}
		next[slot] = ga.create(child)
	}
	return next, nil
}

// EvolveParallel is Evolve spread over at most workers goroutines.
//
// Each slot gets its own ChaCha8 stream seeded from rng, and all seeds are
// drawn up front in slot order, so the output depends only on rng's state and
// not on workers or scheduling. It does not match Evolve's output for the same
// seed. workers <= 0 means one goroutine per slot. create is called from
// several goroutines at once and must be safe for concurrent use.
func (ga *GeneticAlgorithm[I]) EvolveParallel(rng *rand.Rand, population []I, workers int) ([]I, error) {
	if len(population) == 0 {
		return nil, fmt.Errorf("evolve: %w", ErrEmptyPopulation)
	}

	seeds := make([][32]byte, len(population))
	for i := range seeds {
		for j := 0; j < 4; j++ {
			binary.LittleEndian.PutUint64(seeds[i][j*8:], rng.Uint64())
		}
	}

	fitness := fitnessOf(population)
	next := make([]I, len(population))
	p := pool.New().WithErrors()
	if workers > 0 {
		p = p.WithMaxGoroutines(workers)
	}
	for slot := range next {
		p.Go(func() error {
			sub := rand.New(rand.NewChaCha8(seeds[slot]))
			child, err := ga.breed(sub, population, fitness)
			if err != nil {
				return fmt.Errorf("evolve slot %d: %w", slot, err)
			}
			next[slot] = ga.create(child)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

func (ga *GeneticAlgorithm[I]) breed(rng *rand.Rand, population []I, fitness []float32) (Chromosome, error) {
	a, err := ga.selection.Select(rng, fitness)
	if err != nil {
		return Chromosome{}, fmt.Errorf("failed to select first parent: %w", err)
	}
	b, err := ga.selection.Select(rng, fitness)
	if err != nil {
		return Chromosome{}, fmt.Errorf("failed to select second parent: %w", err)
	}

	child, err := ga.crossover.Crossover(rng, population[a].Chromosome(), population[b].Chromosome())
	if err != nil {
		return Chromosome{}, fmt.Errorf("failed to cross over parents %d and %d: %w", a, b, err)
	}
	// Crossover allocates the child, but a custom strategy may hand back a
	// parent's backing array; never mutate an existing individual.
	if shares(child, population[a].Chromosome()) || shares(child, population[b].Chromosome()) {
		child = child.Clone()
	}
	ga.mutation.Mutate(rng, child)
	return child, nil
}

func shares(a, b Chromosome) bool {
	return len(a.genes) > 0 && len(b.genes) > 0 && &a.genes[0] == &b.genes[0]
}
