package genetic

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"
)

// FitnessFunc is the type for the function provided by the user to evaluate
// fitness. It is handed the current generation and should record a fitness
// on each member, which its Fitness method then reports.
type FitnessFunc[I Individual] func(members []I) error

// Population holds the state of an evolution run across generations.
type Population[I Individual] struct {
	Config     *Config
	Members    []I // current generation
	Generation int
	Best       I // best individual evaluated so far
	HasBest    bool
	History    []Statistics

	ga     *GeneticAlgorithm[I]
	rng    *rand.Rand
	logger *log.Logger
}

// NewPopulation starts a run from an initial generation. All randomness of
// the run is drawn from rng.
func NewPopulation[I Individual](config *Config, ga *GeneticAlgorithm[I], rng *rand.Rand, members []I) (*Population[I], error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("failed to create population: %w", ErrEmptyPopulation)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create population: %w", err)
	}
	return &Population[I]{
		Config:  config,
		Members: members,
		ga:      ga,
		rng:     rng,
		logger:  log.New(io.Discard, "", 0),
	}, nil
}

// SetLogger routes progress lines to logger. By default they are discarded.
func (p *Population[I]) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p.logger = logger
}

// RunGeneration evaluates the current generation and replaces it with its
// offspring. If the fitness threshold is met it returns the best individual
// and true, leaving the evaluated generation in place.
func (p *Population[I]) RunGeneration(fitnessFunc FitnessFunc[I]) (I, bool, error) {
	var none I
	p.Generation++
	genStartTime := time.Now()
	p.logger.Printf("****** Generation %d ******", p.Generation)

	if err := fitnessFunc(p.Members); err != nil {
		return none, false, fmt.Errorf("fitness evaluation failed in generation %d: %w", p.Generation, err)
	}

	stats := ComputeStatistics(p.Generation, p.Members)
	p.History = append(p.History, stats)
	p.logger.Print(stats)

	if best, ok := p.findBest(); ok && (!p.HasBest || best.Fitness() > p.Best.Fitness()) {
		p.Best = best
		p.HasBest = true
		p.logger.Printf(" New best individual found! Fitness: %.4f", best.Fitness())
	}

	if !p.Config.GA.NoFitnessTermination && p.HasBest && float64(p.Best.Fitness()) >= p.Config.GA.FitnessThreshold {
		return p.Best, true, nil
	}

	var (
		next []I
		err  error
	)
	if p.Config.GA.Workers > 0 {
		next, err = p.ga.EvolveParallel(p.rng, p.Members, p.Config.GA.Workers)
	} else {
		next, err = p.ga.Evolve(p.rng, p.Members)
	}
	if err != nil {
		return none, false, fmt.Errorf("reproduction failed in generation %d: %w", p.Generation, err)
	}
	p.Members = next

	p.logger.Printf("Generation %d finished in %s", p.Generation, time.Since(genStartTime))
	return none, false, nil
}

// Run executes generations until the fitness threshold is met or the
// configured number of generations has been evaluated.
func (p *Population[I]) Run(fitnessFunc FitnessFunc[I]) (I, bool, error) {
	for p.Generation < p.Config.GA.Generations {
		winner, found, err := p.RunGeneration(fitnessFunc)
		if err != nil || found {
			return winner, found, err
		}
	}
	return p.Best, false, nil
}

// Chromosomes returns the chromosomes of the current generation.
func (p *Population[I]) Chromosomes() []Chromosome {
	out := make([]Chromosome, len(p.Members))
	for i, m := range p.Members {
		out[i] = m.Chromosome()
	}
	return out
}

func (p *Population[I]) findBest() (I, bool) {
	var best I
	found := false
	for _, m := range p.Members {
		if !found || m.Fitness() > best.Fitness() {
			best = m
			found = true
		}
	}
	return best, found
}
