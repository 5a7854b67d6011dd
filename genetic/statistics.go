package genetic

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes one evaluated generation.
type Statistics struct {
	Generation int
	Size       int

	MinFitness    float64
	MaxFitness    float64
	MeanFitness   float64
	StdDevFitness float64 // sample standard deviation
	TotalFitness  float64

	// SurvivorsPercentage is the fraction of individuals with positive fitness.
	SurvivorsPercentage float64
	// GeneticVariance is the per-gene population variance averaged over all
	// genes. It is 0 when chromosome lengths differ.
	GeneticVariance float64
}

// String formats the statistics as a single progress line.
func (s Statistics) String() string {
	return fmt.Sprintf("generation %d: size=%d min=%.4f max=%.4f mean=%.4f stdev=%.4f survivors=%.2f variance=%.4f",
		s.Generation, s.Size, s.MinFitness, s.MaxFitness, s.MeanFitness, s.StdDevFitness, s.SurvivorsPercentage, s.GeneticVariance)
}

// ComputeStatistics evaluates the statistics of an already evaluated population.
func ComputeStatistics[I Individual](generation int, population []I) Statistics {
	stats := Statistics{Generation: generation, Size: len(population)}
	if len(population) == 0 {
		return stats
	}

	fitness := make([]float64, len(population))
	survivors := 0
	for i, ind := range population {
		fitness[i] = float64(ind.Fitness())
		if fitness[i] > 0 {
			survivors++
		}
	}
	stats.MinFitness = floats.Min(fitness)
	stats.MaxFitness = floats.Max(fitness)
	stats.TotalFitness = floats.Sum(fitness)
	stats.MeanFitness, stats.StdDevFitness = stat.MeanStdDev(fitness, nil)
	if len(fitness) < 2 {
		stats.StdDevFitness = 0
	}
	stats.SurvivorsPercentage = float64(survivors) / float64(len(population))
	stats.GeneticVariance = geneticVariance(population)
	return stats
}

func geneticVariance[I Individual](population []I) float64 {
	if len(population) < 2 {
		return 0
	}
	genes := population[0].Chromosome().Len()
	if genes == 0 {
		return 0
	}
	for _, ind := range population[1:] {
		if ind.Chromosome().Len() != genes {
			return 0
		}
	}

	column := make([]float64, len(population))
	total := 0.0
	for g := 0; g < genes; g++ {
		for i, ind := range population {
			column[i] = float64(ind.Chromosome().At(g))
		}
		total += stat.Variance(column, nil)
	}
	return total / float64(genes)
}
