package genetic

// Individual is a population member as seen by the algorithm: a chromosome
// paired with the fitness the caller evaluated for it.
type Individual interface {
	Fitness() float32
	// Chromosome returns the individual's genes. The algorithm only reads it.
	Chromosome() Chromosome
}

// CreateFunc builds a new individual from an evolved chromosome. The result
// should start from a fresh fitness baseline; the caller re-evaluates it.
type CreateFunc[I Individual] func(Chromosome) I

func fitnessOf[I Individual](population []I) []float32 {
	fitness := make([]float32, len(population))
	for i, ind := range population {
		fitness[i] = ind.Fitness()
	}
	return fitness
}
