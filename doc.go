// Package genetic provides a deterministic genetic algorithm for evolving the
// weights of small fixed-topology feed-forward neural networks.
//
// The algorithm works on chromosomes: flat vectors of float32 genes. A
// network flattens into a chromosome and is rebuilt from one, and a
// chromosome round-trips through a compact base-52 "DNA" string. All
// randomness is drawn from a *rand.Rand passed in by the caller, so a fixed
// seed reproduces a run exactly.
//
// Basic usage:
//
//	config, err := genetic.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	mutation, err := config.Mutation()
//	if err != nil {
//		log.Fatalf("Error creating mutation: %v", err)
//	}
//	ga := genetic.NewGeneticAlgorithm(newAgent,
//		genetic.NewRouletteWheelSelection(),
//		genetic.NewUniformCrossover(),
//		mutation)
//
//	rng := rand.New(rand.NewPCG(config.GA.Seed, config.GA.Seed))
//	pop, err := genetic.NewPopulation(config, ga, rng, initialAgents)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	// Evaluate, select, cross over and mutate until the threshold is met
//	winner, found, err := pop.Run(evalAgents)
//
// Each agent rebuilds its network with nn.FromChromosome before evaluation.
package genetic
