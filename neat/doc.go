// Package neat evolves feed-forward neural-network topologies and weights
// with a NEAT-style (NeuroEvolution of Augmenting Topologies) genetic
// algorithm, producing controllers for real-time agents.
//
// Genomes carry node genes and an ordered list of connection genes stamped
// with innovation numbers for lineage tracking. Each generation the
// population is partitioned into species by compatibility distance,
// fitness is shared within species, and offspring are bred by clone,
// crossover, and mutation in proportion to each species' adjusted fitness.
//
// Basic usage:
//
//	config := neat.DefaultConfig(numInputs, numOutputs)
//	pop, err := neat.NewPopulation(config)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	runner := neat.NewEpisodeRunner(config)
//	for i := 0; i < 100; i++ {
//		err := pop.RunGeneration(runner.FitnessFunc(newEnvironment))
//		if err != nil {
//			log.Fatalf("Error running generation: %v", err)
//		}
//	}
package neat
