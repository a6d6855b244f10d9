package neat

import (
	"math"
	"math/rand"
)

// Evolve assembles the next generation from an evaluated population.
//
// The population is speciated, each genome's adjusted fitness is computed
// as raw fitness divided by its species' member count, and every species
// receives an offspring budget proportional to its share of the total
// adjusted fitness (at least one). Each species unconditionally carries
// over a clone of its best member; the remaining budget is filled with
// children cloned or crossed from the species' top survivors, each child
// rolling add-node and add-connection mutation and always mutating
// weights. Rounding in the per-species budgets is reconciled afterwards:
// overshoot is trimmed, and a shortfall is backfilled with children bred
// from uniformly random species, ignoring the survivor cutoff.
//
// The result always holds exactly cfg.PopSize genomes.
func Evolve(population []*Genome, cfg *Config) []*Genome {
	species := Speciate(population, cfg)

	for _, s := range species {
		size := float64(len(s.Members))
		for _, g := range s.Members {
			g.AdjustedFitness = g.Fitness / size
		}
	}

	total := 0.0
	for _, s := range species {
		total += s.AdjustedFitnessSum()
	}

	next := make([]*Genome, 0, cfg.PopSize)
	for _, s := range species {
		members := s.membersByFitness()
		next = append(next, members[0].Clone())

		share := 1.0 / float64(len(species))
		if total > 0 {
			share = s.AdjustedFitnessSum() / total
		}
		offspring := int(math.Floor(share * float64(cfg.PopSize)))
		if offspring < 1 {
			offspring = 1
		}

		survivors := int(math.Floor(float64(len(members)) * cfg.SurvivalRatio))
		if survivors < 1 {
			survivors = 1
		}
		parents := members[:survivors]

		// The elite clone already occupies one offspring slot.
		for c := 1; c < offspring; c++ {
			next = append(next, breedChild(parents, cfg))
		}
	}

	if len(next) > cfg.PopSize {
		next = next[:cfg.PopSize]
	}
	for len(next) < cfg.PopSize {
		s := species[rand.Intn(len(species))]
		next = append(next, breedChild(s.Members, cfg))
	}
	return next
}

// breedChild produces one offspring from the given parent pool: a clone of
// a random parent when the mutation-only roll hits or the pool is too
// small for crossover, otherwise a crossover of two parents sampled
// independently with replacement. The child is then mutated and its
// fitness reset for the coming evaluation.
func breedChild(parents []*Genome, cfg *Config) *Genome {
	var child *Genome
	if len(parents) < 2 || rand.Float64() < cfg.MutationOnlyRatio {
		child = parents[rand.Intn(len(parents))].Clone()
	} else {
		child = Crossover(parents[rand.Intn(len(parents))], parents[rand.Intn(len(parents))])
	}
	child.Mutate(cfg)
	child.Fitness = 0
	child.AdjustedFitness = 0
	return child
}
