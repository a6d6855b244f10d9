package neat

import "sort"

// Species is a transient compatibility cluster. Species are rebuilt from
// scratch every generation; nothing about a species survives beyond its
// representative, which is always a member of the current population.
type Species struct {
	Representative *Genome
	Members        []*Genome
}

// AdjustedFitnessSum returns the species' total adjusted fitness.
func (s *Species) AdjustedFitnessSum() float64 {
	sum := 0.0
	for _, g := range s.Members {
		sum += g.AdjustedFitness
	}
	return sum
}

// membersByFitness returns the members sorted descending by raw fitness.
func (s *Species) membersByFitness() []*Genome {
	sorted := make([]*Genome, len(s.Members))
	copy(sorted, s.Members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness > sorted[j].Fitness
	})
	return sorted
}

// Speciate partitions the population into species. Genomes are visited in
// population order; each joins the first species whose representative lies
// within the compatibility threshold, or founds a new species with itself
// as representative. This is an online single-pass clustering, so the
// partition depends on population order.
func Speciate(population []*Genome, cfg *Config) []*Species {
	var species []*Species
	for _, g := range population {
		placed := false
		for _, s := range species {
			if Distance(g, s.Representative, cfg) < cfg.CompatibilityThreshold {
				s.Members = append(s.Members, g)
				placed = true
				break
			}
		}
		if !placed {
			species = append(species, &Species{
				Representative: g,
				Members:        []*Genome{g},
			})
		}
	}
	return species
}
