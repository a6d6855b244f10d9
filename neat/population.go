package neat

import (
	"fmt"

	"github.com/google/uuid"
)

// FitnessFunc is supplied by the caller to evaluate a generation. It must
// set the Fitness field of every genome it is given.
type FitnessFunc func(genomes []*Genome) error

// Population holds the state of an evolutionary run: the current
// generation of genomes, the generation counter, and the best genome seen
// so far. The genome order is preserved across calls; speciation depends
// on it.
type Population struct {
	Config     *Config
	Genomes    []*Genome
	Generation int
	RunID      string
	BestGenome *Genome
}

// NewPopulation validates the config and creates the first generation:
// PopSize fresh fully-connected genomes with the configured network shape.
func NewPopulation(cfg *Config) (*Population, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	genomes := make([]*Genome, cfg.PopSize)
	for i := range genomes {
		genomes[i] = NewGenome(cfg.NumInputs, cfg.NumOutputs)
	}
	return &Population{
		Config:  cfg,
		Genomes: genomes,
		RunID:   uuid.NewString(),
	}, nil
}

// RunGeneration executes a single generation: the caller's fitness
// function evaluates every genome, the best genome so far is updated, and
// the population is replaced by its offspring. The evaluator is called
// synchronously; if it never returns, neither does RunGeneration.
func (p *Population) RunGeneration(evaluate FitnessFunc) error {
	p.Generation++

	if err := evaluate(p.Genomes); err != nil {
		return fmt.Errorf("fitness evaluation failed in generation %d: %w", p.Generation, err)
	}

	best := p.findBestGenome()
	if best != nil && (p.BestGenome == nil || best.Fitness > p.BestGenome.Fitness) {
		p.BestGenome = best.Clone()
		fmt.Printf(" New best genome: fitness %.4f (%d nodes, %d connections)\n",
			best.Fitness, len(best.Nodes), len(best.Connections))
	}
	if best != nil {
		fitnesses := make([]float64, len(p.Genomes))
		for i, g := range p.Genomes {
			fitnesses[i] = g.Fitness
		}
		fmt.Printf("Generation %d: best %.4f, mean %.4f\n", p.Generation, best.Fitness, Mean(fitnesses))
	}

	p.Genomes = Evolve(p.Genomes, p.Config)
	return nil
}

// findBestGenome returns the highest-fitness genome of the current
// generation, or nil for an empty population.
func (p *Population) findBestGenome() *Genome {
	var best *Genome
	for _, g := range p.Genomes {
		if best == nil || g.Fitness > best.Fitness {
			best = g
		}
	}
	return best
}
