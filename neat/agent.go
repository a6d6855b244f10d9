package neat

// Environment is the external collaborator a controller plays against. It
// produces a per-step observation vector together with a liveness flag and
// a running progress score, and consumes the network's action vector.
type Environment interface {
	Observe() (observation []float64, alive bool, progress float64)
	ApplyAction(action []float64)
}

// EpisodeRunner drives one genome through one environment episode. The
// evaluation loop is synchronous and single-threaded: observe, activate,
// act, repeat. MaxSteps bounds the episode length and StallSteps ends an
// episode whose progress score has stopped improving; both are explicit
// budgets so an evaluator cannot hold the evolution loop forever. A value
// of zero disables the corresponding budget.
type EpisodeRunner struct {
	MaxSteps   int
	StallSteps int
}

// NewEpisodeRunner builds a runner with the configured episode budgets.
func NewEpisodeRunner(cfg *Config) *EpisodeRunner {
	return &EpisodeRunner{
		MaxSteps:   cfg.MaxSteps,
		StallSteps: cfg.StallSteps,
	}
}

// Run evaluates one genome against one environment episode and returns
// the terminal progress score, which is the genome's fitness.
func (r *EpisodeRunner) Run(g *Genome, env Environment) float64 {
	bestProgress := 0.0
	haveBest := false
	stalled := 0

	for step := 0; r.MaxSteps <= 0 || step < r.MaxSteps; step++ {
		observation, alive, progress := env.Observe()
		if !alive {
			return progress
		}

		if !haveBest || progress > bestProgress {
			bestProgress = progress
			haveBest = true
			stalled = 0
		} else {
			stalled++
			if r.StallSteps > 0 && stalled >= r.StallSteps {
				return progress
			}
		}

		env.ApplyAction(g.Activate(observation))
	}

	_, _, progress := env.Observe()
	return progress
}

// FitnessFunc adapts the runner into a FitnessFunc that evaluates every
// genome of a generation against a fresh environment episode.
func (r *EpisodeRunner) FitnessFunc(newEnvironment func() Environment) FitnessFunc {
	return func(genomes []*Genome) error {
		for _, g := range genomes {
			g.Fitness = r.Run(g, newEnvironment())
		}
		return nil
	}
}
