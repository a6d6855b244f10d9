package neat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeciatePartitionIsDisjointCover(t *testing.T) {
	cfg := DefaultConfig(3, 2)
	population := make([]*Genome, 0, 30)
	for i := 0; i < 30; i++ {
		g := NewGenome(3, 2)
		for j := 0; j < i%4; j++ {
			g.AddNodeMutation()
		}
		g.MutateWeights(0.8, 1.0)
		population = append(population, g)
	}

	species := Speciate(population, cfg)
	require.NotEmpty(t, species)

	seen := make(map[*Genome]int)
	total := 0
	for _, s := range species {
		require.NotNil(t, s.Representative)
		require.NotEmpty(t, s.Members)
		total += len(s.Members)
		for _, g := range s.Members {
			seen[g]++
		}
	}
	assert.Equal(t, len(population), total)
	for _, g := range population {
		assert.Equal(t, 1, seen[g], "every genome belongs to exactly one species")
	}
}

func TestSpeciateClonesShareOneSpecies(t *testing.T) {
	cfg := DefaultConfig(2, 2)
	base := NewGenome(2, 2)
	population := []*Genome{base, base.Clone(), base.Clone(), base.Clone()}

	species := Speciate(population, cfg)
	require.Len(t, species, 1)
	assert.Same(t, base, species[0].Representative)
	assert.Len(t, species[0].Members, 4)
}

func TestSpeciateSplitsIncompatibleGenomes(t *testing.T) {
	cfg := DefaultConfig(2, 2)
	cfg.CompatibilityThreshold = 0.01

	base := NewGenome(2, 2)
	diverged := base.Clone()
	diverged.AddNodeMutation()
	diverged.AddNodeMutation()

	species := Speciate([]*Genome{base, diverged}, cfg)
	require.Len(t, species, 2)
	assert.Same(t, base, species[0].Representative)
	assert.Same(t, diverged, species[1].Representative)
}

func TestSpeciateFirstMatchWins(t *testing.T) {
	// Assignment scans species in creation order and takes the first one
	// within the threshold, not the closest.
	cfg := DefaultConfig(2, 2)
	cfg.CompatibilityThreshold = 100.0 // everything is compatible

	a := NewGenome(2, 2)
	b := NewGenome(2, 2)
	b.AddNodeMutation()

	species := Speciate([]*Genome{a, b}, cfg)
	require.Len(t, species, 1)
	assert.Same(t, a, species[0].Representative)
}
