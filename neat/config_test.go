package neat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(6, 2)

	assert.Equal(t, 150, cfg.PopSize)
	assert.Equal(t, 6, cfg.NumInputs)
	assert.Equal(t, 2, cfg.NumOutputs)
	assert.Equal(t, 3.0, cfg.CompatibilityThreshold)
	assert.Equal(t, 0.4, cfg.C1)
	assert.Equal(t, 1.0, cfg.C2)
	assert.Equal(t, 1.0, cfg.C3)
	assert.Equal(t, 0.03, cfg.AddNodeProb)
	assert.Equal(t, 0.05, cfg.AddConnProb)
	assert.Equal(t, 0.8, cfg.MutateWeightsProb)
	assert.Equal(t, 0.5, cfg.WeightMutationPower)
	assert.Equal(t, 0.2, cfg.SurvivalRatio)
	assert.Equal(t, 0.25, cfg.MutationOnlyRatio)
	assert.Equal(t, 2000, cfg.MaxSteps)
	assert.Equal(t, 120, cfg.StallSteps)

	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadKnobs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero pop_size", func(c *Config) { c.PopSize = 0 }},
		{"zero num_inputs", func(c *Config) { c.NumInputs = 0 }},
		{"zero num_outputs", func(c *Config) { c.NumOutputs = 0 }},
		{"negative threshold", func(c *Config) { c.CompatibilityThreshold = -1 }},
		{"negative c1", func(c *Config) { c.C1 = -0.1 }},
		{"add_node_prob above one", func(c *Config) { c.AddNodeProb = 1.5 }},
		{"negative add_conn_prob", func(c *Config) { c.AddConnProb = -0.1 }},
		{"mutate_weights_prob above one", func(c *Config) { c.MutateWeightsProb = 2 }},
		{"negative weight_mutation_power", func(c *Config) { c.WeightMutationPower = -1 }},
		{"survival_ratio above one", func(c *Config) { c.SurvivalRatio = 1.1 }},
		{"negative mutation_only_ratio", func(c *Config) { c.MutationOnlyRatio = -0.5 }},
		{"zero max_steps", func(c *Config) { c.MaxSteps = 0 }},
		{"zero stall_steps", func(c *Config) { c.StallSteps = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig(2, 1)
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
		})
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neat.ini")
	contents := `
[NEAT]
pop_size = 42
num_inputs = 6
num_outputs = 1

[Compatibility]
compatibility_threshold = 2.5
c1 = 0.5

[Mutation]
add_node_prob = 0.1

[Episode]
max_steps = 500
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.PopSize)
	assert.Equal(t, 6, cfg.NumInputs)
	assert.Equal(t, 1, cfg.NumOutputs)
	assert.Equal(t, 2.5, cfg.CompatibilityThreshold)
	assert.Equal(t, 0.5, cfg.C1)
	assert.Equal(t, 0.1, cfg.AddNodeProb)
	assert.Equal(t, 500, cfg.MaxSteps)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 1.0, cfg.C2)
	assert.Equal(t, 0.8, cfg.MutateWeightsProb)
	assert.Equal(t, 0.2, cfg.SurvivalRatio)
	assert.Equal(t, 120, cfg.StallSteps)
}

func TestLoadConfigValidatesResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neat.ini")
	contents := `
[NEAT]
pop_size = 42
num_inputs = 6
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	// num_outputs stays at the zero default and fails validation.
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_outputs")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}
