package neat

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config holds the numeric knobs for an evolutionary run. A Config is
// built once at process start, validated, and then treated as immutable:
// every component receives it at construction and nothing mutates it
// mid-run.
type Config struct {
	// [NEAT]
	PopSize    int `ini:"pop_size"`
	NumInputs  int `ini:"num_inputs"`
	NumOutputs int `ini:"num_outputs"`

	// [Compatibility]
	CompatibilityThreshold float64 `ini:"compatibility_threshold"`
	C1                     float64 `ini:"c1"` // weight-difference coefficient
	C2                     float64 `ini:"c2"` // disjoint coefficient
	C3                     float64 `ini:"c3"` // excess coefficient

	// [Mutation]
	AddNodeProb         float64 `ini:"add_node_prob"`
	AddConnProb         float64 `ini:"add_conn_prob"`
	MutateWeightsProb   float64 `ini:"mutate_weights_prob"`
	WeightMutationPower float64 `ini:"weight_mutation_power"`

	// [Reproduction]
	SurvivalRatio     float64 `ini:"survival_ratio"`
	MutationOnlyRatio float64 `ini:"mutation_only_ratio"`

	// [Episode]
	MaxSteps   int `ini:"max_steps"`
	StallSteps int `ini:"stall_steps"`
}

// DefaultConfig returns a Config with the standard knob values for the
// given network shape.
func DefaultConfig(numInputs, numOutputs int) *Config {
	return &Config{
		PopSize:                150,
		NumInputs:              numInputs,
		NumOutputs:             numOutputs,
		CompatibilityThreshold: 3.0,
		C1:                     0.4,
		C2:                     1.0,
		C3:                     1.0,
		AddNodeProb:            0.03,
		AddConnProb:            0.05,
		MutateWeightsProb:      0.8,
		WeightMutationPower:    0.5,
		SurvivalRatio:          0.2,
		MutationOnlyRatio:      0.25,
		MaxSteps:               2000,
		StallSteps:             120,
	}
}

// LoadConfig reads configuration from an INI file, overlaying the defaults
// with any keys present, and validates the result.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := DefaultConfig(0, 0)
	for _, section := range []string{"NEAT", "Compatibility", "Mutation", "Reproduction", "Episode"} {
		if err := cfg.Section(section).MapTo(config); err != nil {
			return nil, fmt.Errorf("failed to map [%s] section: %w", section, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every knob against its bounds. A Config that passes
// validation never causes the core to raise during normal evolution.
func (c *Config) Validate() error {
	if c.PopSize <= 0 {
		return fmt.Errorf("config error: pop_size must be positive")
	}
	if c.NumInputs <= 0 {
		return fmt.Errorf("config error: num_inputs must be positive")
	}
	if c.NumOutputs <= 0 {
		return fmt.Errorf("config error: num_outputs must be positive")
	}
	if c.CompatibilityThreshold < 0 {
		return fmt.Errorf("config error: compatibility_threshold cannot be negative")
	}
	if c.C1 < 0 || c.C2 < 0 || c.C3 < 0 {
		return fmt.Errorf("config error: compatibility coefficients cannot be negative")
	}
	if c.AddNodeProb < 0 || c.AddNodeProb > 1 {
		return fmt.Errorf("config error: add_node_prob must be between 0 and 1")
	}
	if c.AddConnProb < 0 || c.AddConnProb > 1 {
		return fmt.Errorf("config error: add_conn_prob must be between 0 and 1")
	}
	if c.MutateWeightsProb < 0 || c.MutateWeightsProb > 1 {
		return fmt.Errorf("config error: mutate_weights_prob must be between 0 and 1")
	}
	if c.WeightMutationPower < 0 {
		return fmt.Errorf("config error: weight_mutation_power cannot be negative")
	}
	if c.SurvivalRatio < 0 || c.SurvivalRatio > 1 {
		return fmt.Errorf("config error: survival_ratio must be between 0 and 1")
	}
	if c.MutationOnlyRatio < 0 || c.MutationOnlyRatio > 1 {
		return fmt.Errorf("config error: mutation_only_ratio must be between 0 and 1")
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("config error: max_steps must be positive")
	}
	if c.StallSteps <= 0 {
		return fmt.Errorf("config error: stall_steps must be positive")
	}
	return nil
}
