package genetic

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Config stores the parameters of an evolution run.
type Config struct {
	GA      GeneticAlgorithmConfig `yaml:"genetic_algorithm"`
	Network NetworkConfig          `yaml:"network"`
}

// GeneticAlgorithmConfig holds population and operator parameters.
type GeneticAlgorithmConfig struct {
	PopulationSize       int     `ini:"population_size" yaml:"population_size"`
	Generations          int     `ini:"generations" yaml:"generations"`
	Seed                 uint64  `ini:"seed" yaml:"seed"`
	MutationChance       float64 `ini:"mutation_chance" yaml:"mutation_chance"`
	MutationCoefficient  float64 `ini:"mutation_coeff" yaml:"mutation_coeff"`
	Workers              int     `ini:"workers" yaml:"workers"` // 0 evolves sequentially
	FitnessThreshold     float64 `ini:"fitness_threshold" yaml:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination" yaml:"no_fitness_termination"`
}

// NetworkConfig holds the shape of the evolved networks.
type NetworkConfig struct {
	Topology []int `ini:"topology" delim:" " yaml:"topology"` // layer widths, inputs first
}

// DefaultConfig returns the parameters the simulation was tuned with.
func DefaultConfig() *Config {
	return &Config{
		GA: GeneticAlgorithmConfig{
			PopulationSize:       128,
			Generations:          300,
			Seed:                 0,
			MutationChance:       0.3,
			MutationCoefficient:  0.5,
			Workers:              0,
			NoFitnessTermination: true,
		},
		Network: NetworkConfig{
			Topology: []int{11, 24, 5},
		},
	}
}

// LoadConfig loads configuration from an INI file, or from YAML when the
// file extension is .yaml or .yml. Keys missing from the file keep their
// DefaultConfig value.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
		}
	default:
		cfg, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true}, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
		}
		if err := cfg.Section("GeneticAlgorithm").StrictMapTo(&config.GA); err != nil {
			return nil, fmt.Errorf("failed to map [GeneticAlgorithm] section: %w", err)
		}
		if err := cfg.Section("Network").StrictMapTo(&config.Network); err != nil {
			return nil, fmt.Errorf("failed to map [Network] section: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every parameter and reports the first offending key.
func (c *Config) Validate() error {
	if c.GA.PopulationSize <= 0 {
		return fmt.Errorf("%w: population_size must be positive", ErrInvalidConfig)
	}
	if c.GA.Generations <= 0 {
		return fmt.Errorf("%w: generations must be positive", ErrInvalidConfig)
	}
	if math.IsNaN(c.GA.MutationChance) || c.GA.MutationChance < 0 || c.GA.MutationChance > 1 {
		return fmt.Errorf("%w: mutation_chance must be between 0 and 1", ErrInvalidConfig)
	}
	if math.IsNaN(c.GA.MutationCoefficient) || c.GA.MutationCoefficient < 0 {
		return fmt.Errorf("%w: mutation_coeff cannot be negative", ErrInvalidConfig)
	}
	if c.GA.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative", ErrInvalidConfig)
	}
	if len(c.Network.Topology) < 2 {
		return fmt.Errorf("%w: topology needs at least 2 layers, got %d", ErrInvalidConfig, len(c.Network.Topology))
	}
	for i, width := range c.Network.Topology {
		if width <= 0 {
			return fmt.Errorf("%w: topology layer %d has width %d", ErrInvalidConfig, i, width)
		}
	}
	return nil
}

// Mutation builds the GaussianMutation described by the config.
func (c *Config) Mutation() (*GaussianMutation, error) {
	return NewGaussianMutation(float32(c.GA.MutationChance), float32(c.GA.MutationCoefficient))
}

// Topology returns a copy of the configured layer widths.
func (c *Config) Topology() []int {
	return append([]int(nil), c.Network.Topology...)
}
