package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config selects how a generation is computed
type Config struct {
	UseParallel       bool `json:"use_parallel"`
	Workers           int  `json:"workers"`
	ParallelThreshold int  `json:"parallel_threshold"`
	UseMemoryPool     bool `json:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		UseParallel:       true,
		Workers:           0, // 0 means one worker per CPU
		ParallelThreshold: 4096,
		UseMemoryPool:     true,
	}
}

// Validate rejects settings no tick strategy can honor
func (c Config) Validate() error {
	if c.Workers < 0 {
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.ParallelThreshold < 0 {
		return errors.Errorf("[Validate] parallel_threshold must not be negative, got %d", c.ParallelThreshold)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}
