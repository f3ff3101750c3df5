// Package simulation provides configuration for the ray casting scene.
// Only the ray density and the number of random walls can be changed.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config holds the tunable simulation values
type Config struct {
	RayCount      int `json:"ray_count"`      // Rays cast per frame over the full circle
	ObstacleCount int `json:"obstacle_count"` // Random walls added on each regeneration
}

// DefaultConfig returns the stock scene: a ray every 0.1 degrees and five walls
func DefaultConfig() *Config {
	return &Config{
		RayCount:      3600,
		ObstacleCount: 5,
	}
}

// LoadConfig loads simulation config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the counts are usable
func (c *Config) Validate() error {
	if c.RayCount <= 0 {
		return fmt.Errorf("ray_count must be positive, got %d", c.RayCount)
	}
	if c.ObstacleCount < 0 {
		return fmt.Errorf("obstacle_count must not be negative, got %d", c.ObstacleCount)
	}
	return nil
}
