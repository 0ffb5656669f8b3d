// Where: internal/config/load.go
// What: Stack configuration load helpers.
// Why: Validate then decode stack files in one place.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadStackConfig reads, validates, and decodes a stack configuration file.
func LoadStackConfig(path string) (StackConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return StackConfig{}, fmt.Errorf("read stack config: %w", err)
	}
	return ParseStackConfig(content)
}

// ParseStackConfig validates and decodes raw stack configuration content.
func ParseStackConfig(content []byte) (StackConfig, error) {
	if _, err := ValidateStackConfig(content); err != nil {
		return StackConfig{}, fmt.Errorf("invalid stack config: %w", err)
	}

	var cfg StackConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return StackConfig{}, fmt.Errorf("decode stack config: %w", err)
	}
	return cfg, nil
}
