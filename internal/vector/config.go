// File path: internal/vector/config.go
package vector

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config controls the embedding provider client and index build.
type Config struct {
	Model       string        `json:"model"`
	APIKey      string        `json:"api_key"`
	Endpoint    string        `json:"endpoint"`
	Timeout     time.Duration `json:"-"`
	BatchSize   int           `json:"batch_size"`
	Concurrency int           `json:"concurrency"`
}

// Merge overlays non-zero override fields onto the base configuration.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.Model) != "" {
		result.Model = strings.TrimSpace(override.Model)
	}
	if strings.TrimSpace(override.APIKey) != "" {
		result.APIKey = override.APIKey
	}
	if strings.TrimSpace(override.Endpoint) != "" {
		result.Endpoint = strings.TrimSpace(override.Endpoint)
	}
	if override.Timeout > 0 {
		result.Timeout = override.Timeout
	}
	if override.BatchSize > 0 {
		result.BatchSize = override.BatchSize
	}
	if override.Concurrency > 0 {
		result.Concurrency = override.Concurrency
	}
	return result
}

// LoadConfig reads the embedding configuration from the environment and
// applies defaults.
func LoadConfig() (Config, error) {
	cfg := Config{
		Model:    strings.TrimSpace(os.Getenv("OPENAI_EMBED_MODEL")),
		APIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Endpoint: strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")),
	}
	if raw := strings.TrimSpace(os.Getenv("EMBED_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse EMBED_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}
	if raw := strings.TrimSpace(os.Getenv("EMBED_BATCH_SIZE")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse EMBED_BATCH_SIZE: %w", err)
		}
		cfg.BatchSize = size
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Model) == "" {
		c.Model = "text-embedding-3-small"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 64
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
}
