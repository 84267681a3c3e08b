package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig holds pipeline defaults. Values come from an optional YAML file;
// CLI flags override individual fields at the call site.
type AppConfig struct {
	// Summarization
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"maxTokens"`
	Temperature float32 `yaml:"temperature"`

	// PII handling
	PIIMode     string `yaml:"piiMode"`
	PIIMask     string `yaml:"piiMask"`
	PIILanguage string `yaml:"piiLanguage"`
	// ChunkChars is kept conservatively below the entity-detection
	// service's 5 KB per-request byte limit.
	ChunkChars int `yaml:"chunkChars"`

	// Async OCR polling
	PollIntervalSeconds int `yaml:"pollIntervalSeconds"`
	PollTimeoutSeconds  int `yaml:"pollTimeoutSeconds"`

	// Object store backend: "s3" or "minio".
	Storage string `yaml:"storage"`
}

// DefaultAppConfig returns the built-in defaults.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Model:               "anthropic.claude-3-5-sonnet-20241022-v2:0",
		MaxTokens:           1024,
		Temperature:         0.3,
		PIIMode:             "redact",
		PIIMask:             "[REDACTED]",
		PIILanguage:         "en",
		ChunkChars:          4000,
		PollIntervalSeconds: 2,
		PollTimeoutSeconds:  300,
		Storage:             "s3",
	}
}

// LoadAppConfig reads the YAML config at path over the defaults. An empty
// path returns the defaults unchanged.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// PollInterval returns the poll interval as a duration.
func (c *AppConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// PollTimeout returns the poll timeout as a duration.
func (c *AppConfig) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutSeconds) * time.Second
}
