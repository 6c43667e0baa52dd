// Package config holds the user-editable settings: which provider
// analyzes meals, with which model and credentials.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Shining04/Kcal.txt/internal/analyze"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

func Default() Config {
	return Config{
		Provider: ProviderGemini,
		Model:    analyze.DefaultModel,
	}
}

// Load reads the config file. A missing file yields defaults; a
// malformed file is an error because silently dropping credentials
// would be confusing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	switch strings.TrimSpace(c.Provider) {
	case "", ProviderGemini, ProviderOpenAI:
		return nil
	default:
		return fmt.Errorf("unknown provider %q (expected %s or %s)", c.Provider, ProviderGemini, ProviderOpenAI)
	}
}

// ResolveAPIKey prefers the config file, then the provider's usual
// environment variable.
func (c Config) ResolveAPIKey() string {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key
	}
	switch c.Provider {
	case ProviderOpenAI:
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	default:
		return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
}
