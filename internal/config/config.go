// Package config layers the mentor configuration: built-in defaults,
// then the YAML config file, then MENTOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/mentor/internal/llm"
	"github.com/abhisek/mentor/internal/profile"
)

// Config is the resolved application configuration.
type Config struct {
	// Learner is the default learner id when --learner is not given.
	Learner string `yaml:"learner"`

	// Name is an optional display name for greetings, distinct from the
	// learner id the profile is keyed on.
	Name string `yaml:"name"`

	// DataDir overrides where profiles and the event log live.
	DataDir string `yaml:"data_dir"`

	LLM LLMFile `yaml:"llm"`
}

// LLMFile is the file-shaped subset of the provider settings. API keys
// belong in the environment, not the file, but are honored if present.
type LLMFile struct {
	Provider  string       `yaml:"provider"`
	Anthropic ProviderFile `yaml:"anthropic"`
	OpenAI    ProviderFile `yaml:"openai"`
	Gemini    ProviderFile `yaml:"gemini"`
}

// ProviderFile configures one provider in the file.
type ProviderFile struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/mentor/config.yaml, else ~/.config/mentor/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mentor", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mentor", "config.yaml")
	}
	return filepath.Join(home, ".config", "mentor", "config.yaml")
}

// Load reads the config file at path. A missing file yields the zero
// Config, never an error.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LLMConfig produces the provider configuration: defaults, overlaid with
// the file, overlaid with MENTOR_* env vars, falling back to discovery
// from the standard provider key variables.
func (c *Config) LLMConfig() llm.Config {
	out := llm.DefaultConfig()

	if c.LLM.Provider != "" {
		out.Provider = c.LLM.Provider
	}
	applyProviderFile(c.LLM.Anthropic, &out.Anthropic.APIKey, &out.Anthropic.Model, nil)
	applyProviderFile(c.LLM.OpenAI, &out.OpenAI.APIKey, &out.OpenAI.Model, &out.OpenAI.BaseURL)
	applyProviderFile(c.LLM.Gemini, &out.Gemini.APIKey, &out.Gemini.Model, nil)

	out.ApplyEnv()
	out.Discover()
	return out
}

func applyProviderFile(f ProviderFile, key, model, baseURL *string) {
	if f.APIKey != "" {
		*key = f.APIKey
	}
	if f.Model != "" {
		*model = f.Model
	}
	if baseURL != nil && f.BaseURL != "" {
		*baseURL = f.BaseURL
	}
}

// ProfileDir resolves where learner profiles live, honoring the file's
// data_dir before the usual environment fallbacks.
func (c *Config) ProfileDir() string {
	if c.DataDir != "" {
		return filepath.Join(c.DataDir, "learners")
	}
	return profile.DefaultDir()
}

// DBPath resolves the event log location. An empty string means use the
// store's own resolution.
func (c *Config) DBPath() string {
	if c.DataDir != "" {
		return filepath.Join(c.DataDir, "mentor.db")
	}
	return ""
}
