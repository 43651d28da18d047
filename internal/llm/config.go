package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	APIKey string
	Model  string // default "claude-sonnet"
}

// OpenAIConfig configures the OpenAI provider. BaseURL overrides the
// endpoint for OpenRouter and other OpenAI-compatible APIs.
type OpenAIConfig struct {
	APIKey  string
	Model   string // default "gpt-4o-mini"
	BaseURL string
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string
	Model  string // default "gemini-flash"
}

// DefaultConfig returns the defaults used before file/env layering.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-sonnet"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ApplyEnv overlays MENTOR_* environment variables onto c.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MENTOR_LLM_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("MENTOR_ANTHROPIC_API_KEY"); v != "" {
		c.Anthropic.APIKey = v
	}
	if v := os.Getenv("MENTOR_ANTHROPIC_MODEL"); v != "" {
		c.Anthropic.Model = v
	}
	if v := os.Getenv("MENTOR_OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("MENTOR_OPENAI_MODEL"); v != "" {
		c.OpenAI.Model = v
	}
	if v := os.Getenv("MENTOR_OPENAI_BASE_URL"); v != "" {
		c.OpenAI.BaseURL = v
	}
	if v := os.Getenv("MENTOR_GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("MENTOR_GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
}

// Discover probes the standard API key variables (ANTHROPIC_API_KEY,
// OPENAI_API_KEY, GEMINI_API_KEY, in that order) and fills in the first
// match when no provider-specific key is configured. Returns false when
// nothing usable was found.
func (c *Config) Discover() bool {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey != "" {
			return true
		}
	case "openai":
		if c.OpenAI.APIKey != "" {
			return true
		}
	case "gemini":
		if c.Gemini.APIKey != "" {
			return true
		}
	case "mock":
		return true
	}

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		c.Provider = "anthropic"
		c.Anthropic.APIKey = k
		return true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		c.Provider = "openai"
		c.OpenAI.APIKey = k
		return true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		c.Provider = "gemini"
		c.Gemini.APIKey = k
		return true
	}
	return false
}

// Validate checks that the selected provider has its key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("anthropic provider needs MENTOR_ANTHROPIC_API_KEY or ANTHROPIC_API_KEY")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai provider needs MENTOR_OPENAI_API_KEY or OPENAI_API_KEY")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("gemini provider needs MENTOR_GEMINI_API_KEY or GEMINI_API_KEY")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}
