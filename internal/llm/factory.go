package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured provider wrapped with recording and
// retry. rec may be nil when no event store is open.
func NewProvider(ctx context.Context, cfg Config, rec Recorder) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropic(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAI(cfg.OpenAI)
	case "gemini":
		base, err = NewGemini(ctx, cfg.Gemini)
	case "mock":
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → recording → base
	if rec != nil {
		base = WithRecording(base, rec)
	}
	return WithRetry(base, cfg.Retry), nil
}
