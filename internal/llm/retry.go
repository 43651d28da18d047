package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig bounds the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// retrier retries transient provider failures with exponential backoff
// and jitter. Malformed output gets at most one retry regardless of
// MaxAttempts; truncation and context cancellation are never retried.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p with the retry decorator.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Result, error) {
	var lastErr error
	malformedRetried := false

	for attempt := range r.cfg.MaxAttempts {
		res, err := r.inner.Generate(ctx, req)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !retryable(err, &malformedRetried) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

func retryable(err error, malformedRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var trunc *TruncatedError
	if errors.As(err, &trunc) {
		return false
	}

	var malformed *MalformedOutputError
	if errors.As(err, &malformed) {
		if *malformedRetried {
			return false
		}
		*malformedRetried = true
		return true
	}

	// Rate limits, outages, and unclassified network errors are all
	// treated as transient.
	return true
}

func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	w := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if w > float64(r.cfg.MaxWait) {
		w = float64(r.cfg.MaxWait)
	}
	// ±20% jitter.
	w += w * 0.2 * (2*rand.Float64() - 1)
	if w < 0 {
		w = 0
	}
	return time.Duration(w)
}
