package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError reports a 429 from the provider.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("provider rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// MalformedOutputError reports model output that is not valid JSON or does
// not satisfy the requested schema.
type MalformedOutputError struct {
	Content json.RawMessage
	Err     error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// UnavailableError reports that the provider is unreachable or failing.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError reports output cut off at the MaxTokens cap. This is a
// request-sizing problem, not a transient failure.
type TruncatedError struct {
	Content json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "model output truncated at max tokens"
}
