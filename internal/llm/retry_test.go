package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMock(
		Canned{Err: &UnavailableError{}},
		Canned{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	res, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Content) != `{"ok":true}` {
		t.Errorf("unexpected content: %s", res.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_MalformedOutputRetriedOnce(t *testing.T) {
	mock := NewMock(
		Canned{Err: &MalformedOutputError{Err: errors.New("bad json")}},
		Canned{Err: &MalformedOutputError{Err: errors.New("bad json again")}},
		Canned{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
	// First failure retried, second one final: the third canned response
	// must never be consumed.
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMock(
		Canned{Err: &TruncatedError{}},
		Canned{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var trunc *TruncatedError
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMock(
		Canned{Err: &UnavailableError{}},
		Canned{Err: &UnavailableError{}},
		Canned{Err: &UnavailableError{}},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_RespectsRateLimitWait(t *testing.T) {
	mock := NewMock(
		Canned{Err: &RateLimitError{RetryAfter: 2 * time.Millisecond}},
		Canned{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("expected to wait at least RetryAfter, waited %s", elapsed)
	}
}
