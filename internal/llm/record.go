package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// CallRecord describes one provider round-trip for the audit log.
type CallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// Recorder persists call records. The event store implements this; the
// interface lives here so the llm package stays free of storage imports.
type Recorder interface {
	RecordLLMCall(ctx context.Context, rec CallRecord) error
}

// recorded is a decorator that writes a CallRecord for every request.
type recorded struct {
	inner Provider
	log   Recorder
}

// WithRecording wraps p so every call is recorded to log.
func WithRecording(p Provider, log Recorder) Provider {
	return &recorded{inner: p, log: log}
}

func (d *recorded) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	res, err := d.inner.Generate(ctx, req)

	rec := CallRecord{
		Provider:  d.inner.ModelID(),
		Model:     d.inner.ModelID(),
		Purpose:   req.Purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if res != nil {
		rec.Model = res.Model
		rec.InputTokens = res.Usage.InputTokens
		rec.OutputTokens = res.Usage.OutputTokens
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// A failed audit write must not fail the generation itself.
	if logErr := d.log.RecordLLMCall(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: record llm call: %v\n", logErr)
	}

	return res, err
}

func (d *recorded) ModelID() string { return d.inner.ModelID() }
