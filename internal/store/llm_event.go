package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mentor/ent/llmrequestevent"
	"github.com/abhisek/mentor/internal/llm"
)

// RecordLLMCall implements llm.Recorder: every provider round-trip lands
// in the event log with its token counts and outcome.
func (r *eventRepo) RecordLLMCall(ctx context.Context, rec llm.CallRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetPurpose(rec.Purpose).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success).
		SetErrorMessage(rec.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) TokenUsage(ctx context.Context, purpose string) (TokenTotals, error) {
	q := r.client.LLMRequestEvent.Query()
	if purpose != "" {
		q = q.Where(llmrequestevent.Purpose(purpose))
	}
	events, err := q.All(ctx)
	if err != nil {
		return TokenTotals{}, fmt.Errorf("query token usage: %w", err)
	}

	var t TokenTotals
	for _, e := range events {
		t.Calls++
		t.InputTokens += e.InputTokens
		t.OutputTokens += e.OutputTokens
	}
	return t, nil
}
