package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicKey(data.TopicKey).
		SetCorrect(data.Correct).
		SetSkipped(data.Skipped).
		SetLevel(data.Level).
		SetRetake(data.Retake).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}
