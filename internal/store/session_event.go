package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mentor/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetAction(data.Action).
		SetTopicKey(data.TopicKey).
		SetLevel(data.Level).
		SetSubtopicsCompleted(data.SubtopicsCompleted).
		SetPracticeAttempted(data.PracticeAttempted).
		SetPracticeCorrect(data.PracticeCorrect).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionCount(ctx context.Context, learnerID string) (int, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end"))
	if learnerID != "" {
		q = q.Where(sessionevent.LearnerID(learnerID))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
