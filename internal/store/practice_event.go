package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mentor/ent/practiceevent"
)

func (r *eventRepo) AppendPracticeEvent(ctx context.Context, data PracticeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PracticeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicKey(data.TopicKey).
		SetSubtopicKey(data.SubtopicKey).
		SetQuestion(data.Question).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetSkipped(data.Skipped).
		SetHintsUsed(data.HintsUsed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice event: %w", err)
	}
	return nil
}

func (r *eventRepo) PracticeAccuracy(ctx context.Context, topicKey string) (float64, error) {
	events, err := r.client.PracticeEvent.Query().
		Where(
			practiceevent.TopicKey(topicKey),
			practiceevent.Skipped(false),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query practice accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
