package tutor

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/mentor/internal/assessment"
	"github.com/abhisek/mentor/internal/store"
)

// Event log appends are audit only. A failed write warns on stderr and
// never disturbs the session.

func (s *Session) appendSessionEvent(ctx context.Context, action string, durationSecs int) {
	if s.events == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:    s.id,
		LearnerID:    s.learner,
		Action:       action,
		DurationSecs: durationSecs,
	}
	if s.top != nil {
		data.TopicKey = s.top.Key
		data.Level = string(s.level)
		data.SubtopicsCompleted = s.completedThisSession()
	}
	if s.dialogue != nil {
		data.PracticeAttempted, data.PracticeCorrect = s.dialogue.PracticeDeltas()
	}
	if err := s.events.AppendSessionEvent(ctx, data); err != nil {
		warnAudit(err)
	}
}

func (s *Session) appendAssessmentEvent(ctx context.Context, res *assessment.Result) {
	if s.events == nil {
		return
	}
	correct, skipped := 0, 0
	for _, a := range res.Answers {
		switch a.Signal {
		case assessment.SignalCorrect:
			correct++
		case assessment.SignalSkipped:
			skipped++
		}
	}
	err := s.events.AppendAssessmentEvent(ctx, store.AssessmentEventData{
		SessionID: s.id,
		TopicKey:  s.top.Key,
		Correct:   correct,
		Skipped:   skipped,
		Level:     string(res.Level),
		Retake:    s.retake,
	})
	if err != nil {
		warnAudit(err)
	}
}

func (s *Session) appendPracticeEvent(ctx context.Context, question, answer string, correct, skipped bool) {
	if s.events == nil {
		return
	}
	subKey := ""
	if st := s.dialogue.Current(); st != nil {
		subKey = st.Key
	}
	err := s.events.AppendPracticeEvent(ctx, store.PracticeEventData{
		SessionID:     s.id,
		TopicKey:      s.top.Key,
		SubtopicKey:   subKey,
		Question:      question,
		LearnerAnswer: answer,
		Correct:       correct,
		Skipped:       skipped,
		HintsUsed:     s.hintsUsed,
	})
	if err != nil {
		warnAudit(err)
	}
}

func warnAudit(err error) {
	fmt.Fprintf(os.Stderr, "warning: event log write failed: %v\n", err)
}
