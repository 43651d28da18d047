package tutor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/topic"
)

// stubGen answers every content kind deterministically: two-subtopic
// overviews, "right" grades correct, follow-ups always advance.
type stubGen struct {
	calls map[content.Kind]int
}

func (g *stubGen) Generate(_ context.Context, req content.Request) (*content.Content, error) {
	if g.calls == nil {
		g.calls = make(map[content.Kind]int)
	}
	g.calls[req.Kind]++

	switch req.Kind {
	case content.KindTopicOverview:
		return &content.Content{Kind: req.Kind, Overview: &content.TopicOverview{
			Subject:     req.Subject,
			Description: "an overview",
			Subtopics: []content.SubtopicSpec{
				{Key: "basics", Title: "Basics", Objective: "learn the basics"},
				{Key: "depth", Title: "Depth", Objective: "go deeper", Prereqs: []string{"basics"}},
			},
		}}, nil
	case content.KindAssessment:
		set := &content.AssessmentSet{}
		for i, d := range []string{"beginner", "beginner", "intermediate", "intermediate", "advanced"} {
			set.Questions = append(set.Questions, content.AssessmentQuestion{
				ID: fmt.Sprintf("q%d", i+1), Difficulty: d, Text: fmt.Sprintf("diag %d", i+1), Concept: "c",
			})
		}
		return &content.Content{Kind: req.Kind, Assessment: set}, nil
	case content.KindGrading:
		correct := req.Answer == "right"
		return &content.Content{Kind: req.Kind, Grading: &content.Grading{Correct: correct, Feedback: "noted"}}, nil
	case content.KindLesson:
		return &content.Content{Kind: req.Kind, Lesson: &content.Lesson{
			Explanation:      "lesson on " + req.Subtopic,
			Analogies:        []string{"an analogy"},
			GuidingQuestions: []string{"why?", "how?"},
		}}, nil
	case content.KindFollowup:
		return &content.Content{Kind: req.Kind, Followup: &content.Followup{
			Verdict: content.VerdictAdvance, Reply: "good",
		}}, nil
	case content.KindPractice:
		return &content.Content{Kind: req.Kind, Problem: &content.Problem{
			Question: "try this", Answer: "right", Hints: []string{"a hint"},
		}}, nil
	}
	return nil, fmt.Errorf("unexpected kind %q", req.Kind)
}

func testManager(t *testing.T) *profile.Manager {
	t.Helper()
	s, err := profile.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return profile.NewManager(s)
}

func newSession(t *testing.T, learner string, mgr *profile.Manager) (*Session, *stubGen) {
	t.Helper()
	gen := &stubGen{}
	sess, err := NewSession(learner, content.NewCache(gen), mgr, nil)
	if err != nil {
		t.Fatal(err)
	}
	return sess, gen
}

func TestSession_NewLearnerStartsAtTopicChoice(t *testing.T) {
	sess, _ := newSession(t, "ada", testManager(t))
	resp := sess.Start(context.Background())
	if sess.CurrentState() != StateChoosingTopic {
		t.Fatalf("state = %v, want choosing topic", sess.CurrentState())
	}
	if resp.Ended {
		t.Error("start must not end the session")
	}
}

func TestSession_FullRunToDialogue(t *testing.T) {
	ctx := context.Background()
	sess, gen := newSession(t, "ada", testManager(t))
	sess.Start(ctx)

	resp := sess.Handle(ctx, "music theory")
	if sess.CurrentState() != StateAssessing {
		t.Fatalf("state = %v, want assessing", sess.CurrentState())
	}
	if !strings.Contains(resp.Text, "Question 1 of 5") {
		t.Errorf("expected first diagnostic question, got %q", resp.Text)
	}

	// Four right, one skipped: 4 correct -> advanced.
	for i := 0; i < 4; i++ {
		resp = sess.Handle(ctx, "right")
	}
	resp = sess.Handle(ctx, "skip")

	if sess.CurrentState() != StateDialogue {
		t.Fatalf("state = %v, want dialogue", sess.CurrentState())
	}
	if !strings.Contains(resp.Text, "advanced") {
		t.Errorf("expected advanced placement, got %q", resp.Text)
	}
	if gen.calls[content.KindAssessment] != 1 {
		t.Errorf("diagnostic must be one batched call, got %d", gen.calls[content.KindAssessment])
	}
	if gen.calls[content.KindGrading] != 4 {
		t.Errorf("skipped question must not be graded, got %d grading calls", gen.calls[content.KindGrading])
	}
}

func TestSession_QuitMidAssessmentDiscardsPartialResult(t *testing.T) {
	ctx := context.Background()
	mgr := testManager(t)

	seed := profile.New("ada")
	seed.Merge(profile.SessionDelta{TopicKey: "music-theory", Subject: "music theory", Level: topic.LevelAdvanced})
	if err := mgr.Save(seed); err != nil {
		t.Fatal(err)
	}

	sess, _ := newSession(t, "ada", mgr)
	sess.Start(ctx)
	// The continue offer is declined by entering the topic afresh,
	// which re-runs the diagnostic.
	sess.Handle(ctx, "music theory")
	if sess.CurrentState() != StateAssessing {
		t.Fatalf("state = %v, want assessing", sess.CurrentState())
	}

	sess.Handle(ctx, "wrong answer")
	resp := sess.Handle(ctx, "quit")
	if !resp.Ended {
		t.Fatal("quit must end the session")
	}

	after, err := mgr.Load("ada")
	if err != nil {
		t.Fatal(err)
	}
	if got := after.Topics["music-theory"].Level; got != topic.LevelAdvanced {
		t.Errorf("aborted diagnostic must not touch the level, got %v", got)
	}
	if after.TotalSessions != seed.TotalSessions+1 {
		t.Errorf("session count = %d, want %d", after.TotalSessions, seed.TotalSessions+1)
	}
}

func TestSession_DispatcherRejectsInapplicableCommands(t *testing.T) {
	ctx := context.Background()
	sess, _ := newSession(t, "ada", testManager(t))
	sess.Start(ctx)
	sess.Handle(ctx, "music theory")

	resp := sess.Handle(ctx, "HINT")
	if !strings.Contains(resp.Text, "not applicable") {
		t.Errorf("hint during assessment should be rejected, got %q", resp.Text)
	}
	if sess.CurrentState() != StateAssessing {
		t.Error("rejected command must not change state")
	}

	resp = sess.Handle(ctx, "help")
	if !strings.Contains(resp.Text, "Commands") {
		t.Errorf("help should list commands, got %q", resp.Text)
	}
	if sess.CurrentState() != StateAssessing {
		t.Error("help must not change state")
	}
}

func TestSession_PracticeRoundTrip(t *testing.T) {
	ctx := context.Background()
	sess, _ := newSession(t, "ada", testManager(t))
	sess.Start(ctx)
	sess.Handle(ctx, "music theory")
	for i := 0; i < 5; i++ {
		sess.Handle(ctx, "right")
	}

	resp := sess.Handle(ctx, "practice")
	if sess.CurrentState() != StatePractice {
		t.Fatalf("state = %v, want practice", sess.CurrentState())
	}
	if !strings.Contains(resp.Text, "try this") {
		t.Errorf("expected the problem text, got %q", resp.Text)
	}

	resp = sess.Handle(ctx, "hint")
	if !strings.Contains(resp.Text, "a hint") {
		t.Errorf("expected the first hint, got %q", resp.Text)
	}

	resp = sess.Handle(ctx, "right")
	if sess.CurrentState() != StateDialogue {
		t.Fatalf("grading must return to dialogue, got %v", sess.CurrentState())
	}
	if !strings.Contains(resp.Text, "Correct") {
		t.Errorf("expected correct grading, got %q", resp.Text)
	}
}

func TestSession_MasteredTopicOffersRetake(t *testing.T) {
	ctx := context.Background()
	mgr := testManager(t)

	seed := profile.New("ada")
	seed.Merge(profile.SessionDelta{
		TopicKey: "music-theory",
		Subject:  "music theory",
		Level:    topic.LevelIntermediate,
		Subtopics: map[string]profile.StatusDelta{
			"basics": {Status: topic.StatusCompleted},
			"depth":  {Status: topic.StatusCompleted},
		},
	})
	if err := mgr.Save(seed); err != nil {
		t.Fatal(err)
	}

	sess, _ := newSession(t, "ada", mgr)
	sess.Start(ctx)
	resp := sess.Handle(ctx, "continue")
	if sess.CurrentState() != StateMastered {
		t.Fatalf("state = %v, want mastered choice", sess.CurrentState())
	}
	if !strings.Contains(resp.Text, "retake") {
		t.Errorf("expected the retake offer, got %q", resp.Text)
	}

	sess.Handle(ctx, "retake")
	if sess.CurrentState() != StateAssessing {
		t.Errorf("retake should start a fresh diagnostic, got %v", sess.CurrentState())
	}
}

func TestSession_ReturningLearnerContinueSkipsAssessment(t *testing.T) {
	ctx := context.Background()
	mgr := testManager(t)

	seed := profile.New("ada")
	seed.Merge(profile.SessionDelta{
		TopicKey: "music-theory",
		Subject:  "music theory",
		Level:    topic.LevelIntermediate,
		Subtopics: map[string]profile.StatusDelta{
			"basics": {Status: topic.StatusCompleted},
		},
	})
	if err := mgr.Save(seed); err != nil {
		t.Fatal(err)
	}

	sess, gen := newSession(t, "ada", mgr)
	resp := sess.Start(ctx)
	if sess.CurrentState() != StateContinuing {
		t.Fatalf("state = %v, want continue choice", sess.CurrentState())
	}
	if !strings.Contains(resp.Text, "music theory") {
		t.Errorf("expected the last topic named, got %q", resp.Text)
	}

	resp = sess.Handle(ctx, "continue")
	if sess.CurrentState() != StateDialogue {
		t.Fatalf("state = %v, want dialogue", sess.CurrentState())
	}
	if gen.calls[content.KindAssessment] != 0 {
		t.Error("continue must skip the diagnostic")
	}
	if !strings.Contains(resp.Text, "Depth") {
		t.Errorf("dialogue should resume at the unfinished subtopic, got %q", resp.Text)
	}
}

func TestSession_PartialRecordIsNotMastered(t *testing.T) {
	ctx := context.Background()
	mgr := testManager(t)

	seed := profile.New("ada")
	seed.Merge(profile.SessionDelta{
		TopicKey: "music-theory",
		Subject:  "music theory",
		Level:    topic.LevelIntermediate,
		Subtopics: map[string]profile.StatusDelta{
			"basics": {Status: topic.StatusCompleted},
		},
	})
	if err := mgr.Save(seed); err != nil {
		t.Fatal(err)
	}

	sess, _ := newSession(t, "ada", mgr)
	sess.Start(ctx)
	// One of two subtopics done is progress, not mastery: entering the
	// topic afresh runs the diagnostic instead of the retake offer.
	sess.Handle(ctx, "music theory")
	if sess.CurrentState() != StateAssessing {
		t.Fatalf("state = %v, want assessing", sess.CurrentState())
	}
}

func TestSession_ProgressCheckpointsMidSession(t *testing.T) {
	ctx := context.Background()
	mgr := testManager(t)
	sess, _ := newSession(t, "ada", mgr)
	sess.Start(ctx)
	sess.Handle(ctx, "music theory")
	for i := 0; i < 5; i++ {
		sess.Handle(ctx, "right")
	}

	// The completed diagnostic is durable before the session ends.
	after, err := mgr.Load("ada")
	if err != nil {
		t.Fatal(err)
	}
	if got := after.Topics["music-theory"].Level; got != topic.LevelAdvanced {
		t.Errorf("level after diagnostic = %v, want advanced", got)
	}
	if after.TotalSessions != 0 {
		t.Errorf("session count = %d, only quitting ends a session", after.TotalSessions)
	}

	sess.Handle(ctx, "practice")
	sess.Handle(ctx, "right")

	after, err = mgr.Load("ada")
	if err != nil {
		t.Fatal(err)
	}
	rec := after.Topics["music-theory"]
	if rec.PracticeAttempted != 1 || rec.PracticeCorrect != 1 {
		t.Errorf("graded practice should be durable, got (%d, %d)", rec.PracticeAttempted, rec.PracticeCorrect)
	}
}

func TestSession_FailedSaveRetryDoesNotDoubleMerge(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := profile.NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	mgr := profile.NewManager(store)

	sess, _ := newSession(t, "ada", mgr)
	sess.Start(ctx)
	sess.Handle(ctx, "music theory")
	for i := 0; i < 5; i++ {
		sess.Handle(ctx, "right")
	}
	sess.Handle(ctx, "practice")

	// Break the store before the graded answer so both the mid-session
	// checkpoint and the first quit fail to write.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	sess.Handle(ctx, "right")

	resp := sess.Handle(ctx, "quit")
	if resp.Ended {
		t.Fatal("a failed save must keep the session open for a retry")
	}
	if !strings.Contains(resp.Text, "retry") {
		t.Errorf("expected the retry offer, got %q", resp.Text)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	resp = sess.Handle(ctx, "quit")
	if !resp.Ended {
		t.Fatalf("retry quit should save and end, got %q", resp.Text)
	}

	after, err := mgr.Load("ada")
	if err != nil {
		t.Fatal(err)
	}
	rec := after.Topics["music-theory"]
	if rec.PracticeAttempted != 1 || rec.PracticeCorrect != 1 {
		t.Errorf("practice counters = (%d, %d), want (1, 1)", rec.PracticeAttempted, rec.PracticeCorrect)
	}
	if after.TotalSessions != 1 {
		t.Errorf("session count = %d, want 1", after.TotalSessions)
	}
}

func TestSession_CompletionSavesProfile(t *testing.T) {
	ctx := context.Background()
	mgr := testManager(t)
	sess, _ := newSession(t, "ada", mgr)
	sess.Start(ctx)
	sess.Handle(ctx, "music theory")
	for i := 0; i < 5; i++ {
		sess.Handle(ctx, "right")
	}

	// Two guiding questions per subtopic, two subtopics, every answer
	// advances: four answers finish the topic and end the session.
	var resp *Response
	for i := 0; i < 4; i++ {
		resp = sess.Handle(ctx, "a solid answer")
	}
	if !resp.Ended {
		t.Fatalf("finishing the topic should end the session, got %q", resp.Text)
	}

	after, err := mgr.Load("ada")
	if err != nil {
		t.Fatal(err)
	}
	rec := after.Topics["music-theory"]
	if rec.Level != topic.LevelAdvanced {
		t.Errorf("level = %v, want advanced", rec.Level)
	}
	if !rec.Mastered() {
		t.Errorf("all subtopics should be completed, got %v", rec.Subtopics)
	}
}
