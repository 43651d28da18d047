package store

import (
	"context"
	"testing"

	"github.com/abhisek/mentor/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestSessionCountOnlyCountsEnds(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", LearnerID: "ada", Action: "start", TopicKey: "chemistry"},
		{SessionID: "s1", LearnerID: "ada", Action: "end", TopicKey: "chemistry", DurationSecs: 600},
		{SessionID: "s2", LearnerID: "ada", Action: "start", TopicKey: "chemistry"},
		{SessionID: "s3", LearnerID: "grace", Action: "end", TopicKey: "compilers"},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.SessionCount(ctx, "ada")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("ada sessions = %d, want 1", n)
	}
	n, err = repo.SessionCount(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("all sessions = %d, want 2", n)
	}
}

func TestPracticeAccuracyIgnoresSkips(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	events := []PracticeEventData{
		{SessionID: "s1", TopicKey: "chemistry", SubtopicKey: "bonds", Question: "q1", LearnerAnswer: "a", Correct: true},
		{SessionID: "s1", TopicKey: "chemistry", SubtopicKey: "bonds", Question: "q2", LearnerAnswer: "b", Correct: false},
		{SessionID: "s1", TopicKey: "chemistry", SubtopicKey: "bonds", Question: "q3", Skipped: true},
		{SessionID: "s1", TopicKey: "compilers", SubtopicKey: "lexing", Question: "q4", LearnerAnswer: "c", Correct: true},
	}
	for _, e := range events {
		if err := repo.AppendPracticeEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acc, err := repo.PracticeAccuracy(ctx, "chemistry")
	if err != nil {
		t.Fatal(err)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}

	acc, err = repo.PracticeAccuracy(ctx, "history")
	if err != nil {
		t.Fatal(err)
	}
	if acc != 0 {
		t.Errorf("accuracy with no events = %v, want 0", acc)
	}
}

func TestTokenUsageFiltersByPurpose(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	records := []llm.CallRecord{
		{Provider: "anthropic", Model: "m", Purpose: "lesson", InputTokens: 100, OutputTokens: 200, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "lesson", InputTokens: 50, OutputTokens: 60, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "grading", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for _, rec := range records {
		if err := repo.RecordLLMCall(ctx, rec); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	usage, err := repo.TokenUsage(ctx, "lesson")
	if err != nil {
		t.Fatal(err)
	}
	if usage.Calls != 2 || usage.InputTokens != 150 || usage.OutputTokens != 260 {
		t.Errorf("lesson usage = %+v", usage)
	}

	usage, err = repo.TokenUsage(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if usage.Calls != 3 || usage.InputTokens != 160 {
		t.Errorf("total usage = %+v", usage)
	}
}
