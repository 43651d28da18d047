package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/mentor/internal/topic"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStore_MissingProfileIsEmpty(t *testing.T) {
	s := tempStore(t)

	p, err := s.Load("nobody yet")
	if err != nil {
		t.Fatalf("missing profile must not fail: %v", err)
	}
	if p.LearnerID != "nobody yet" || len(p.Topics) != 0 {
		t.Errorf("expected fresh empty profile, got %+v", p)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := tempStore(t)

	p := New("Ada Lovelace")
	p.Merge(SessionDelta{
		TopicKey:          "number-theory",
		Subject:           "number theory",
		Level:             topic.LevelAdvanced,
		Subtopics:         map[string]StatusDelta{"primes": {Status: topic.StatusCompleted}},
		PracticeAttempted: 2,
		PracticeCorrect:   2,
		At:                time.Now().UTC(),
	})
	p.TotalSessions = 1
	if err := s.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load("Ada Lovelace")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rec := got.Topics["number-theory"]
	if rec.Level != topic.LevelAdvanced || rec.Subtopics["primes"] != topic.StatusCompleted {
		t.Errorf("round-trip lost topic state: %+v", rec)
	}
	if got.TotalSessions != 1 || got.LastTopicKey != "number-theory" {
		t.Errorf("round-trip lost session state: %+v", got)
	}
}

func TestStore_FilenameIsCanonical(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(New("Ada Lovelace!")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ada-lovelace.json")); err != nil {
		t.Errorf("expected canonical filename: %v", err)
	}
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(New("ada")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "ada.json" {
		t.Errorf("expected only ada.json, got %v", entries)
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	s := tempStore(t)
	for _, id := range []string{"ada", "grace"} {
		if err := s.Save(New(id)); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 learners, got %v", ids)
	}

	if err := s.Delete("ada"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("ada"); err != nil {
		t.Errorf("deleting a missing profile must not fail: %v", err)
	}
	ids, err = s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "grace" {
		t.Errorf("expected only grace, got %v", ids)
	}
}
