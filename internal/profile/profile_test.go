package profile

import (
	"testing"
	"time"

	"github.com/abhisek/mentor/internal/topic"
)

func TestMerge_LevelNeverRegresses(t *testing.T) {
	tests := []struct {
		name   string
		stored topic.Level
		new    topic.Level
		retake bool
		want   topic.Level
	}{
		{"upgrade applies", topic.LevelBeginner, topic.LevelAdvanced, false, topic.LevelAdvanced},
		{"equal applies", topic.LevelIntermediate, topic.LevelIntermediate, false, topic.LevelIntermediate},
		{"downgrade ignored", topic.LevelAdvanced, topic.LevelBeginner, false, topic.LevelAdvanced},
		{"retake overwrites downward", topic.LevelAdvanced, topic.LevelBeginner, true, topic.LevelBeginner},
		{"first level applies", "", topic.LevelIntermediate, false, topic.LevelIntermediate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("ada")
			if tt.stored != "" {
				p.Topics["chemistry"] = TopicRecord{Subject: "chemistry", Level: tt.stored}
			}
			p.Merge(SessionDelta{TopicKey: "chemistry", Subject: "chemistry", Level: tt.new, Retake: tt.retake})
			if got := p.Topics["chemistry"].Level; got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge_StatusMonotonicWithExplicitOverride(t *testing.T) {
	p := New("ada")
	p.Topics["chemistry"] = TopicRecord{
		Subject: "chemistry",
		Subtopics: map[string]topic.Status{
			"atoms": topic.StatusCompleted,
			"bonds": topic.StatusInProgress,
		},
	}

	p.Merge(SessionDelta{
		TopicKey: "chemistry",
		Subtopics: map[string]StatusDelta{
			"atoms": {Status: topic.StatusInProgress}, // lower, ignored
			"bonds": {Status: topic.StatusCompleted},  // higher, applies
			"acids": {Status: topic.StatusInProgress}, // new, applies
		},
	})
	rec := p.Topics["chemistry"]
	if rec.Subtopics["atoms"] != topic.StatusCompleted {
		t.Errorf("atoms = %v, lower status must not overwrite", rec.Subtopics["atoms"])
	}
	if rec.Subtopics["bonds"] != topic.StatusCompleted {
		t.Errorf("bonds = %v, want completed", rec.Subtopics["bonds"])
	}
	if rec.Subtopics["acids"] != topic.StatusInProgress {
		t.Errorf("acids = %v, want in_progress", rec.Subtopics["acids"])
	}

	// Explicit skip overwrites a completed subtopic.
	p.Merge(SessionDelta{
		TopicKey: "chemistry",
		Subtopics: map[string]StatusDelta{
			"atoms": {Status: topic.StatusSkipped, Explicit: true},
		},
	})
	if got := p.Topics["chemistry"].Subtopics["atoms"]; got != topic.StatusSkipped {
		t.Errorf("explicit skip must overwrite, got %v", got)
	}
}

func TestMerge_CountersAdditive(t *testing.T) {
	p := New("ada")
	p.Merge(SessionDelta{TopicKey: "chemistry", PracticeAttempted: 3, PracticeCorrect: 2})
	p.Merge(SessionDelta{TopicKey: "chemistry", PracticeAttempted: 4, PracticeCorrect: 1})

	rec := p.Topics["chemistry"]
	if rec.PracticeAttempted != 7 || rec.PracticeCorrect != 3 {
		t.Errorf("counters = (%d, %d), want (7, 3)", rec.PracticeAttempted, rec.PracticeCorrect)
	}
}

func TestMerge_UpdatesLastAccessedAndLastTopic(t *testing.T) {
	p := New("ada")
	at := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	p.Merge(SessionDelta{TopicKey: "chemistry", Subject: "chemistry", At: at})

	if p.LastTopicKey != "chemistry" {
		t.Errorf("last topic = %q", p.LastTopicKey)
	}
	if !p.Topics["chemistry"].LastAccessed.Equal(at) {
		t.Errorf("last accessed = %v, want %v", p.Topics["chemistry"].LastAccessed, at)
	}
}

func TestTopicRecord_Mastered(t *testing.T) {
	empty := TopicRecord{}
	if empty.Mastered() {
		t.Error("empty record must not count as mastered")
	}
	partial := TopicRecord{Subtopics: map[string]topic.Status{
		"a": topic.StatusCompleted,
		"b": topic.StatusSkipped,
	}}
	if partial.Mastered() {
		t.Error("skipped subtopic must not count as mastered")
	}
	full := TopicRecord{Subtopics: map[string]topic.Status{
		"a": topic.StatusCompleted,
		"b": topic.StatusCompleted,
	}}
	if !full.Mastered() {
		t.Error("all-completed record should be mastered")
	}
}
