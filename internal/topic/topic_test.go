package topic

import "testing"

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Python programming", "python-programming"},
		{"  The French  Revolution!  ", "the-french-revolution"},
		{"WW2", "ww2"},
		{"c++", "c"},
		{"!!!", "topic"},
		{"", "topic"},
		{"déjà vu", "déjà-vu"},
	}
	for _, tt := range tests {
		if got := CanonicalKey(tt.in); got != tt.want {
			t.Errorf("CanonicalKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusOrder(t *testing.T) {
	order := []Status{StatusNotStarted, StatusInProgress, StatusSkipped, StatusCompleted}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("expected %s to rank above %s", order[i], order[i-1])
		}
	}
}

func TestEligible(t *testing.T) {
	tp := &Topic{
		Subtopics: []Subtopic{
			{Key: "a", Status: StatusNotStarted},
			{Key: "b", Prereqs: []string{"a"}},
			{Key: "c", Prereqs: []string{"missing"}},
		},
	}

	if tp.Eligible(1) {
		t.Error("b should be blocked while a is not started")
	}

	tp.Subtopics[0].Status = StatusSkipped
	if !tp.Eligible(1) {
		t.Error("b should be eligible once a is skipped")
	}

	// Unresolvable prerequisite keys must not deadlock.
	if !tp.Eligible(2) {
		t.Error("c should be eligible despite unknown prereq key")
	}
}

func TestAllSettled(t *testing.T) {
	tp := &Topic{Subtopics: []Subtopic{
		{Key: "a", Status: StatusCompleted},
		{Key: "b", Status: StatusSkipped},
	}}
	if !tp.AllSettled() {
		t.Error("completed+skipped should count as settled")
	}

	tp.Subtopics[1].Status = StatusInProgress
	if tp.AllSettled() {
		t.Error("in_progress subtopic should not be settled")
	}

	empty := &Topic{}
	if empty.AllSettled() {
		t.Error("empty topic is never settled")
	}
}

func TestLevelAtLeast(t *testing.T) {
	if !LevelAdvanced.AtLeast(LevelIntermediate) {
		t.Error("advanced >= intermediate")
	}
	if LevelBeginner.AtLeast(LevelIntermediate) {
		t.Error("beginner < intermediate")
	}
	if !LevelBeginner.AtLeast(Level("")) {
		t.Error("known level should rank at least as high as unknown")
	}
}
