package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records tutoring session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("learner_id").
			NotEmpty().
			Comment("Canonical learner key"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("topic_key").
			Default("").
			Comment("Canonical topic key (set once a topic is chosen)"),
		field.String("level").
			Default("").
			Comment("Assessed proficiency level (on end only)"),
		field.Int("subtopics_completed").
			Default(0).
			Comment("Subtopics finished this session (on end only)"),
		field.Int("practice_attempted").
			Default(0).
			Comment("Practice problems attempted (on end only)"),
		field.Int("practice_correct").
			Default(0).
			Comment("Practice problems solved (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id"),
		index.Fields("action"),
	}
}
