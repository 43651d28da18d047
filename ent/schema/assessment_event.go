package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one completed diagnostic. Aborted diagnostics
// are never written.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("topic_key").
			NotEmpty().
			Comment("Canonical topic key"),
		field.Int("correct").
			Comment("Correct answers out of five, skips counting as incorrect"),
		field.Int("skipped").
			Default(0).
			Comment("Questions skipped"),
		field.String("level").
			NotEmpty().
			Comment("Derived proficiency level"),
		field.Bool("retake").
			Default(false).
			Comment("Whether the learner explicitly retook the diagnostic"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_key"),
	}
}
