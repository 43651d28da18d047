package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records one practice problem outcome.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("topic_key").
			NotEmpty().
			Comment("Canonical topic key"),
		field.String("subtopic_key").
			NotEmpty().
			Comment("Subtopic the problem was drawn from"),
		field.String("question").
			Comment("Problem text as presented"),
		field.String("learner_answer").
			Default("").
			Comment("Final answer, empty when skipped"),
		field.Bool("correct").
			Default(false).
			Comment("Grading verdict (false when skipped)"),
		field.Bool("skipped").
			Default(false).
			Comment("Problem abandoned without grading"),
		field.Int("hints_used").
			Default(0).
			Comment("Hints revealed before answering"),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_key"),
		index.Fields("correct"),
	}
}
