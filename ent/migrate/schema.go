// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_key", Type: field.TypeString},
		{Name: "correct", Type: field.TypeInt},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeString},
		{Name: "retake", Type: field.TypeBool, Default: false},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[1]},
			},
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[3]},
			},
			{
				Name:    "assessmentevent_topic_key",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PracticeEventsColumns holds the columns for the "practice_events" table.
	PracticeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_key", Type: field.TypeString},
		{Name: "subtopic_key", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "skipped", Type: field.TypeBool, Default: false},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
	}
	// PracticeEventsTable holds the schema information for the "practice_events" table.
	PracticeEventsTable = &schema.Table{
		Name:       "practice_events",
		Columns:    PracticeEventsColumns,
		PrimaryKey: []*schema.Column{PracticeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[1]},
			},
			{
				Name:    "practiceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[2]},
			},
			{
				Name:    "practiceevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[3]},
			},
			{
				Name:    "practiceevent_topic_key",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[4]},
			},
			{
				Name:    "practiceevent_correct",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[8]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "topic_key", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeString, Default: ""},
		{Name: "subtopics_completed", Type: field.TypeInt, Default: 0},
		{Name: "practice_attempted", Type: field.TypeInt, Default: 0},
		{Name: "practice_correct", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		LlmRequestEventsTable,
		PracticeEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
