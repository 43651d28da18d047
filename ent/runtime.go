// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mentor/ent/assessmentevent"
	"github.com/abhisek/mentor/ent/llmrequestevent"
	"github.com/abhisek/mentor/ent/practiceevent"
	"github.com/abhisek/mentor/ent/schema"
	"github.com/abhisek/mentor/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescTopicKey is the schema descriptor for topic_key field.
	assessmenteventDescTopicKey := assessmenteventFields[1].Descriptor()
	// assessmentevent.TopicKeyValidator is a validator for the "topic_key" field. It is called by the builders before save.
	assessmentevent.TopicKeyValidator = assessmenteventDescTopicKey.Validators[0].(func(string) error)
	// assessmenteventDescSkipped is the schema descriptor for skipped field.
	assessmenteventDescSkipped := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultSkipped holds the default value on creation for the skipped field.
	assessmentevent.DefaultSkipped = assessmenteventDescSkipped.Default.(int)
	// assessmenteventDescLevel is the schema descriptor for level field.
	assessmenteventDescLevel := assessmenteventFields[4].Descriptor()
	// assessmentevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	assessmentevent.LevelValidator = assessmenteventDescLevel.Validators[0].(func(string) error)
	// assessmenteventDescRetake is the schema descriptor for retake field.
	assessmenteventDescRetake := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultRetake holds the default value on creation for the retake field.
	assessmentevent.DefaultRetake = assessmenteventDescRetake.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	practiceeventMixin := schema.PracticeEvent{}.Mixin()
	practiceeventMixinFields0 := practiceeventMixin[0].Fields()
	_ = practiceeventMixinFields0
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventMixinFields0[1].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	// practiceeventDescSessionID is the schema descriptor for session_id field.
	practiceeventDescSessionID := practiceeventFields[0].Descriptor()
	// practiceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practiceevent.SessionIDValidator = practiceeventDescSessionID.Validators[0].(func(string) error)
	// practiceeventDescTopicKey is the schema descriptor for topic_key field.
	practiceeventDescTopicKey := practiceeventFields[1].Descriptor()
	// practiceevent.TopicKeyValidator is a validator for the "topic_key" field. It is called by the builders before save.
	practiceevent.TopicKeyValidator = practiceeventDescTopicKey.Validators[0].(func(string) error)
	// practiceeventDescSubtopicKey is the schema descriptor for subtopic_key field.
	practiceeventDescSubtopicKey := practiceeventFields[2].Descriptor()
	// practiceevent.SubtopicKeyValidator is a validator for the "subtopic_key" field. It is called by the builders before save.
	practiceevent.SubtopicKeyValidator = practiceeventDescSubtopicKey.Validators[0].(func(string) error)
	// practiceeventDescLearnerAnswer is the schema descriptor for learner_answer field.
	practiceeventDescLearnerAnswer := practiceeventFields[4].Descriptor()
	// practiceevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	practiceevent.DefaultLearnerAnswer = practiceeventDescLearnerAnswer.Default.(string)
	// practiceeventDescCorrect is the schema descriptor for correct field.
	practiceeventDescCorrect := practiceeventFields[5].Descriptor()
	// practiceevent.DefaultCorrect holds the default value on creation for the correct field.
	practiceevent.DefaultCorrect = practiceeventDescCorrect.Default.(bool)
	// practiceeventDescSkipped is the schema descriptor for skipped field.
	practiceeventDescSkipped := practiceeventFields[6].Descriptor()
	// practiceevent.DefaultSkipped holds the default value on creation for the skipped field.
	practiceevent.DefaultSkipped = practiceeventDescSkipped.Default.(bool)
	// practiceeventDescHintsUsed is the schema descriptor for hints_used field.
	practiceeventDescHintsUsed := practiceeventFields[7].Descriptor()
	// practiceevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	practiceevent.DefaultHintsUsed = practiceeventDescHintsUsed.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTopicKey is the schema descriptor for topic_key field.
	sessioneventDescTopicKey := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTopicKey holds the default value on creation for the topic_key field.
	sessionevent.DefaultTopicKey = sessioneventDescTopicKey.Default.(string)
	// sessioneventDescLevel is the schema descriptor for level field.
	sessioneventDescLevel := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultLevel holds the default value on creation for the level field.
	sessionevent.DefaultLevel = sessioneventDescLevel.Default.(string)
	// sessioneventDescSubtopicsCompleted is the schema descriptor for subtopics_completed field.
	sessioneventDescSubtopicsCompleted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultSubtopicsCompleted holds the default value on creation for the subtopics_completed field.
	sessionevent.DefaultSubtopicsCompleted = sessioneventDescSubtopicsCompleted.Default.(int)
	// sessioneventDescPracticeAttempted is the schema descriptor for practice_attempted field.
	sessioneventDescPracticeAttempted := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultPracticeAttempted holds the default value on creation for the practice_attempted field.
	sessionevent.DefaultPracticeAttempted = sessioneventDescPracticeAttempted.Default.(int)
	// sessioneventDescPracticeCorrect is the schema descriptor for practice_correct field.
	sessioneventDescPracticeCorrect := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultPracticeCorrect holds the default value on creation for the practice_correct field.
	sessionevent.DefaultPracticeCorrect = sessioneventDescPracticeCorrect.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
