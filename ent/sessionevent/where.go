// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// TopicKey applies equality check predicate on the "topic_key" field. It's identical to TopicKeyEQ.
func TopicKey(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTopicKey, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldLevel, v))
}

// SubtopicsCompleted applies equality check predicate on the "subtopics_completed" field. It's identical to SubtopicsCompletedEQ.
func SubtopicsCompleted(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSubtopicsCompleted, v))
}

// PracticeAttempted applies equality check predicate on the "practice_attempted" field. It's identical to PracticeAttemptedEQ.
func PracticeAttempted(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldPracticeAttempted, v))
}

// PracticeCorrect applies equality check predicate on the "practice_correct" field. It's identical to PracticeCorrectEQ.
func PracticeCorrect(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldPracticeCorrect, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldAction, v))
}

// TopicKeyEQ applies the EQ predicate on the "topic_key" field.
func TopicKeyEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTopicKey, v))
}

// TopicKeyNEQ applies the NEQ predicate on the "topic_key" field.
func TopicKeyNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTopicKey, v))
}

// TopicKeyIn applies the In predicate on the "topic_key" field.
func TopicKeyIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTopicKey, vs...))
}

// TopicKeyNotIn applies the NotIn predicate on the "topic_key" field.
func TopicKeyNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTopicKey, vs...))
}

// TopicKeyGT applies the GT predicate on the "topic_key" field.
func TopicKeyGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTopicKey, v))
}

// TopicKeyGTE applies the GTE predicate on the "topic_key" field.
func TopicKeyGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTopicKey, v))
}

// TopicKeyLT applies the LT predicate on the "topic_key" field.
func TopicKeyLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTopicKey, v))
}

// TopicKeyLTE applies the LTE predicate on the "topic_key" field.
func TopicKeyLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTopicKey, v))
}

// TopicKeyContains applies the Contains predicate on the "topic_key" field.
func TopicKeyContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldTopicKey, v))
}

// TopicKeyHasPrefix applies the HasPrefix predicate on the "topic_key" field.
func TopicKeyHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldTopicKey, v))
}

// TopicKeyHasSuffix applies the HasSuffix predicate on the "topic_key" field.
func TopicKeyHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldTopicKey, v))
}

// TopicKeyEqualFold applies the EqualFold predicate on the "topic_key" field.
func TopicKeyEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldTopicKey, v))
}

// TopicKeyContainsFold applies the ContainsFold predicate on the "topic_key" field.
func TopicKeyContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldTopicKey, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldLevel, v))
}

// SubtopicsCompletedEQ applies the EQ predicate on the "subtopics_completed" field.
func SubtopicsCompletedEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSubtopicsCompleted, v))
}

// SubtopicsCompletedNEQ applies the NEQ predicate on the "subtopics_completed" field.
func SubtopicsCompletedNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSubtopicsCompleted, v))
}

// SubtopicsCompletedIn applies the In predicate on the "subtopics_completed" field.
func SubtopicsCompletedIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSubtopicsCompleted, vs...))
}

// SubtopicsCompletedNotIn applies the NotIn predicate on the "subtopics_completed" field.
func SubtopicsCompletedNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSubtopicsCompleted, vs...))
}

// SubtopicsCompletedGT applies the GT predicate on the "subtopics_completed" field.
func SubtopicsCompletedGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSubtopicsCompleted, v))
}

// SubtopicsCompletedGTE applies the GTE predicate on the "subtopics_completed" field.
func SubtopicsCompletedGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSubtopicsCompleted, v))
}

// SubtopicsCompletedLT applies the LT predicate on the "subtopics_completed" field.
func SubtopicsCompletedLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSubtopicsCompleted, v))
}

// SubtopicsCompletedLTE applies the LTE predicate on the "subtopics_completed" field.
func SubtopicsCompletedLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSubtopicsCompleted, v))
}

// PracticeAttemptedEQ applies the EQ predicate on the "practice_attempted" field.
func PracticeAttemptedEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldPracticeAttempted, v))
}

// PracticeAttemptedNEQ applies the NEQ predicate on the "practice_attempted" field.
func PracticeAttemptedNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldPracticeAttempted, v))
}

// PracticeAttemptedIn applies the In predicate on the "practice_attempted" field.
func PracticeAttemptedIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldPracticeAttempted, vs...))
}

// PracticeAttemptedNotIn applies the NotIn predicate on the "practice_attempted" field.
func PracticeAttemptedNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldPracticeAttempted, vs...))
}

// PracticeAttemptedGT applies the GT predicate on the "practice_attempted" field.
func PracticeAttemptedGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldPracticeAttempted, v))
}

// PracticeAttemptedGTE applies the GTE predicate on the "practice_attempted" field.
func PracticeAttemptedGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldPracticeAttempted, v))
}

// PracticeAttemptedLT applies the LT predicate on the "practice_attempted" field.
func PracticeAttemptedLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldPracticeAttempted, v))
}

// PracticeAttemptedLTE applies the LTE predicate on the "practice_attempted" field.
func PracticeAttemptedLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldPracticeAttempted, v))
}

// PracticeCorrectEQ applies the EQ predicate on the "practice_correct" field.
func PracticeCorrectEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldPracticeCorrect, v))
}

// PracticeCorrectNEQ applies the NEQ predicate on the "practice_correct" field.
func PracticeCorrectNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldPracticeCorrect, v))
}

// PracticeCorrectIn applies the In predicate on the "practice_correct" field.
func PracticeCorrectIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldPracticeCorrect, vs...))
}

// PracticeCorrectNotIn applies the NotIn predicate on the "practice_correct" field.
func PracticeCorrectNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldPracticeCorrect, vs...))
}

// PracticeCorrectGT applies the GT predicate on the "practice_correct" field.
func PracticeCorrectGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldPracticeCorrect, v))
}

// PracticeCorrectGTE applies the GTE predicate on the "practice_correct" field.
func PracticeCorrectGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldPracticeCorrect, v))
}

// PracticeCorrectLT applies the LT predicate on the "practice_correct" field.
func PracticeCorrectLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldPracticeCorrect, v))
}

// PracticeCorrectLTE applies the LTE predicate on the "practice_correct" field.
func PracticeCorrectLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldPracticeCorrect, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.NotPredicates(p))
}
