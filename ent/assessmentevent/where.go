// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSessionID, v))
}

// TopicKey applies equality check predicate on the "topic_key" field. It's identical to TopicKeyEQ.
func TopicKey(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTopicKey, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldCorrect, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSkipped, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldLevel, v))
}

// Retake applies equality check predicate on the "retake" field. It's identical to RetakeEQ.
func Retake(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldRetake, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicKeyEQ applies the EQ predicate on the "topic_key" field.
func TopicKeyEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTopicKey, v))
}

// TopicKeyNEQ applies the NEQ predicate on the "topic_key" field.
func TopicKeyNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTopicKey, v))
}

// TopicKeyIn applies the In predicate on the "topic_key" field.
func TopicKeyIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTopicKey, vs...))
}

// TopicKeyNotIn applies the NotIn predicate on the "topic_key" field.
func TopicKeyNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTopicKey, vs...))
}

// TopicKeyGT applies the GT predicate on the "topic_key" field.
func TopicKeyGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTopicKey, v))
}

// TopicKeyGTE applies the GTE predicate on the "topic_key" field.
func TopicKeyGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTopicKey, v))
}

// TopicKeyLT applies the LT predicate on the "topic_key" field.
func TopicKeyLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTopicKey, v))
}

// TopicKeyLTE applies the LTE predicate on the "topic_key" field.
func TopicKeyLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTopicKey, v))
}

// TopicKeyContains applies the Contains predicate on the "topic_key" field.
func TopicKeyContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldTopicKey, v))
}

// TopicKeyHasPrefix applies the HasPrefix predicate on the "topic_key" field.
func TopicKeyHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldTopicKey, v))
}

// TopicKeyHasSuffix applies the HasSuffix predicate on the "topic_key" field.
func TopicKeyHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldTopicKey, v))
}

// TopicKeyEqualFold applies the EqualFold predicate on the "topic_key" field.
func TopicKeyEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldTopicKey, v))
}

// TopicKeyContainsFold applies the ContainsFold predicate on the "topic_key" field.
func TopicKeyContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldTopicKey, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldCorrect, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSkipped, v))
}

// SkippedIn applies the In predicate on the "skipped" field.
func SkippedIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSkipped, vs...))
}

// SkippedNotIn applies the NotIn predicate on the "skipped" field.
func SkippedNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSkipped, vs...))
}

// SkippedGT applies the GT predicate on the "skipped" field.
func SkippedGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSkipped, v))
}

// SkippedGTE applies the GTE predicate on the "skipped" field.
func SkippedGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSkipped, v))
}

// SkippedLT applies the LT predicate on the "skipped" field.
func SkippedLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSkipped, v))
}

// SkippedLTE applies the LTE predicate on the "skipped" field.
func SkippedLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSkipped, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldLevel, v))
}

// RetakeEQ applies the EQ predicate on the "retake" field.
func RetakeEQ(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldRetake, v))
}

// RetakeNEQ applies the NEQ predicate on the "retake" field.
func RetakeNEQ(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldRetake, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.NotPredicates(p))
}
