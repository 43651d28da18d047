// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSessionID, v))
}

// TopicKey applies equality check predicate on the "topic_key" field. It's identical to TopicKeyEQ.
func TopicKey(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTopicKey, v))
}

// SubtopicKey applies equality check predicate on the "subtopic_key" field. It's identical to SubtopicKeyEQ.
func SubtopicKey(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSubtopicKey, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldQuestion, v))
}

// LearnerAnswer applies equality check predicate on the "learner_answer" field. It's identical to LearnerAnswerEQ.
func LearnerAnswer(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldLearnerAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldCorrect, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSkipped, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicKeyEQ applies the EQ predicate on the "topic_key" field.
func TopicKeyEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTopicKey, v))
}

// TopicKeyNEQ applies the NEQ predicate on the "topic_key" field.
func TopicKeyNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTopicKey, v))
}

// TopicKeyIn applies the In predicate on the "topic_key" field.
func TopicKeyIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTopicKey, vs...))
}

// TopicKeyNotIn applies the NotIn predicate on the "topic_key" field.
func TopicKeyNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTopicKey, vs...))
}

// TopicKeyGT applies the GT predicate on the "topic_key" field.
func TopicKeyGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTopicKey, v))
}

// TopicKeyGTE applies the GTE predicate on the "topic_key" field.
func TopicKeyGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTopicKey, v))
}

// TopicKeyLT applies the LT predicate on the "topic_key" field.
func TopicKeyLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTopicKey, v))
}

// TopicKeyLTE applies the LTE predicate on the "topic_key" field.
func TopicKeyLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTopicKey, v))
}

// TopicKeyContains applies the Contains predicate on the "topic_key" field.
func TopicKeyContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldTopicKey, v))
}

// TopicKeyHasPrefix applies the HasPrefix predicate on the "topic_key" field.
func TopicKeyHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldTopicKey, v))
}

// TopicKeyHasSuffix applies the HasSuffix predicate on the "topic_key" field.
func TopicKeyHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldTopicKey, v))
}

// TopicKeyEqualFold applies the EqualFold predicate on the "topic_key" field.
func TopicKeyEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldTopicKey, v))
}

// TopicKeyContainsFold applies the ContainsFold predicate on the "topic_key" field.
func TopicKeyContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldTopicKey, v))
}

// SubtopicKeyEQ applies the EQ predicate on the "subtopic_key" field.
func SubtopicKeyEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSubtopicKey, v))
}

// SubtopicKeyNEQ applies the NEQ predicate on the "subtopic_key" field.
func SubtopicKeyNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSubtopicKey, v))
}

// SubtopicKeyIn applies the In predicate on the "subtopic_key" field.
func SubtopicKeyIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSubtopicKey, vs...))
}

// SubtopicKeyNotIn applies the NotIn predicate on the "subtopic_key" field.
func SubtopicKeyNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSubtopicKey, vs...))
}

// SubtopicKeyGT applies the GT predicate on the "subtopic_key" field.
func SubtopicKeyGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSubtopicKey, v))
}

// SubtopicKeyGTE applies the GTE predicate on the "subtopic_key" field.
func SubtopicKeyGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSubtopicKey, v))
}

// SubtopicKeyLT applies the LT predicate on the "subtopic_key" field.
func SubtopicKeyLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSubtopicKey, v))
}

// SubtopicKeyLTE applies the LTE predicate on the "subtopic_key" field.
func SubtopicKeyLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSubtopicKey, v))
}

// SubtopicKeyContains applies the Contains predicate on the "subtopic_key" field.
func SubtopicKeyContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldSubtopicKey, v))
}

// SubtopicKeyHasPrefix applies the HasPrefix predicate on the "subtopic_key" field.
func SubtopicKeyHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldSubtopicKey, v))
}

// SubtopicKeyHasSuffix applies the HasSuffix predicate on the "subtopic_key" field.
func SubtopicKeyHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldSubtopicKey, v))
}

// SubtopicKeyEqualFold applies the EqualFold predicate on the "subtopic_key" field.
func SubtopicKeyEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldSubtopicKey, v))
}

// SubtopicKeyContainsFold applies the ContainsFold predicate on the "subtopic_key" field.
func SubtopicKeyContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldSubtopicKey, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// LearnerAnswerEQ applies the EQ predicate on the "learner_answer" field.
func LearnerAnswerEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldLearnerAnswer, v))
}

// LearnerAnswerNEQ applies the NEQ predicate on the "learner_answer" field.
func LearnerAnswerNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldLearnerAnswer, v))
}

// LearnerAnswerIn applies the In predicate on the "learner_answer" field.
func LearnerAnswerIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldLearnerAnswer, vs...))
}

// LearnerAnswerNotIn applies the NotIn predicate on the "learner_answer" field.
func LearnerAnswerNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldLearnerAnswer, vs...))
}

// LearnerAnswerGT applies the GT predicate on the "learner_answer" field.
func LearnerAnswerGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldLearnerAnswer, v))
}

// LearnerAnswerGTE applies the GTE predicate on the "learner_answer" field.
func LearnerAnswerGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldLearnerAnswer, v))
}

// LearnerAnswerLT applies the LT predicate on the "learner_answer" field.
func LearnerAnswerLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldLearnerAnswer, v))
}

// LearnerAnswerLTE applies the LTE predicate on the "learner_answer" field.
func LearnerAnswerLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldLearnerAnswer, v))
}

// LearnerAnswerContains applies the Contains predicate on the "learner_answer" field.
func LearnerAnswerContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldLearnerAnswer, v))
}

// LearnerAnswerHasPrefix applies the HasPrefix predicate on the "learner_answer" field.
func LearnerAnswerHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldLearnerAnswer, v))
}

// LearnerAnswerHasSuffix applies the HasSuffix predicate on the "learner_answer" field.
func LearnerAnswerHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldLearnerAnswer, v))
}

// LearnerAnswerEqualFold applies the EqualFold predicate on the "learner_answer" field.
func LearnerAnswerEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldLearnerAnswer, v))
}

// LearnerAnswerContainsFold applies the ContainsFold predicate on the "learner_answer" field.
func LearnerAnswerContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldLearnerAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldCorrect, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSkipped, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.NotPredicates(p))
}
