// Package dialogue drives the Socratic walk through a topic's subtopics:
// lesson presentation, guiding questions with probe-or-advance follow-ups,
// and the practice sub-loop with its ordered hint sequence.
package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/topic"
)

// NoMoreHints is the fixed reply once a problem's hint sequence is
// exhausted. Hints are never regenerated.
const NoMoreHints = "No more hints for this one. Give it your best try."

// transcriptWindow bounds how many recent exchanges travel with each
// follow-up request.
const transcriptWindow = 6

// StepKind tags what a Step carries for the orchestrator to present.
type StepKind string

const (
	StepLesson    StepKind = "lesson"    // new subtopic entered, lesson attached
	StepQuestion  StepKind = "question"  // next guiding question
	StepProbe     StepKind = "probe"     // deeper probing reply, same question pending
	StepBlocked   StepKind = "blocked"   // prerequisites unmet on the normal path
	StepProblem   StepKind = "problem"   // practice problem presented
	StepGraded    StepKind = "graded"    // practice answer judged
	StepTopicDone StepKind = "topic_done"
)

// Step is one unit of tutor output. Fields beyond Kind are set as the
// kind requires.
type Step struct {
	Kind     StepKind
	Subtopic *topic.Subtopic
	Lesson   *content.Lesson
	Question string
	Reply    string // follow-up reply, probe or confirmation
	Problem  *content.Problem
	Grading  *content.Grading

	// Completed names a subtopic finished by the step that produced
	// this one, Warning flags a forced entry past unmet prerequisites.
	Completed string
	Warning   string
}

// Engine sequences subtopics in declared order. It mutates the Topic's
// subtopic statuses in place; the orchestrator diffs them into the
// profile at session end.
type Engine struct {
	cache   *content.Cache
	subject string
	top     *topic.Topic
	level   topic.Level

	cur    int // index of the subtopic being taught, -1 before Start
	lesson *content.Lesson
	qIdx   int
	log    []string // recent exchanges for follow-up context

	// blocked is the subtopic refused entry on the normal path. While it
	// is set nothing is in progress; answers re-present the blocked
	// prompt until a skip or next forces entry.
	blocked *topic.Subtopic

	problem    *content.Problem
	hintIdx    int
	inPractice bool

	attempted int
	correct   int
}

// New creates an engine over a generated topic at the assessed level.
// Subtopic statuses carried over from the profile are respected: settled
// subtopics are not revisited.
func New(cache *content.Cache, top *topic.Topic, level topic.Level) *Engine {
	return &Engine{cache: cache, subject: top.Subject, top: top, level: level, cur: -1}
}

// Start enters the first unsettled subtopic.
func (e *Engine) Start(ctx context.Context) (*Step, error) {
	return e.advance(ctx, false, "")
}

// InPractice reports whether the practice sub-loop is active.
func (e *Engine) InPractice() bool { return e.inPractice }

// Done reports whether every subtopic is settled.
func (e *Engine) Done() bool { return e.top.AllSettled() }

// Current returns the subtopic being taught, or nil.
func (e *Engine) Current() *topic.Subtopic {
	if e.cur < 0 || e.cur >= len(e.top.Subtopics) {
		return nil
	}
	return &e.top.Subtopics[e.cur]
}

// CurrentProblem returns the pending practice question text, or "".
func (e *Engine) CurrentProblem() string {
	if !e.inPractice || e.problem == nil {
		return ""
	}
	return e.problem.Question
}

// PracticeDeltas returns the session's attempted and correct practice
// counts so far.
func (e *Engine) PracticeDeltas() (attempted, correct int) {
	return e.attempted, e.correct
}

// advance moves to the next unsettled subtopic. On the normal path an
// ineligible subtopic blocks; forced entry (explicit skip or next)
// proceeds with a warning instead.
func (e *Engine) advance(ctx context.Context, forced bool, completed string) (*Step, error) {
	next := -1
	for i := range e.top.Subtopics {
		if !e.top.Subtopics[i].Status.Settled() {
			next = i
			break
		}
	}
	if next == -1 {
		e.cur = -1
		e.blocked = nil
		return &Step{Kind: StepTopicDone, Completed: completed}, nil
	}

	st := &e.top.Subtopics[next]
	warning := ""
	if !e.top.Eligible(next) {
		if !forced {
			e.cur = -1
			e.lesson = nil
			e.blocked = st
			return &Step{Kind: StepBlocked, Subtopic: st, Completed: completed}, nil
		}
		warning = fmt.Sprintf("entering %q with unmet prerequisites (%s)", st.Title, strings.Join(st.Prereqs, ", "))
	}

	lesson, err := e.cache.GetOrGenerate(ctx, content.Request{
		Kind:     content.KindLesson,
		Subject:  e.subject,
		TopicKey: e.top.Key,
		Subtopic: st.Title,
		SubKey:   st.Key,
		Level:    e.level,
	})
	if err != nil {
		return nil, err
	}

	e.cur = next
	e.blocked = nil
	st.Status = topic.StatusInProgress
	e.lesson = lesson.Lesson
	e.qIdx = 0
	e.log = nil
	return &Step{
		Kind:      StepLesson,
		Subtopic:  st,
		Lesson:    e.lesson,
		Question:  e.lesson.GuidingQuestions[0],
		Completed: completed,
		Warning:   warning,
	}, nil
}

// Respond handles a learner answer to the current guiding question. A
// probe verdict keeps the question pending; an advance verdict moves to
// the next question or, past the last one, completes the subtopic and
// enters the next. At a blocked step there is no question to answer, so
// the blocked prompt is re-presented.
func (e *Engine) Respond(ctx context.Context, answer string) (*Step, error) {
	if e.blocked != nil {
		return &Step{Kind: StepBlocked, Subtopic: e.blocked}, nil
	}
	st := e.Current()
	if st == nil || e.lesson == nil {
		return nil, fmt.Errorf("no subtopic in progress")
	}
	if e.inPractice {
		return nil, fmt.Errorf("practice problem pending")
	}

	question := e.lesson.GuidingQuestions[e.qIdx]
	e.record("Tutor: " + question)
	e.record("Learner: " + answer)

	out, err := e.cache.GetOrGenerate(ctx, content.Request{
		Kind:       content.KindFollowup,
		Subject:    e.subject,
		TopicKey:   e.top.Key,
		Subtopic:   st.Title,
		SubKey:     st.Key,
		Level:      e.level,
		Question:   question,
		Answer:     answer,
		Transcript: strings.Join(e.log, "\n"),
	})
	if err != nil {
		return nil, err
	}

	f := out.Followup
	e.record("Tutor: " + f.Reply)
	if f.Verdict == content.VerdictProbe {
		return &Step{Kind: StepProbe, Subtopic: st, Question: question, Reply: f.Reply}, nil
	}

	e.qIdx++
	if e.qIdx < len(e.lesson.GuidingQuestions) {
		return &Step{Kind: StepQuestion, Subtopic: st, Question: e.lesson.GuidingQuestions[e.qIdx], Reply: f.Reply}, nil
	}

	st.Status = topic.StatusCompleted
	step, err := e.advance(ctx, false, st.Title)
	if err != nil {
		return nil, err
	}
	step.Reply = f.Reply
	return step, nil
}

// Skip marks the current subtopic skipped and forces entry into the
// next one, past any unmet prerequisites.
func (e *Engine) Skip(ctx context.Context) (*Step, error) {
	if e.inPractice {
		return e.SkipPractice()
	}
	skipped := ""
	if st := e.Current(); st != nil && st.Status == topic.StatusInProgress {
		st.Status = topic.StatusSkipped
		skipped = st.Title
	}
	return e.advance(ctx, true, skipped)
}

// EnterPractice fetches a practice problem for the current subtopic and
// suspends the guiding-question position until the sub-loop returns.
func (e *Engine) EnterPractice(ctx context.Context) (*Step, error) {
	st := e.Current()
	if st == nil {
		return nil, fmt.Errorf("no subtopic in progress")
	}

	out, err := e.cache.GetOrGenerate(ctx, content.Request{
		Kind:     content.KindPractice,
		Subject:  e.subject,
		TopicKey: e.top.Key,
		Subtopic: st.Title,
		SubKey:   st.Key,
		Level:    e.level,
	})
	if err != nil {
		return nil, err
	}

	e.problem = out.Problem
	e.hintIdx = 0
	e.inPractice = true
	return &Step{Kind: StepProblem, Subtopic: st, Problem: e.problem}, nil
}

// Hint reveals the next unused hint in order, or the fixed exhaustion
// reply once none remain.
func (e *Engine) Hint() (string, error) {
	if !e.inPractice {
		return "", fmt.Errorf("no practice problem pending")
	}
	if e.hintIdx >= len(e.problem.Hints) {
		return NoMoreHints, nil
	}
	h := e.problem.Hints[e.hintIdx]
	e.hintIdx++
	return h, nil
}

// SubmitPractice grades the learner's answer, updates the session's
// practice counters, and resumes the dialogue at the pending guiding
// question.
func (e *Engine) SubmitPractice(ctx context.Context, answer string) (*Step, error) {
	st := e.Current()
	if st == nil || !e.inPractice {
		return nil, fmt.Errorf("no practice problem pending")
	}

	out, err := e.cache.GetOrGenerate(ctx, content.Request{
		Kind:     content.KindGrading,
		Subject:  e.subject,
		TopicKey: e.top.Key,
		Question: e.problem.Question,
		Answer:   answer,
	})
	if err != nil {
		return nil, err
	}

	e.attempted++
	if out.Grading.Correct {
		e.correct++
	}
	e.inPractice = false
	e.problem = nil
	return &Step{
		Kind:     StepGraded,
		Subtopic: st,
		Grading:  out.Grading,
		Question: e.lesson.GuidingQuestions[e.qIdx],
	}, nil
}

// SkipPractice abandons the problem without grading and without counting
// toward attempted, resuming the pending guiding question.
func (e *Engine) SkipPractice() (*Step, error) {
	st := e.Current()
	if st == nil || !e.inPractice {
		return nil, fmt.Errorf("no practice problem pending")
	}
	e.inPractice = false
	e.problem = nil
	return &Step{Kind: StepQuestion, Subtopic: st, Question: e.lesson.GuidingQuestions[e.qIdx]}, nil
}

func (e *Engine) record(line string) {
	e.log = append(e.log, line)
	if len(e.log) > transcriptWindow {
		e.log = e.log[len(e.log)-transcriptWindow:]
	}
}
