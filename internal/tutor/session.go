// Package tutor is the session orchestrator: the top-level state machine
// that routes learner input between topic choice, the diagnostic
// assessment, the Socratic dialogue, and the practice sub-loop, and
// folds the session's outcome into the durable profile on exit.
package tutor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mentor/internal/assessment"
	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/dialogue"
	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/store"
	"github.com/abhisek/mentor/internal/topic"
)

// State is the orchestrator's top-level position.
type State string

const (
	StateContinuing    State = "continue_choice"
	StateChoosingTopic State = "choosing_topic"
	StateAssessing     State = "assessing"
	StateMastered      State = "mastered_choice"
	StateDialogue      State = "dialogue"
	StatePractice      State = "practice"
	StateEnded         State = "session_end"
)

// Response is one unit of tutor output for the UI to present.
type Response struct {
	Text  string
	Ended bool
}

// Session drives one tutoring session for one learner. All methods are
// called from a single goroutine; every model call is a blocking
// round-trip and no other mutation interleaves with it.
type Session struct {
	id       string
	learner  string
	cache    *content.Cache
	profiles *profile.Manager
	events   store.EventRepo // nil disables the audit log
	now      func() time.Time

	prof  *profile.Profile
	state State

	subject string
	top     *topic.Topic
	level   topic.Level

	assessed bool
	retake   bool

	assess   *assessment.Engine
	dialogue *dialogue.Engine

	initialStatuses map[string]topic.Status
	misconceptions  []string
	hintsUsed       int
	startedAt       time.Time

	// Checkpoint watermarks: how much of the additive session state has
	// already been merged into the in-memory profile. Statuses and
	// levels merge idempotently; counters and misconceptions must fold
	// in exactly once even when a write fails and is retried.
	mergedMisconceptions int
	mergedAttempted      int
	mergedCorrect        int
	counted              bool // TotalSessions already incremented
}

// NewSession loads the learner's profile and prepares a session.
func NewSession(learnerID string, cache *content.Cache, profiles *profile.Manager, events store.EventRepo) (*Session, error) {
	prof, err := profiles.Load(learnerID)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:       uuid.NewString(),
		learner:  learnerID,
		cache:    cache,
		profiles: profiles,
		events:   events,
		now:      time.Now,
		prof:     prof,
		state:    StateChoosingTopic,
	}, nil
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// SetLearnerName records a display name for greetings. The name is
// persisted with the profile at the next checkpoint.
func (s *Session) SetLearnerName(name string) {
	if name != "" {
		s.prof.Name = name
	}
}

// CurrentState returns the orchestrator's current state.
func (s *Session) CurrentState() State { return s.state }

// Start opens the session. A returning learner with a stored last topic
// is offered the choice to continue it; everyone else picks a topic.
func (s *Session) Start(ctx context.Context) *Response {
	s.startedAt = s.now()
	s.appendSessionEvent(ctx, "start", 0)

	if rec, ok := s.prof.Topics[s.prof.LastTopicKey]; ok && s.prof.LastTopicKey != "" {
		s.state = StateContinuing
		return &Response{Text: fmt.Sprintf(
			"Welcome back%s. Last time you were working on %q (%s).\nType 'continue' to pick up there, or enter a new topic.",
			greetingName(s.prof), rec.Subject, levelOrUnknown(rec.Level))}
	}

	s.state = StateChoosingTopic
	return &Response{Text: "What would you like to learn today? Enter any topic."}
}

// handler processes one classified input in one state.
type handler func(s *Session, ctx context.Context, text string) *Response

// dispatch is the (state, command) table. help and quit are handled
// uniformly before it; a recognized command with no entry for the active
// state yields the "not applicable" reply without a state change.
var dispatch = map[State]map[Command]handler{
	StateContinuing: {
		CmdAnswer: (*Session).continueChoice,
	},
	StateChoosingTopic: {
		CmdAnswer: (*Session).chooseTopic,
	},
	StateAssessing: {
		CmdAnswer: (*Session).assessAnswer,
		CmdSkip:   (*Session).assessSkip,
	},
	StateMastered: {
		CmdAnswer: (*Session).masteredChoice,
	},
	StateDialogue: {
		CmdAnswer:   (*Session).dialogueAnswer,
		CmdPractice: (*Session).enterPractice,
		CmdSkip:     (*Session).dialogueSkip,
		CmdNext:     (*Session).dialogueSkip,
	},
	StatePractice: {
		CmdAnswer: (*Session).practiceAnswer,
		CmdHint:   (*Session).practiceHint,
		CmdSkip:   (*Session).practiceSkip,
	},
}

// Handle routes one line of learner input. Generation failures are
// reported in the response and leave the session at its pre-call state.
func (s *Session) Handle(ctx context.Context, input string) *Response {
	cmd, text := ParseCommand(input)

	switch cmd {
	case CmdHelp:
		return &Response{Text: helpText}
	case CmdQuit:
		return s.end(ctx)
	}

	if s.state == StateEnded {
		return &Response{Text: "The session has ended.", Ended: true}
	}

	h, ok := dispatch[s.state][cmd]
	if !ok {
		return &Response{Text: notApplicable(cmd)}
	}
	return h(s, ctx, text)
}

func (s *Session) continueChoice(ctx context.Context, text string) *Response {
	if strings.EqualFold(text, "continue") || strings.EqualFold(text, "yes") {
		return s.resumeLastTopic(ctx)
	}
	s.state = StateChoosingTopic
	return s.chooseTopic(ctx, text)
}

func (s *Session) chooseTopic(ctx context.Context, text string) *Response {
	if text == "" {
		return &Response{Text: "Enter a topic to get started."}
	}
	top, resp := s.generateTopic(ctx, text)
	if resp != nil {
		return resp
	}
	s.top = top

	if masteredNow(top) {
		s.state = StateMastered
		return &Response{Text: masteredPrompt(top.Subject)}
	}
	return s.beginAssessment(ctx, renderOverview(top))
}

// resumeLastTopic skips the diagnostic and re-enters the dialogue at the
// stored level. The topic itself is regenerated: content is
// session-scoped, only the profile state carries over.
func (s *Session) resumeLastTopic(ctx context.Context) *Response {
	rec := s.prof.Topics[s.prof.LastTopicKey]
	top, resp := s.generateTopic(ctx, rec.Subject)
	if resp != nil {
		return resp
	}
	s.top = top

	if masteredNow(top) {
		s.state = StateMastered
		return &Response{Text: masteredPrompt(top.Subject)}
	}
	if !rec.Level.Valid() {
		// No stored level to resume at, so run the diagnostic.
		return s.beginAssessment(ctx, renderOverview(top))
	}

	s.level = rec.Level
	return s.startDialogue(ctx, fmt.Sprintf("Continuing %q at the %s level.\n", top.Subject, rec.Level))
}

// generateTopic builds the session's Topic from a fresh overview, with
// subtopic statuses carried in from the profile.
func (s *Session) generateTopic(ctx context.Context, subject string) (*topic.Topic, *Response) {
	key := topic.CanonicalKey(subject)
	out, err := s.cache.GetOrGenerate(ctx, content.Request{
		Kind:     content.KindTopicOverview,
		Subject:  subject,
		TopicKey: key,
	})
	if err != nil {
		return nil, s.generationFailed(err)
	}

	top := &topic.Topic{
		Key:       key,
		Subject:   subject,
		Overview:  out.Overview.Description,
		CreatedAt: s.now(),
	}
	for _, st := range out.Overview.Subtopics {
		top.Subtopics = append(top.Subtopics, topic.Subtopic{
			Key:       st.Key,
			Title:     st.Title,
			Objective: st.Objective,
			Prereqs:   st.Prereqs,
		})
	}

	s.subject = subject
	s.initialStatuses = make(map[string]topic.Status)
	if rec, ok := s.prof.Topics[key]; ok {
		for i := range top.Subtopics {
			if st, ok := rec.Subtopics[top.Subtopics[i].Key]; ok {
				top.Subtopics[i].Status = st
				s.initialStatuses[top.Subtopics[i].Key] = st
			}
		}
	}
	return top, nil
}

func (s *Session) beginAssessment(ctx context.Context, intro string) *Response {
	s.assess = assessment.New(s.cache, s.top.Subject, s.top.Key)
	if err := s.assess.Begin(ctx); err != nil {
		s.assess = nil
		return s.generationFailed(err)
	}
	s.state = StateAssessing
	return &Response{Text: intro + "\nFirst, a quick check of where you stand. Five questions; 'skip' moves past one.\n\n" +
		renderAssessmentQuestion(s.assess)}
}

func (s *Session) assessAnswer(ctx context.Context, text string) *Response {
	g, err := s.assess.Submit(ctx, text)
	if err != nil {
		return s.generationFailed(err)
	}
	s.noteMisconception(g)
	return s.assessmentNext(ctx, g.Feedback)
}

func (s *Session) assessSkip(ctx context.Context, _ string) *Response {
	s.assess.Skip()
	return s.assessmentNext(ctx, "Skipped.")
}

func (s *Session) assessmentNext(ctx context.Context, feedback string) *Response {
	if !s.assess.Done() {
		return &Response{Text: feedback + "\n\n" + renderAssessmentQuestion(s.assess)}
	}

	res := s.assess.Score()
	s.level = res.Level
	s.assessed = true
	s.appendAssessmentEvent(ctx, res)
	s.checkpointWarn()

	intro := fmt.Sprintf("%s\n\nThat places you at the %s level. Let's begin.\n", feedback, res.Level)
	return s.startDialogue(ctx, intro)
}

func (s *Session) masteredChoice(ctx context.Context, text string) *Response {
	switch strings.ToLower(text) {
	case "retake", "reassess":
		s.retake = true
		for i := range s.top.Subtopics {
			s.top.Subtopics[i].Status = topic.StatusNotStarted
		}
		return s.beginAssessment(ctx, fmt.Sprintf("Fresh start on %q.\n", s.top.Subject))
	case "":
		return &Response{Text: masteredPrompt(s.top.Subject)}
	}
	s.state = StateChoosingTopic
	return s.chooseTopic(ctx, text)
}

func (s *Session) startDialogue(ctx context.Context, intro string) *Response {
	s.dialogue = dialogue.New(s.cache, s.top, s.level)
	step, err := s.dialogue.Start(ctx)
	if err != nil {
		s.dialogue = nil
		return s.generationFailed(err)
	}
	s.state = StateDialogue
	return s.presentStep(ctx, intro, step)
}

func (s *Session) dialogueAnswer(ctx context.Context, text string) *Response {
	step, err := s.dialogue.Respond(ctx, text)
	if err != nil {
		return s.generationFailed(err)
	}
	return s.presentStep(ctx, "", step)
}

func (s *Session) dialogueSkip(ctx context.Context, _ string) *Response {
	step, err := s.dialogue.Skip(ctx)
	if err != nil {
		return s.generationFailed(err)
	}
	return s.presentStep(ctx, "", step)
}

func (s *Session) enterPractice(ctx context.Context, _ string) *Response {
	step, err := s.dialogue.EnterPractice(ctx)
	if err != nil {
		return s.generationFailed(err)
	}
	s.state = StatePractice
	s.hintsUsed = 0
	return &Response{Text: renderProblem(step.Problem)}
}

func (s *Session) practiceHint(_ context.Context, _ string) *Response {
	h, err := s.dialogue.Hint()
	if err != nil {
		return &Response{Text: notApplicable(CmdHint)}
	}
	if h != dialogue.NoMoreHints {
		s.hintsUsed++
	}
	return &Response{Text: "Hint: " + h}
}

func (s *Session) practiceAnswer(ctx context.Context, text string) *Response {
	problem := s.currentProblemText()
	step, err := s.dialogue.SubmitPractice(ctx, text)
	if err != nil {
		return s.generationFailed(err)
	}
	s.noteMisconception(step.Grading)
	s.appendPracticeEvent(ctx, problem, text, step.Grading.Correct, false)
	s.hintsUsed = 0
	s.state = StateDialogue
	s.checkpointWarn()
	return &Response{Text: renderGrading(step.Grading) + "\n\nBack to it: " + step.Question}
}

func (s *Session) practiceSkip(ctx context.Context, _ string) *Response {
	problem := s.currentProblemText()
	step, err := s.dialogue.SkipPractice()
	if err != nil {
		return &Response{Text: notApplicable(CmdSkip)}
	}
	s.appendPracticeEvent(ctx, problem, "", false, true)
	s.hintsUsed = 0
	s.state = StateDialogue
	return &Response{Text: "No problem, we'll leave that one. Back to it: " + step.Question}
}

// presentStep renders a dialogue step, checkpoints on a finished
// subtopic, and ends the session when the topic is done.
func (s *Session) presentStep(ctx context.Context, intro string, step *dialogue.Step) *Response {
	if step.Kind == dialogue.StepTopicDone {
		done := s.end(ctx)
		done.Text = intro + renderStep(step) + "\n\n" + done.Text
		return done
	}
	if step.Completed != "" {
		s.checkpointWarn()
	}
	return &Response{Text: intro + renderStep(step)}
}

// checkpoint folds the unsaved part of the session into the profile and
// writes it out. The watermarks advance with the merge, not the write,
// so a failed write retried later merges nothing twice.
func (s *Session) checkpoint() error {
	delta := s.buildDelta()
	s.mergedMisconceptions = len(s.misconceptions)
	if s.dialogue != nil {
		s.mergedAttempted, s.mergedCorrect = s.dialogue.PracticeDeltas()
	}
	return s.profiles.MergeAndSave(s.prof, delta)
}

// checkpointWarn checkpoints mid-session, where a failed write is
// reported but must not disturb the dialogue.
func (s *Session) checkpointWarn() {
	if err := s.checkpoint(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: progress save failed: %v\n", err)
	}
}

// end checkpoints the session a final time and closes it. A completed
// diagnostic carries the new level; an aborted one is discarded and the
// stored level is untouched. On a save failure the session stays open so
// the learner can retry with quit; the retry only rewrites, it does not
// fold the session in again.
func (s *Session) end(ctx context.Context) *Response {
	if s.state == StateEnded {
		return &Response{Text: "The session has ended.", Ended: true}
	}
	if !s.counted {
		s.prof.TotalSessions++
		s.counted = true
	}
	if err := s.checkpoint(); err != nil {
		return &Response{Text: fmt.Sprintf(
			"Saving your progress failed: %v\nYour session is still here; type 'quit' to retry.", err)}
	}

	s.appendSessionEvent(ctx, "end", int(s.now().Sub(s.startedAt).Seconds()))
	s.state = StateEnded
	return &Response{Text: s.summary(), Ended: true}
}

// buildDelta assembles what the session learned since the last
// checkpoint. Skipped statuses come only from explicit commands, so they
// merge authoritatively; a retake marks every status explicit.
func (s *Session) buildDelta() profile.SessionDelta {
	delta := profile.SessionDelta{
		Misconceptions: s.misconceptions[s.mergedMisconceptions:],
		At:             s.now().UTC(),
	}
	if s.top == nil {
		return delta
	}

	delta.TopicKey = s.top.Key
	delta.Subject = s.top.Subject
	delta.Retake = s.retake
	if s.assessed {
		delta.Level = s.level
	}

	delta.Subtopics = make(map[string]profile.StatusDelta)
	for _, st := range s.top.Subtopics {
		delta.Subtopics[st.Key] = profile.StatusDelta{
			Status:   st.Status,
			Explicit: s.retake || st.Status == topic.StatusSkipped,
		}
	}

	if s.dialogue != nil {
		attempted, correct := s.dialogue.PracticeDeltas()
		delta.PracticeAttempted = attempted - s.mergedAttempted
		delta.PracticeCorrect = correct - s.mergedCorrect
	}
	return delta
}

func (s *Session) summary() string {
	var b strings.Builder
	b.WriteString("Session saved.")
	if s.top == nil {
		return b.String()
	}

	fmt.Fprintf(&b, " Here's how it went with %q:\n", s.top.Subject)
	if s.assessed {
		fmt.Fprintf(&b, "  level: %s\n", s.level)
	}
	fmt.Fprintf(&b, "  subtopics completed this session: %d\n", s.completedThisSession())
	if s.dialogue != nil {
		attempted, correct := s.dialogue.PracticeDeltas()
		if attempted > 0 {
			fmt.Fprintf(&b, "  practice: %d/%d correct\n", correct, attempted)
		}
	}
	b.WriteString("See you next time.")
	return b.String()
}

func (s *Session) completedThisSession() int {
	n := 0
	for _, st := range s.top.Subtopics {
		if st.Status == topic.StatusCompleted && s.initialStatuses[st.Key] != topic.StatusCompleted {
			n++
		}
	}
	return n
}

func (s *Session) noteMisconception(g *content.Grading) {
	if g != nil && g.Misconception != "" {
		s.misconceptions = append(s.misconceptions, g.Misconception)
	}
}

func (s *Session) currentProblemText() string {
	if s.dialogue == nil {
		return ""
	}
	return s.dialogue.CurrentProblem()
}

// generationFailed reports a model failure without changing state.
func (s *Session) generationFailed(err error) *Response {
	return &Response{Text: fmt.Sprintf(
		"I couldn't put that together (%v).\nNothing was lost; try again, or type 'help'.", err)}
}

func greetingName(p *profile.Profile) string {
	if p.Name != "" {
		return ", " + p.Name
	}
	return ""
}

func levelOrUnknown(l topic.Level) string {
	if l.Valid() {
		return string(l) + " level"
	}
	return "not yet assessed"
}

// masteredNow reports whether every subtopic of the freshly generated
// topic is already completed per the carried-in statuses. The stored
// record alone cannot answer this: it only lists the subtopics the
// learner has touched, and a regenerated overview may include more.
func masteredNow(top *topic.Topic) bool {
	if len(top.Subtopics) == 0 {
		return false
	}
	for _, st := range top.Subtopics {
		if st.Status != topic.StatusCompleted {
			return false
		}
	}
	return true
}

func masteredPrompt(subject string) string {
	return fmt.Sprintf(
		"You've already completed every subtopic of %q. Type 'retake' to reassess it, or enter a new topic.", subject)
}
