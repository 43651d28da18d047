package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/mentor/internal/assessment"
	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/dialogue"
	"github.com/abhisek/mentor/internal/topic"
)

// Plain-text rendering of tutor output. The TUI layer applies styling;
// these strings are the content.

func renderOverview(top *topic.Topic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's the shape of %q:\n%s\n\nWe'll work through:\n", top.Subject, top.Overview)
	for i, st := range top.Subtopics {
		fmt.Fprintf(&b, "  %d. %s", i+1, st.Title)
		if st.Objective != "" {
			fmt.Fprintf(&b, " - %s", st.Objective)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderAssessmentQuestion(eng *assessment.Engine) string {
	q := eng.Question()
	if q == nil {
		return ""
	}
	return fmt.Sprintf("Question %d of %d: %s", eng.Index()+1, eng.Total(), q.Text)
}

func renderStep(step *dialogue.Step) string {
	var b strings.Builder
	if step.Reply != "" {
		b.WriteString(step.Reply)
		b.WriteString("\n\n")
	}
	if step.Completed != "" {
		fmt.Fprintf(&b, "That wraps up %q.\n\n", step.Completed)
	}
	if step.Warning != "" {
		fmt.Fprintf(&b, "Heads up: %s.\n\n", step.Warning)
	}

	switch step.Kind {
	case dialogue.StepLesson:
		b.WriteString(renderLesson(step.Subtopic, step.Lesson))
		b.WriteString("\n" + step.Question)
	case dialogue.StepQuestion, dialogue.StepProbe:
		b.WriteString(step.Question)
	case dialogue.StepBlocked:
		fmt.Fprintf(&b, "%q builds on material you haven't settled yet (%s). Type 'next' to dive in anyway.",
			step.Subtopic.Title, strings.Join(step.Subtopic.Prereqs, ", "))
	case dialogue.StepTopicDone:
		b.WriteString("That's every subtopic settled. Well done.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderLesson(st *topic.Subtopic, l *content.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n%s\n", st.Title, l.Explanation)
	if len(l.Analogies) > 0 {
		fmt.Fprintf(&b, "\nThink of it this way: %s\n", l.Analogies[0])
	}
	if len(l.Examples) > 0 {
		fmt.Fprintf(&b, "\nFor example: %s\n", l.Examples[0])
	}
	return b.String()
}

func renderProblem(p *content.Problem) string {
	return fmt.Sprintf("Practice time.\n%s\n\n('hint' for a nudge, 'skip' to pass, or answer directly.)", p.Question)
}

func renderGrading(g *content.Grading) string {
	var verdict string
	switch {
	case g.Correct:
		verdict = "Correct. "
	case g.Partial:
		verdict = "Partly there. "
	default:
		verdict = "Not quite. "
	}
	out := verdict + g.Feedback
	if g.Misconception != "" {
		out += "\nWatch out for: " + g.Misconception
	}
	return out
}
