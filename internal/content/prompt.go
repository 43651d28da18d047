package content

import (
	"fmt"
	"strings"
)

const tutorSystemPrompt = `You are a patient, encouraging tutor who can teach any subject using the Socratic method: you guide learners to discover answers themselves rather than lecturing. Keep language clear and appropriate for the learner's stated level.`

const graderSystemPrompt = `You are grading a learner's free-text answer. Be generous: if the answer shows real understanding in different wording, mark it correct. Mark partial when there is some understanding but the core idea is missing.`

func buildPrompt(req Request) string {
	switch req.Kind {
	case KindTopicOverview:
		return buildOverviewPrompt(req)
	case KindAssessment:
		return buildAssessmentPrompt(req)
	case KindGrading:
		return buildGradingPrompt(req)
	case KindLesson:
		return buildLessonPrompt(req)
	case KindFollowup:
		return buildFollowupPrompt(req)
	case KindPractice:
		return buildPracticePrompt(req)
	}
	return ""
}

func buildOverviewPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a learning overview for the subject: %q\n", req.Subject)
	if req.Level.Valid() {
		fmt.Fprintf(&b, "The learner is at a %s level.\n", req.Level)
	}
	b.WriteString(`
Instructions:
1. Describe what this subject covers in 2-3 sentences.
2. List 3-5 learning objectives.
3. Break the subject into 3-5 subtopics in logical learning order. Give each a short kebab-case key, a title, an objective, and the keys of any subtopics that must come first.
4. List 2-3 real-world applications.`)
	return b.String()
}

func buildAssessmentPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create 5 diagnostic assessment questions for the subject: %q\n", req.Subject)
	b.WriteString(`
These questions determine the learner's current level, so they must span difficulties:
- 2 beginner questions (basic recall and understanding)
- 2 intermediate questions (application)
- 1 advanced question (analysis or synthesis)

Each question must be answerable in a sentence or two of free text. Number the ids q1 through q5.`)
	return b.String()
}

func buildGradingPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Question: %s\n", req.Question)
	fmt.Fprintf(&b, "Learner's answer: %s\n", req.Answer)
	b.WriteString(`
Judge the answer. Give brief, encouraging feedback, and name any misconception you detect (empty string if none).`)
	return b.String()
}

func buildLessonPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create teaching content for:\nSubject: %s\nSubtopic: %s\nLearner level: %s\n", req.Subject, req.Subtopic, req.Level)
	b.WriteString(`
Instructions:
1. Explain the subtopic clearly for this level in 2-3 paragraphs.
2. List the key concepts, a few relatable analogies, concrete examples, and common mistakes.
3. Write 3-4 Socratic guiding questions in order, each building on the previous one. These drive the dialogue, so each must be answerable from the explanation plus everyday reasoning.`)
	return b.String()
}

func buildFollowupPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are guiding a %s-level learner through %q (subject: %s) with the Socratic method.\n", req.Level, req.Subtopic, req.Subject)
	if req.Transcript != "" {
		fmt.Fprintf(&b, "\nRecent conversation:\n%s\n", req.Transcript)
	}
	fmt.Fprintf(&b, "\nGuiding question: %s\n", req.Question)
	fmt.Fprintf(&b, "Learner replied: %q\n", req.Answer)
	b.WriteString(`
Decide:
- verdict "advance" when the reply shows adequate understanding of the guiding question. The reply field is then a short confirmation (1-2 sentences) that reinforces what they got right.
- verdict "probe" when understanding is shaky or off-track. The reply field is then ONE deeper or simpler question that nudges them toward the idea. Never give the answer away.`)
	return b.String()
}

func buildPracticePrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create one practice problem for:\nSubject: %s\nSubtopic: %s\nDifficulty: %s\n", req.Subject, req.Subtopic, req.Level)
	b.WriteString(`
Make the problem practical and engaging, solvable with a short free-text answer. Provide 2-3 hints ordered from gentle nudge to nearly giving it away, a model answer, and a full explanation of the solution.`)
	return b.String()
}
