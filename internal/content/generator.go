package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mentor/internal/llm"
)

// Generator produces typed content for a request. The LLM-backed
// implementation is LLMGenerator; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Content, error)
}

// Config holds generation settings.
type Config struct {
	Temperature float64
	MaxTokens   map[Kind]int
}

// DefaultConfig returns per-kind token budgets sized to each kind's
// output shape.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.5,
		MaxTokens: map[Kind]int{
			KindTopicOverview: 1024,
			KindAssessment:    1024,
			KindGrading:       256,
			KindLesson:        1536,
			KindFollowup:      256,
			KindPractice:      1024,
		},
	}
}

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates an LLM-backed generator.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// Generate runs one generation round-trip: prompt, structured output,
// decode, shape check. Transport and shape failures both come back as
// *GenerationError; the single-retry policy lives in the Cache.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	system := tutorSystemPrompt
	if req.Kind == KindGrading {
		system = graderSystemPrompt
	}

	res, err := g.provider.Generate(ctx, llm.Request{
		Purpose:     string(req.Kind),
		System:      system,
		Prompt:      buildPrompt(req),
		Schema:      schemaFor(req.Kind),
		MaxTokens:   g.cfg.MaxTokens[req.Kind],
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Kind: req.Kind, Err: err}
	}

	out, err := decode(req.Kind, res.Content)
	if err != nil {
		return nil, &GenerationError{Kind: req.Kind, Err: err}
	}
	if err := checkShape(out); err != nil {
		return nil, &GenerationError{Kind: req.Kind, Err: err}
	}
	return out, nil
}

// decode unmarshals raw output into the kind's typed variant.
func decode(kind Kind, raw json.RawMessage) (*Content, error) {
	c := &Content{Kind: kind}
	var err error
	switch kind {
	case KindTopicOverview:
		c.Overview = &TopicOverview{}
		err = json.Unmarshal(raw, c.Overview)
	case KindAssessment:
		c.Assessment = &AssessmentSet{}
		err = json.Unmarshal(raw, c.Assessment)
	case KindGrading:
		c.Grading = &Grading{}
		err = json.Unmarshal(raw, c.Grading)
	case KindLesson:
		c.Lesson = &Lesson{}
		err = json.Unmarshal(raw, c.Lesson)
	case KindFollowup:
		c.Followup = &Followup{}
		err = json.Unmarshal(raw, c.Followup)
	case KindPractice:
		c.Problem = &Problem{}
		err = json.Unmarshal(raw, c.Problem)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return c, nil
}

// checkShape enforces the per-kind structural contract beyond what the
// JSON schema can express. Model output is never trusted blindly.
func checkShape(c *Content) error {
	switch c.Kind {
	case KindTopicOverview:
		o := c.Overview
		if len(o.Subtopics) == 0 {
			return fmt.Errorf("overview has no subtopics")
		}
		for i, st := range o.Subtopics {
			if st.Key == "" || st.Title == "" {
				return fmt.Errorf("subtopic %d missing key or title", i)
			}
		}

	case KindAssessment:
		qs := c.Assessment.Questions
		if len(qs) != 5 {
			return fmt.Errorf("expected exactly 5 diagnostic questions, got %d", len(qs))
		}
		seen := map[string]bool{}
		for i, q := range qs {
			if q.Text == "" {
				return fmt.Errorf("question %d is empty", i)
			}
			seen[q.Difficulty] = true
		}
		if !seen["beginner"] || !seen["intermediate"] || !seen["advanced"] {
			return fmt.Errorf("questions must span beginner through advanced difficulty")
		}

	case KindGrading:
		if c.Grading.Feedback == "" {
			return fmt.Errorf("grading has no feedback")
		}

	case KindLesson:
		l := c.Lesson
		if l.Explanation == "" {
			return fmt.Errorf("lesson has no explanation")
		}
		if len(l.Analogies) == 0 {
			return fmt.Errorf("lesson has no analogy")
		}
		if len(l.GuidingQuestions) == 0 {
			return fmt.Errorf("lesson has no guiding questions")
		}

	case KindFollowup:
		f := c.Followup
		if f.Verdict != VerdictProbe && f.Verdict != VerdictAdvance {
			return fmt.Errorf("unknown follow-up verdict %q", f.Verdict)
		}
		if f.Reply == "" {
			return fmt.Errorf("follow-up has no reply")
		}

	case KindPractice:
		p := c.Problem
		if p.Question == "" || p.Answer == "" {
			return fmt.Errorf("problem missing question or answer")
		}
		if len(p.Hints) < 1 {
			return fmt.Errorf("problem has no hints")
		}
	}
	return nil
}
