package content

// TopicOverview is the generated curriculum for a subject.
type TopicOverview struct {
	Subject      string         `json:"subject"`
	Description  string         `json:"description"`
	Objectives   []string       `json:"learning_objectives"`
	Subtopics    []SubtopicSpec `json:"subtopics"`
	Applications []string       `json:"real_world_applications"`
}

// SubtopicSpec is one planned unit of the curriculum, in teaching order.
type SubtopicSpec struct {
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	Objective string   `json:"objective"`
	Prereqs   []string `json:"prerequisites"`
}

// AssessmentSet is the 5-question diagnostic for a topic.
type AssessmentSet struct {
	Questions []AssessmentQuestion `json:"questions"`
}

// AssessmentQuestion is one diagnostic question with its target difficulty.
type AssessmentQuestion struct {
	ID         string `json:"id"`
	Difficulty string `json:"difficulty"` // beginner | intermediate | advanced
	Text       string `json:"question"`
	Concept    string `json:"concept"`
}

// Grading is the model's judgment of a free-text answer. The
// engine treats it as opaque: correct/partial are never second-guessed.
type Grading struct {
	Correct       bool   `json:"correct"`
	Partial       bool   `json:"partial"`
	Feedback      string `json:"feedback"`
	Misconception string `json:"misconception"`
}

// Lesson is the teaching content for one subtopic at one level.
type Lesson struct {
	Explanation      string   `json:"explanation"`
	KeyConcepts      []string `json:"key_concepts"`
	Analogies        []string `json:"analogies"`
	Examples         []string `json:"examples"`
	CommonMistakes   []string `json:"common_mistakes"`
	GuidingQuestions []string `json:"guiding_questions"`
}

// Followup is the Socratic judgment of a dialogue response: either keep
// probing with a deeper question or confirm and advance.
type Followup struct {
	Verdict string `json:"verdict"` // probe | advance
	Reply   string `json:"reply"`
}

// Follow-up verdicts.
const (
	VerdictProbe   = "probe"
	VerdictAdvance = "advance"
)

// Problem is one practice problem with an ordered hint ladder.
type Problem struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Hints       []string `json:"hints"`
	Explanation string   `json:"explanation"`
	Concept     string   `json:"concept"`
}
