package domain

import "time"

const (
	ScoreMin = 1
	ScoreMax = 5
)

const (
	StatePending   = "pending"
	StateCompleted = "completed"
)

type Prompt struct {
	Id        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type Evaluation struct {
	Id           string    `json:"id"`
	PromptId     string    `json:"prompt_id"`
	Prompt       string    `json:"prompt"`
	Response     string    `json:"response"`
	Helpfulness  int       `json:"helpfulness_score"`
	Truthfulness int       `json:"truthfulness_score"`
	Harmlessness int       `json:"harmlessness_score"`
	Comment      string    `json:"comments"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"timestamp"`
}

// AverageScore is derived on read and never stored.
func (e Evaluation) AverageScore() float64 {
	return float64(e.Helpfulness+e.Truthfulness+e.Harmlessness) / 3
}

func ValidScore(score int) bool {
	return score >= ScoreMin && score <= ScoreMax
}

// EvaluationPatch carries the fields a re-rating may change. Nil fields are
// left untouched on merge.
type EvaluationPatch struct {
	Helpfulness  *int
	Truthfulness *int
	Harmlessness *int
	Comment      *string
	Response     *string
	State        *string
}

func (e *Evaluation) Apply(patch EvaluationPatch) {
	if patch.Helpfulness != nil {
		e.Helpfulness = *patch.Helpfulness
	}
	if patch.Truthfulness != nil {
		e.Truthfulness = *patch.Truthfulness
	}
	if patch.Harmlessness != nil {
		e.Harmlessness = *patch.Harmlessness
	}
	if patch.Comment != nil {
		e.Comment = *patch.Comment
	}
	if patch.Response != nil {
		e.Response = *patch.Response
	}
	if patch.State != nil {
		e.State = *patch.State
	}
}

// QualityReport is transient analyzer output; it is rendered, never persisted.
type QualityReport struct {
	Score       int
	Words       int
	Chars       int
	Sentences   int
	Suggestions []string
}

// Comparison holds two prompt drafts analyzed side by side. Done is false
// until both prompts were submitted.
type Comparison struct {
	PromptA   string
	PromptB   string
	ResponseA string
	ResponseB string
	ReportA   QualityReport
	ReportB   QualityReport
	Done      bool
}

// ResponseInsights are quick read-side metrics for a stored response text.
// Transient, like QualityReport.
type ResponseInsights struct {
	Words          int
	Chars          int
	Sentences      int
	ReadingLevel   string
	HasExamples    bool
	HasStructure   bool
	HasExplanation bool
}

// ContentQuality counts the content indicators present, out of three.
func (ri ResponseInsights) ContentQuality() int {
	quality := 0
	for _, present := range []bool{ri.HasExamples, ri.HasStructure, ri.HasExplanation} {
		if present {
			quality++
		}
	}
	return quality
}
