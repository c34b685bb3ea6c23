package app

import (
	"fmt"
	"strings"

	"feedbackengine/internal/analyzer"
	"feedbackengine/internal/domain"
)

// genReport produces the downloadable plain-text summary for one evaluation,
// combining the stored scores with a fresh analyzer pass over the prompt.
func genReport(evaluation domain.Evaluation) string {
	promptReport := analyzer.Analyze(evaluation.Prompt)

	var b strings.Builder

	b.WriteString("FEEDBACK ENGINE - ANALYSIS REPORT\n")
	b.WriteString("=================================\n\n")

	fmt.Fprintf(&b, "Evaluated: %s\n\n", evaluation.CreatedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("PROMPT\n------\n")
	fmt.Fprintf(&b, "%s\n", evaluation.Prompt)
	fmt.Fprintf(&b, "Quality score: %d/100 (%d words, %d sentences)\n", promptReport.Score, promptReport.Words, promptReport.Sentences)
	for _, suggestion := range promptReport.Suggestions {
		fmt.Fprintf(&b, "- %s\n", suggestion)
	}

	b.WriteString("\nRESPONSE\n--------\n")
	fmt.Fprintf(&b, "%s\n", evaluation.Response)

	b.WriteString("\nSCORES\n------\n")
	fmt.Fprintf(&b, "Helpfulness:  %d/5\n", evaluation.Helpfulness)
	fmt.Fprintf(&b, "Truthfulness: %d/5\n", evaluation.Truthfulness)
	fmt.Fprintf(&b, "Harmlessness: %d/5\n", evaluation.Harmlessness)
	fmt.Fprintf(&b, "Average:      %.2f/5\n", evaluation.AverageScore())

	if evaluation.Comment != "" {
		b.WriteString("\nCOMMENTS\n--------\n")
		fmt.Fprintf(&b, "%s\n", evaluation.Comment)
	}

	b.WriteString("\nRECOMMENDATIONS\n---------------\n")
	if evaluation.Helpfulness < 3 {
		b.WriteString("- Improve response relevance and usefulness\n")
	}
	if evaluation.Truthfulness < 3 {
		b.WriteString("- Verify factual accuracy and provide reliable sources\n")
	}
	if evaluation.Harmlessness < 3 {
		b.WriteString("- Review content for potentially harmful or biased information\n")
	}

	average := evaluation.AverageScore()
	switch {
	case average >= 4:
		b.WriteString("- Excellent response quality; consider using it as a reference\n")
	case average >= 3:
		b.WriteString("- Good response with room for minor improvements\n")
	default:
		b.WriteString("- Response needs significant improvement in multiple areas\n")
	}

	return b.String()
}
