package components

import (
	"context"
	"strings"
	"testing"

	"feedbackengine/internal/domain"
	"feedbackengine/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexEscapesTemplateText(t *testing.T) {
	var b strings.Builder
	component := Index([]domain.Template{{Name: "X<script>", Category: "c", Text: "t"}})

	require.NoError(t, component.Render(context.Background(), &b))

	assert.NotContains(t, b.String(), "X<script>")
	assert.Contains(t, b.String(), "X&lt;script&gt;")
}

func TestReportListsSuggestionsInOrder(t *testing.T) {
	var b strings.Builder
	component := Report("p", domain.QualityReport{
		Score:       42,
		Suggestions: []string{"first hint", "second hint"},
	})

	require.NoError(t, component.Render(context.Background(), &b))

	html := b.String()
	assert.Contains(t, html, "Quality score: 42/100")
	assert.Less(t, strings.Index(html, "first hint"), strings.Index(html, "second hint"))
}

func TestReviewEscapesPromptContent(t *testing.T) {
	var b strings.Builder
	prompt := domain.Prompt{Id: "1", Prompt: `<img src=x onerror=alert(1)>`, Response: "ok"}

	require.NoError(t, Review(prompt, nil, domain.ResponseInsights{}, 0, 1, "all").Render(context.Background(), &b))

	assert.NotContains(t, b.String(), "<img src=x")
}

func TestReviewShowsResponseInsights(t *testing.T) {
	var b strings.Builder
	prompt := domain.Prompt{Id: "1", Prompt: "p", Response: "First, look at an example because it helps."}
	insights := domain.ResponseInsights{
		Words:          8,
		Sentences:      1,
		ReadingLevel:   "Simple",
		HasExamples:    true,
		HasStructure:   true,
		HasExplanation: true,
	}

	require.NoError(t, Review(prompt, nil, insights, 0, 1, "all").Render(context.Background(), &b))

	html := b.String()
	assert.Contains(t, html, "content quality 3/3")
	assert.Contains(t, html, "Simple reading level")
	assert.Contains(t, html, "includes examples")
}

func TestCompareRendersVerdict(t *testing.T) {
	var b strings.Builder
	comparison := domain.Comparison{
		PromptA: "a",
		PromptB: "b",
		ReportA: domain.QualityReport{Score: 80, Words: 12},
		ReportB: domain.QualityReport{Score: 60, Words: 3},
		Done:    true,
	}

	require.NoError(t, Compare(comparison).Render(context.Background(), &b))

	html := b.String()
	assert.Contains(t, html, "Comparison results")
	assert.Contains(t, html, "Prompt A scores higher (80 vs 60).")
}

func TestDashboardEmptyState(t *testing.T) {
	var b strings.Builder

	require.NoError(t, Dashboard(stats.Summary{}).Render(context.Background(), &b))

	assert.Contains(t, b.String(), "No evaluations yet")
}

func TestDashboardRendersCharts(t *testing.T) {
	var b strings.Builder
	summary := stats.Summarize([]domain.Evaluation{
		{Id: "e1", Helpfulness: 4, Truthfulness: 5, Harmlessness: 3},
	})

	require.NoError(t, Dashboard(summary).Render(context.Background(), &b))

	html := b.String()
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "Helpfulness")
	assert.Contains(t, html, "/evaluations/e1/delete")
}
