package stats

import (
	"testing"

	"feedbackengine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(h int, t int, ha int) domain.Evaluation {
	return domain.Evaluation{Helpfulness: h, Truthfulness: t, Harmlessness: ha}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.Overall)
	require.Len(t, summary.Dimensions, 3)
	assert.Empty(t, summary.Recent)
}

func TestSummarizeMeans(t *testing.T) {
	summary := Summarize([]domain.Evaluation{
		eval(5, 3, 1),
		eval(3, 3, 3),
	})

	assert.Equal(t, 2, summary.Total)
	assert.InDelta(t, 4.0, summary.Dimensions[0].Mean, 1e-9)
	assert.InDelta(t, 3.0, summary.Dimensions[1].Mean, 1e-9)
	assert.InDelta(t, 2.0, summary.Dimensions[2].Mean, 1e-9)
	assert.InDelta(t, 3.0, summary.Overall, 1e-9)
}

func TestSummarizeDistribution(t *testing.T) {
	summary := Summarize([]domain.Evaluation{
		eval(5, 5, 5),
		eval(5, 4, 1),
		eval(2, 4, 1),
	})

	helpfulness := summary.Dimensions[0]
	assert.Equal(t, 2, helpfulness.Counts[4])
	assert.Equal(t, 1, helpfulness.Counts[1])

	harmlessness := summary.Dimensions[2]
	assert.Equal(t, 2, harmlessness.Counts[0])
	assert.Equal(t, 1, harmlessness.Counts[4])
}

func TestSummarizeRecentKeepsNewestTail(t *testing.T) {
	evaluations := []domain.Evaluation{
		{Id: "a"}, {Id: "b"}, {Id: "c"}, {Id: "d"},
	}

	summary := Summarize(evaluations)

	require.Len(t, summary.Recent, 3)
	assert.Equal(t, "b", summary.Recent[0].Id)
	assert.Equal(t, "d", summary.Recent[2].Id)
}
