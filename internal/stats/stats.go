// Package stats aggregates stored evaluations for the dashboard.
package stats

import "feedbackengine/internal/domain"

const recentLimit = 3

// Dimension holds the mean and the 1-5 score distribution for one rating
// axis. Counts[0] is the number of 1-scores.
type Dimension struct {
	Name   string
	Mean   float64
	Counts [domain.ScoreMax]int
}

type Summary struct {
	Total      int
	Overall    float64
	Dimensions []Dimension
	Recent     []domain.Evaluation
}

// Summarize computes per-dimension means and distributions. It is pure; the
// caller re-reads the store per request instead of caching summaries.
func Summarize(evaluations []domain.Evaluation) Summary {
	summary := Summary{
		Total: len(evaluations),
		Dimensions: []Dimension{
			{Name: "Helpfulness"},
			{Name: "Truthfulness"},
			{Name: "Harmlessness"},
		},
	}

	if len(evaluations) == 0 {
		return summary
	}

	sums := [3]int{}
	for _, e := range evaluations {
		scores := [3]int{e.Helpfulness, e.Truthfulness, e.Harmlessness}
		for i, score := range scores {
			sums[i] += score
			if score >= domain.ScoreMin && score <= domain.ScoreMax {
				summary.Dimensions[i].Counts[score-1]++
			}
		}
	}

	total := float64(len(evaluations))
	for i := range summary.Dimensions {
		summary.Dimensions[i].Mean = float64(sums[i]) / total
	}
	summary.Overall = float64(sums[0]+sums[1]+sums[2]) / (3 * total)

	start := len(evaluations) - recentLimit
	if start < 0 {
		start = 0
	}
	summary.Recent = evaluations[start:]

	return summary
}
