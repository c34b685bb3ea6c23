// Package analyzer scores prompt text with a fixed set of heuristics. The
// rules approximate the four qualities a good model instruction should have
// (contextual richness, conciseness, clarity, consistency) without calling
// out to a model. Analysis is pure and deterministic: the same text always
// yields the same score and the same suggestion order.
package analyzer

import (
	"strings"

	"feedbackengine/internal/domain"
)

// Tuning values. The exact magnitudes are not a contract; they are chosen so
// that a one-word prompt lands at or below the baseline and a focused
// one-sentence prompt with context lands well above 70.
const (
	baseScore = 50

	shortWordCount   = 5
	targetBandLower  = 15
	targetBandUpper  = 60
	longWordCount    = 120
	maxWordsPerSent  = 30
	shortPenalty     = 15
	longPenalty      = 10
	targetBandBonus  = 20
	directiveBonus   = 15
	contextBonus     = 10
	vaguenessPenalty = 5
	clarityPenalty   = 10
)

const (
	suggestDetail    = "Consider adding more specific details to your prompt"
	suggestTrim      = "Trim the prompt; long prompts bury the actual request"
	suggestQuestion  = "State a clear question or start with a directive verb"
	suggestConcrete  = "Replace vague qualifiers with concrete requirements"
	suggestContext   = "Add context or examples so the intent is unambiguous"
	suggestSentences = "Break long sentences up to keep the request readable"
)

var directiveVerbs = map[string]bool{
	"explain":   true,
	"describe":  true,
	"write":     true,
	"list":      true,
	"compare":   true,
	"summarize": true,
	"analyze":   true,
	"create":    true,
	"generate":  true,
	"translate": true,
	"solve":     true,
	"help":      true,
}

var vagueQualifiers = map[string]bool{
	"maybe":    true,
	"perhaps":  true,
	"somehow":  true,
	"possibly": true,
	"stuff":    true,
	"things":   true,
	"whatever": true,
}

var contextMarkers = []string{"for", "as", "like", "example", "please"}

var (
	exampleMarkers     = []string{"example", "for instance", "such as", "like"}
	structureMarkers   = []string{"first", "second", "next", "finally", "1.", "2."}
	explanationMarkers = []string{"because", "therefore", "this means", "in other words"}
)

// Analyze maps prompt text to a quality report. It never fails; empty input
// is analyzed like any other text and simply scores poorly.
func Analyze(text string) domain.QualityReport {
	words := strings.Fields(text)
	sentences := countSentences(text)

	report := domain.QualityReport{
		Words:     len(words),
		Chars:     len(text),
		Sentences: sentences,
	}

	score := baseScore

	if len(words) < shortWordCount {
		score -= shortPenalty
		report.Suggestions = append(report.Suggestions, suggestDetail)
	} else if len(words) >= targetBandLower && len(words) <= targetBandUpper {
		score += targetBandBonus
	} else if len(words) > longWordCount {
		score -= longPenalty
		report.Suggestions = append(report.Suggestions, suggestTrim)
	}

	if hasDirective(text, words) {
		score += directiveBonus
	} else {
		report.Suggestions = append(report.Suggestions, suggestQuestion)
	}

	if n := countVague(words); n > 0 {
		score -= n * vaguenessPenalty
		report.Suggestions = append(report.Suggestions, suggestConcrete)
	}

	if hasContext(words) {
		score += contextBonus
	} else {
		report.Suggestions = append(report.Suggestions, suggestContext)
	}

	if sentences > 0 && len(words)/sentences > maxWordsPerSent {
		score -= clarityPenalty
		report.Suggestions = append(report.Suggestions, suggestSentences)
	}

	report.Score = clamp(score, 0, 100)
	return report
}

// InspectResponse derives quick metrics for a response text: size, an average
// sentence-length reading level and three substring content indicators. Pure
// and deterministic, like Analyze.
func InspectResponse(text string) domain.ResponseInsights {
	words := strings.Fields(text)
	insights := domain.ResponseInsights{
		Words:     len(words),
		Chars:     len(text),
		Sentences: countSentences(text),
	}

	if len(words) > 0 {
		perSentence := float64(len(words)) / float64(max(insights.Sentences, 1))
		switch {
		case perSentence < 10:
			insights.ReadingLevel = "Simple"
		case perSentence < 20:
			insights.ReadingLevel = "Moderate"
		default:
			insights.ReadingLevel = "Complex"
		}
	}

	lower := strings.ToLower(text)
	insights.HasExamples = containsAny(lower, exampleMarkers)
	insights.HasStructure = containsAny(lower, structureMarkers)
	insights.HasExplanation = containsAny(lower, explanationMarkers)

	return insights
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func countSentences(text string) int {
	count := 0
	for _, segment := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

func hasDirective(text string, words []string) bool {
	if strings.Contains(text, "?") {
		return true
	}
	if len(words) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(words[0], ",.:;"))
	return directiveVerbs[first]
}

func countVague(words []string) int {
	count := 0
	for _, word := range words {
		if vagueQualifiers[strings.ToLower(strings.Trim(word, ",.:;!?"))] {
			count++
		}
	}
	return count
}

func hasContext(words []string) bool {
	for _, word := range words {
		w := strings.ToLower(strings.Trim(word, ",.:;!?"))
		for _, marker := range contextMarkers {
			if w == marker {
				return true
			}
		}
	}
	return false
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
