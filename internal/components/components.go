// Package components renders the whole UI as templ components. Components
// are composed in Go against the templ runtime so the server binary carries
// no external template files.
package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"feedbackengine/internal/domain"
	"feedbackengine/internal/stats"

	"github.com/a-h/templ"
)

func esc(s string) string {
	return templ.EscapeString(s)
}

func layout(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · Feedback Engine</title>
<style>
body{font-family:system-ui,sans-serif;max-width:860px;margin:2rem auto;padding:0 1rem;color:#1c1c1c}
nav a{margin-right:1rem}
.card{border:1px solid #e1e5e9;border-left:4px solid #4caf50;border-radius:8px;padding:1rem;margin:1rem 0}
.card.response{border-left-color:#2196f3}
.suggestion{color:#8a6d00}
fieldset{border:1px solid #e1e5e9;border-radius:8px;margin:.5rem 0}
table{border-collapse:collapse;width:100%%}
td,th{border-bottom:1px solid #e1e5e9;padding:.4rem;text-align:left}
.muted{color:#666;font-size:.9rem}
.columns{display:flex;gap:1rem}
.columns>div{flex:1}
</style>
</head>
<body>
<nav><a href="/">Analyze</a><a href="/compare">Compare</a><a href="/prompts">Review</a><a href="/evaluations">Dashboard</a></nav>
<h1>%s</h1>
`, esc(title), esc(title))

		if err != nil {
			return err
		}

		err = body(w)

		if err != nil {
			return err
		}

		_, err = io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// Index is the authoring view: template picker plus the analyze form.
func Index(templates []domain.Template) templ.Component {
	return layout("Prompt Workshop", func(w io.Writer) error {
		_, err := io.WriteString(w, `<p class="muted">Pick a template, replace the [BRACKETS], and analyze the prompt before rating responses against it.</p>
<form method="post" action="/analyze">
<label for="template">Template</label>
<select id="template" name="template" onchange="if(this.value)document.getElementById('prompt').value=this.value">
<option value="">Custom prompt</option>
`)

		if err != nil {
			return err
		}

		for _, t := range templates {
			_, err = fmt.Fprintf(w, "<option value=\"%s\">%s (%s)</option>\n",
				esc(t.Text), esc(t.Name), esc(t.Category))

			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</select>
<p><textarea id="prompt" name="prompt" rows="6" cols="80" placeholder="Explain quantum computing in simple terms that a 10-year-old could understand..."></textarea></p>
<button type="submit">Analyze prompt</button>
</form>
`)
		return err
	})
}

// Report shows the analyzer output for a prompt and offers the rating form
// for a response to that prompt.
func Report(prompt string, report domain.QualityReport) templ.Component {
	return layout("Prompt Analysis", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="card"><strong>Prompt</strong><p>%s</p>
<p class="muted">%d words · %d characters · %d sentences</p></div>
<h2>Quality score: %d/100</h2>
`, esc(prompt), report.Words, report.Chars, report.Sentences, report.Score)

		if err != nil {
			return err
		}

		if len(report.Suggestions) == 0 {
			_, err = io.WriteString(w, "<p>No suggestions. This prompt is in good shape.</p>\n")

			if err != nil {
				return err
			}
		} else {
			_, err = io.WriteString(w, "<ul>\n")

			if err != nil {
				return err
			}

			for _, suggestion := range report.Suggestions {
				_, err = fmt.Fprintf(w, "<li class=\"suggestion\">%s</li>\n", esc(suggestion))

				if err != nil {
					return err
				}
			}

			_, err = io.WriteString(w, "</ul>\n")

			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(w, `<h2>Rate a response</h2>
<form method="post" action="/evaluations">
<input type="hidden" name="prompt" value="%s">
<p><textarea name="response" rows="6" cols="80" placeholder="Paste the AI response to evaluate..."></textarea></p>
%s%s%s
<p><textarea name="comments" rows="3" cols="80" placeholder="Additional comments (optional)"></textarea></p>
<button type="submit">Save evaluation</button>
</form>
`, esc(prompt),
			ratingField("helpfulness", "Helpfulness", "How well does the response address the prompt?"),
			ratingField("truthfulness", "Truthfulness", "How accurate and factually correct is it?"),
			ratingField("harmlessness", "Harmlessness", "How safe and free from harmful content is it?"))
		return err
	})
}

func ratingField(name string, label string, caption string) string {
	options := ""
	labels := []string{"Poor", "Fair", "Good", "Very Good", "Excellent"}
	for score := domain.ScoreMin; score <= domain.ScoreMax; score++ {
		checked := ""
		if score == 3 {
			checked = " checked"
		}
		options += fmt.Sprintf(`<label><input type="radio" name="%s" value="%d"%s> %d - %s</label> `,
			esc(name), score, checked, score, labels[score-1])
	}
	return fmt.Sprintf(`<fieldset><legend>%s</legend><p class="muted">%s</p>%s</fieldset>`,
		esc(label), esc(caption), options)
}

// Compare is the side-by-side lab: two prompt drafts with optional responses,
// both run through the analyzer once submitted.
func Compare(c domain.Comparison) templ.Component {
	return layout("Comparison Lab", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="muted">Compare two prompt drafts and their responses side by side.</p>
<form method="post" action="/compare">
<div class="columns">
<div><h2>Prompt A</h2>
<p><textarea name="prompt_a" rows="5" cols="38" placeholder="First prompt...">%s</textarea></p>
<p><textarea name="response_a" rows="4" cols="38" placeholder="Response A (optional)">%s</textarea></p></div>
<div><h2>Prompt B</h2>
<p><textarea name="prompt_b" rows="5" cols="38" placeholder="Second prompt...">%s</textarea></p>
<p><textarea name="response_b" rows="4" cols="38" placeholder="Response B (optional)">%s</textarea></p></div>
</div>
<button type="submit">Compare prompts</button>
</form>
`, esc(c.PromptA), esc(c.ResponseA), esc(c.PromptB), esc(c.ResponseB))

		if err != nil || !c.Done {
			return err
		}

		_, err = io.WriteString(w, "<h2>Comparison results</h2>\n<div class=\"columns\">\n")

		if err != nil {
			return err
		}

		err = compareCard(w, "Prompt A", c.ReportA, c.ResponseA)

		if err != nil {
			return err
		}

		err = compareCard(w, "Prompt B", c.ReportB, c.ResponseB)

		if err != nil {
			return err
		}

		var verdict string
		switch {
		case c.ReportA.Score > c.ReportB.Score:
			verdict = fmt.Sprintf("Prompt A scores higher (%d vs %d).", c.ReportA.Score, c.ReportB.Score)
		case c.ReportB.Score > c.ReportA.Score:
			verdict = fmt.Sprintf("Prompt B scores higher (%d vs %d).", c.ReportB.Score, c.ReportA.Score)
		default:
			verdict = fmt.Sprintf("Both prompts score %d/100.", c.ReportA.Score)
		}

		_, err = fmt.Fprintf(w, "</div>\n<p><strong>%s</strong></p>\n", esc(verdict))
		return err
	})
}

func compareCard(w io.Writer, label string, report domain.QualityReport, response string) error {
	_, err := fmt.Fprintf(w, `<div class="card"><strong>%s</strong>
<p>Quality score: %d/100</p>
<p class="muted">%d words · %d characters · %d sentences · response %d words</p>
</div>
`, esc(label), report.Score, report.Words, report.Chars, report.Sentences, len(strings.Fields(response)))
	return err
}

// Review walks the stored prompt catalog one prompt at a time.
func Review(prompt domain.Prompt, evaluation *domain.Evaluation, insights domain.ResponseInsights, pos int, total int, filter string) templ.Component {
	return layout("Review Prompts", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="muted">Prompt %d of %d · <a href="/prompts?filter=all">all</a> <a href="/prompts?filter=unrated">unrated</a> <a href="/prompts?filter=rated">rated</a></p>
<p><a href="/prompts?i=%d&filter=%s">&larr; Previous</a> <a href="/prompts?i=%d&filter=%s">Next &rarr;</a></p>
<div class="card"><strong>Prompt</strong><p>%s</p><p class="muted">%s</p></div>
`, pos+1, total, pos-1, esc(filter), pos+1, esc(filter), esc(prompt.Prompt), esc(prompt.Category))

		if err != nil {
			return err
		}

		if prompt.Response == "" {
			_, err = fmt.Fprintf(w, `<p>No response stored for this prompt yet.</p>
<form method="post" action="/prompts/%s/response">
<p><textarea name="response" rows="5" cols="80" placeholder="Paste a response to store..."></textarea></p>
<button type="submit">Save response</button>
</form>
`, esc(prompt.Id))
			return err
		}

		quickLook := fmt.Sprintf("%d words · %d sentences · content quality %d/3",
			insights.Words, insights.Sentences, insights.ContentQuality())
		if insights.ReadingLevel != "" {
			quickLook += " · " + insights.ReadingLevel + " reading level"
		}
		if insights.HasExamples {
			quickLook += " · includes examples"
		}
		if insights.HasStructure {
			quickLook += " · well structured"
		}
		if insights.HasExplanation {
			quickLook += " · explains reasoning"
		}

		_, err = fmt.Fprintf(w, "<div class=\"card response\"><strong>Response</strong><p>%s</p><p class=\"muted\">%s</p></div>\n",
			esc(prompt.Response), esc(quickLook))

		if err != nil {
			return err
		}

		if evaluation != nil {
			_, err = fmt.Fprintf(w, `<p>Already evaluated: helpfulness %d/5, truthfulness %d/5, harmlessness %d/5 (average %.2f).</p>
`, evaluation.Helpfulness, evaluation.Truthfulness, evaluation.Harmlessness, evaluation.AverageScore())

			if err != nil {
				return err
			}

			if evaluation.Comment != "" {
				_, err = fmt.Fprintf(w, "<p class=\"muted\">Comments: %s</p>\n", esc(evaluation.Comment))

				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(w, `<h2>Update rating</h2>
<form method="post" action="/evaluations/%s">
%s%s%s
<p><textarea name="comments" rows="3" cols="80">%s</textarea></p>
<button type="submit">Update evaluation</button>
</form>
`, esc(evaluation.Id),
				ratingField("helpfulness", "Helpfulness", "How well does the response address the prompt?"),
				ratingField("truthfulness", "Truthfulness", "How accurate and factually correct is it?"),
				ratingField("harmlessness", "Harmlessness", "How safe and free from harmful content is it?"),
				esc(evaluation.Comment))
			return err
		}

		_, err = fmt.Fprintf(w, `<h2>Rate this response</h2>
<form method="post" action="/evaluations">
<input type="hidden" name="prompt_id" value="%s">
<input type="hidden" name="prompt" value="%s">
<input type="hidden" name="response" value="%s">
%s%s%s
<p><textarea name="comments" rows="3" cols="80" placeholder="Additional comments (optional)"></textarea></p>
<button type="submit">Save evaluation</button>
</form>
`, esc(prompt.Id), esc(prompt.Prompt), esc(prompt.Response),
			ratingField("helpfulness", "Helpfulness", "How well does the response address the prompt?"),
			ratingField("truthfulness", "Truthfulness", "How accurate and factually correct is it?"),
			ratingField("harmlessness", "Harmlessness", "How safe and free from harmful content is it?"))
		return err
	})
}

// EmptyReview covers filters that match no prompts.
func EmptyReview(filter string) templ.Component {
	return layout("Review Prompts", func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p>No prompts match the %s filter.</p>
<p><a href="/prompts?filter=all">Show all prompts</a></p>
`, esc(filter))
		return err
	})
}

// Dashboard charts the stored evaluations: per-dimension means and 1-5
// distributions as server-rendered SVG bars, plus the recent tail.
func Dashboard(summary stats.Summary) templ.Component {
	return layout("Analytics Dashboard", func(w io.Writer) error {
		if summary.Total == 0 {
			_, err := io.WriteString(w, "<p>No evaluations yet - start rating to see analytics.</p>\n")
			return err
		}

		_, err := fmt.Fprintf(w, "<p>%d evaluations · overall average %.2f/5</p>\n<h2>Average scores</h2>\n", summary.Total, summary.Overall)

		if err != nil {
			return err
		}

		err = meanChart(w, summary.Dimensions)

		if err != nil {
			return err
		}

		_, err = io.WriteString(w, "<h2>Score distribution</h2>\n")

		if err != nil {
			return err
		}

		err = distributionChart(w, summary.Dimensions)

		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `<h2>Recent evaluations</h2>
<table>
<tr><th>When</th><th>Helpfulness</th><th>Truthfulness</th><th>Harmlessness</th><th>Average</th><th></th></tr>
`)

		if err != nil {
			return err
		}

		for _, e := range summary.Recent {
			_, err = fmt.Fprintf(w, `<tr><td>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%.2f</td>
<td><a href="/evaluations/%s/report">report</a>
<form method="post" action="/evaluations/%s/delete" style="display:inline"><button type="submit">delete</button></form></td></tr>
`, esc(e.CreatedAt.Format("01/02 15:04")), e.Helpfulness, e.Truthfulness, e.Harmlessness,
				e.AverageScore(), esc(e.Id), esc(e.Id))

			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</table>\n")
		return err
	})
}

var chartColors = []string{"#4caf50", "#2196f3", "#ff9800"}

func meanChart(w io.Writer, dimensions []stats.Dimension) error {
	_, err := fmt.Fprintf(w, "<svg width=\"520\" height=\"%d\" role=\"img\" aria-label=\"average scores\">\n", len(dimensions)*34+6)

	if err != nil {
		return err
	}

	for i, d := range dimensions {
		width := int(d.Mean / float64(domain.ScoreMax) * 360)
		y := i*34 + 4
		_, err = fmt.Fprintf(w, `<text x="0" y="%d" font-size="13">%s</text>
<rect x="110" y="%d" width="%d" height="18" fill="%s"></rect>
<text x="%d" y="%d" font-size="13">%.2f</text>
`, y+14, esc(d.Name), y, width, chartColors[i%len(chartColors)], 116+width, y+14, d.Mean)

		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</svg>\n")
	return err
}

func distributionChart(w io.Writer, dimensions []stats.Dimension) error {
	maxCount := 1
	for _, d := range dimensions {
		for _, count := range d.Counts {
			if count > maxCount {
				maxCount = count
			}
		}
	}

	_, err := io.WriteString(w, "<svg width=\"520\" height=\"170\" role=\"img\" aria-label=\"score distribution\">\n")

	if err != nil {
		return err
	}

	for score := 0; score < domain.ScoreMax; score++ {
		groupX := score*100 + 20
		for i, d := range dimensions {
			height := d.Counts[score] * 120 / maxCount
			_, err = fmt.Fprintf(w, "<rect x=\"%d\" y=\"%d\" width=\"22\" height=\"%d\" fill=\"%s\"><title>%s score %d: %d</title></rect>\n",
				groupX+i*24, 140-height, height, chartColors[i%len(chartColors)], esc(d.Name), score+1, d.Counts[score])

			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(w, "<text x=\"%d\" y=\"158\" font-size=\"13\">%d</text>\n", groupX+30, score+1)

		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</svg>\n")
	return err
}

// Error renders the error pages the controllers map failures onto.
func Error(code int, title string, msg string) templ.Component {
	return layout(title, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "<p>%d - %s</p>\n<p><a href=\"/\">Back to the workshop</a></p>\n", code, esc(msg))
		return err
	})
}
