package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"feedbackengine/internal/analyzer"
	"feedbackengine/internal/domain"
	"feedbackengine/internal/persistence"
	"feedbackengine/internal/stats"
)

type evaluationReq struct {
	PromptId     string `json:"prompt_id"`
	Prompt       string `json:"prompt"`
	Response     string `json:"response"`
	Helpfulness  int    `json:"helpfulness_score"`
	Truthfulness int    `json:"truthfulness_score"`
	Harmlessness int    `json:"harmlessness_score"`
	Comment      string `json:"comments"`
}

type analyzeReq struct {
	Prompt string `json:"prompt"`
}

func (a App) errResp(err error, ctx errCtx) *AppResp {
	return &AppResp{
		Error:     err,
		Message:   ctx.Msg,
		Code:      ctx.Code,
		Component: a.ComponentBuilder.Error(ctx.Code, ctx.Title, ctx.Msg),
	}
}

// storeResp maps storage failures onto error pages: missing ids are the
// user's problem, everything else is ours.
func (a App) storeResp(err error) *AppResp {
	if errors.Is(err, persistence.ErrNotFound) {
		return a.errResp(err, get404())
	}
	return a.errResp(err, get500())
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func (a App) index(w http.ResponseWriter, r *http.Request) *AppResp {
	if r.URL.Path != "/" {
		return a.errResp(nil, get404())
	}
	if r.Method != http.MethodGet {
		return a.errResp(nil, get405())
	}

	return &AppResp{Component: a.ComponentBuilder.Index(domain.Templates()), Code: 200}
}

func (a App) analyze(w http.ResponseWriter, r *http.Request) *AppResp {
	if r.Method != http.MethodPost {
		return a.errResp(nil, get405())
	}

	var prompt string
	if isJSON(r) {
		content, err := read(r.Body)

		if err != nil {
			return a.errResp(err, get400("Could not read the request body."))
		}

		req, err := readJSON[analyzeReq](content)

		if err != nil {
			return a.errResp(err, get400("Could not parse the request body."))
		}

		prompt = req.Prompt
	} else {
		prompt = r.FormValue("prompt")
	}

	report := analyzer.Analyze(prompt)
	return &AppResp{Component: a.ComponentBuilder.Report(prompt, report), Code: 200}
}

func (a App) compare(w http.ResponseWriter, r *http.Request) *AppResp {
	switch r.Method {
	case http.MethodGet:
		return &AppResp{Component: a.ComponentBuilder.Compare(domain.Comparison{}), Code: 200}
	case http.MethodPost:
	default:
		return a.errResp(nil, get405())
	}

	promptA := strings.TrimSpace(r.FormValue("prompt_a"))
	promptB := strings.TrimSpace(r.FormValue("prompt_b"))

	if promptA == "" || promptB == "" {
		return a.errResp(nil, get400("Two prompts are required for a comparison."))
	}

	comparison := domain.Comparison{
		PromptA:   promptA,
		PromptB:   promptB,
		ResponseA: r.FormValue("response_a"),
		ResponseB: r.FormValue("response_b"),
		ReportA:   analyzer.Analyze(promptA),
		ReportB:   analyzer.Analyze(promptB),
		Done:      true,
	}

	return &AppResp{Component: a.ComponentBuilder.Compare(comparison), Code: 200}
}

func (a App) prompts(w http.ResponseWriter, r *http.Request) *AppResp {
	switch r.Method {
	case http.MethodGet:
		return a.reviewPrompts(r)
	case http.MethodPost:
		return a.createPrompt(w, r)
	default:
		return a.errResp(nil, get405())
	}
}

func (a App) reviewPrompts(r *http.Request) *AppResp {
	prompts, err := a.PromptRepo.LoadAll()

	if err != nil {
		return a.storeResp(err)
	}

	evaluations, err := a.EvaluationRepo.LoadAll()

	if err != nil {
		return a.storeResp(err)
	}

	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = "all"
	}

	filtered := filterPrompts(prompts, evaluations, filter)
	if len(filtered) == 0 {
		return &AppResp{Component: a.ComponentBuilder.EmptyReview(filter), Code: 200}
	}

	pos, _ := strconv.Atoi(r.URL.Query().Get("i"))
	if pos < 0 {
		pos = 0
	}
	if pos >= len(filtered) {
		pos = len(filtered) - 1
	}

	current := filtered[pos]
	evaluation := findEvaluation(evaluations, current)
	insights := analyzer.InspectResponse(current.Response)

	return &AppResp{
		Component: a.ComponentBuilder.Review(current, evaluation, insights, pos, len(filtered), filter),
		Code:      200,
	}
}

func filterPrompts(prompts []domain.Prompt, evaluations []domain.Evaluation, filter string) []domain.Prompt {
	if filter == "all" {
		return prompts
	}

	filtered := []domain.Prompt{}
	for _, prompt := range prompts {
		rated := findEvaluation(evaluations, prompt) != nil
		if (filter == "rated") == rated {
			filtered = append(filtered, prompt)
		}
	}
	return filtered
}

// findEvaluation matches on prompt id when the rating came from the review
// flow, falling back to prompt text for ratings authored in the workshop.
func findEvaluation(evaluations []domain.Evaluation, prompt domain.Prompt) *domain.Evaluation {
	for i := range evaluations {
		if evaluations[i].PromptId == prompt.Id {
			return &evaluations[i]
		}
	}
	for i := range evaluations {
		if evaluations[i].Prompt == prompt.Prompt {
			return &evaluations[i]
		}
	}
	return nil
}

func (a App) createPrompt(w http.ResponseWriter, r *http.Request) *AppResp {
	text := strings.TrimSpace(r.FormValue("prompt"))
	if text == "" {
		return a.errResp(nil, get400("A prompt text is required."))
	}

	_, err := a.PromptRepo.Append(domain.Prompt{
		Prompt:   text,
		Response: r.FormValue("response"),
		Category: r.FormValue("category"),
	})

	if err != nil {
		return a.storeResp(err)
	}

	http.Redirect(w, r, "/prompts?filter=all", http.StatusSeeOther)
	return nil
}

func (a App) promptById(w http.ResponseWriter, r *http.Request) *AppResp {
	id, action := splitIdPath(r.URL.Path, "/prompts/")

	if r.Method != http.MethodPost || action != "response" {
		return a.errResp(nil, get405())
	}

	_, err := a.PromptRepo.UpdateResponse(id, r.FormValue("response"))

	if err != nil {
		return a.storeResp(err)
	}

	http.Redirect(w, r, "/prompts", http.StatusSeeOther)
	return nil
}

func (a App) evaluations(w http.ResponseWriter, r *http.Request) *AppResp {
	switch r.Method {
	case http.MethodGet:
		return a.dashboard()
	case http.MethodPost:
		return a.createEvaluation(w, r)
	default:
		return a.errResp(nil, get405())
	}
}

func (a App) dashboard() *AppResp {
	evaluations, err := a.EvaluationRepo.LoadAll()

	if err != nil {
		return a.storeResp(err)
	}

	return &AppResp{Component: a.ComponentBuilder.Dashboard(stats.Summarize(evaluations)), Code: 200}
}

func (a App) createEvaluation(w http.ResponseWriter, r *http.Request) *AppResp {
	req, resp := a.parseEvaluationReq(r)

	if resp != nil {
		return resp
	}

	stored, err := a.EvaluationRepo.Append(domain.Evaluation{
		PromptId:     req.PromptId,
		Prompt:       req.Prompt,
		Response:     req.Response,
		Helpfulness:  req.Helpfulness,
		Truthfulness: req.Truthfulness,
		Harmlessness: req.Harmlessness,
		Comment:      req.Comment,
	})

	if err != nil {
		return a.storeResp(err)
	}

	if isJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id": %q}`, stored.Id)
		return nil
	}

	http.Redirect(w, r, "/evaluations", http.StatusSeeOther)
	return nil
}

func (a App) parseEvaluationReq(r *http.Request) (*evaluationReq, *AppResp) {
	var req *evaluationReq

	if isJSON(r) {
		content, err := read(r.Body)

		if err != nil {
			return nil, a.errResp(err, get400("Could not read the request body."))
		}

		req, err = readJSON[evaluationReq](content)

		if err != nil {
			return nil, a.errResp(err, get400("Could not parse the request body."))
		}
	} else {
		helpfulness, err := strconv.Atoi(r.FormValue("helpfulness"))

		if err != nil {
			return nil, a.errResp(err, get400("Scores must be integers between 1 and 5."))
		}

		truthfulness, err := strconv.Atoi(r.FormValue("truthfulness"))

		if err != nil {
			return nil, a.errResp(err, get400("Scores must be integers between 1 and 5."))
		}

		harmlessness, err := strconv.Atoi(r.FormValue("harmlessness"))

		if err != nil {
			return nil, a.errResp(err, get400("Scores must be integers between 1 and 5."))
		}

		req = &evaluationReq{
			PromptId:     r.FormValue("prompt_id"),
			Prompt:       r.FormValue("prompt"),
			Response:     r.FormValue("response"),
			Helpfulness:  helpfulness,
			Truthfulness: truthfulness,
			Harmlessness: harmlessness,
			Comment:      r.FormValue("comments"),
		}
	}

	for _, score := range []int{req.Helpfulness, req.Truthfulness, req.Harmlessness} {
		if !domain.ValidScore(score) {
			return nil, a.errResp(nil, get400("Scores must be integers between 1 and 5."))
		}
	}

	return req, nil
}

func (a App) evaluationById(w http.ResponseWriter, r *http.Request) *AppResp {
	id, action := splitIdPath(r.URL.Path, "/evaluations/")

	switch {
	case action == "" && r.Method == http.MethodPost:
		return a.updateEvaluation(w, r, id)
	case action == "delete" && r.Method == http.MethodPost:
		return a.deleteEvaluation(w, r, id)
	case action == "report" && r.Method == http.MethodGet:
		return a.evaluationReport(w, id)
	default:
		return a.errResp(nil, get405())
	}
}

func (a App) updateEvaluation(w http.ResponseWriter, r *http.Request, id string) *AppResp {
	patch, resp := a.parsePatch(r)

	if resp != nil {
		return resp
	}

	_, err := a.EvaluationRepo.Update(id, *patch)

	if err != nil {
		return a.storeResp(err)
	}

	http.Redirect(w, r, "/evaluations", http.StatusSeeOther)
	return nil
}

// parsePatch only picks up fields present in the form so a partial re-rating
// leaves the rest of the record alone.
func (a App) parsePatch(r *http.Request) (*domain.EvaluationPatch, *AppResp) {
	err := r.ParseForm()

	if err != nil {
		return nil, a.errResp(err, get400("Could not parse the form."))
	}

	patch := domain.EvaluationPatch{}
	scoreFields := map[string]**int{
		"helpfulness":  &patch.Helpfulness,
		"truthfulness": &patch.Truthfulness,
		"harmlessness": &patch.Harmlessness,
	}

	for field, target := range scoreFields {
		if !r.PostForm.Has(field) {
			continue
		}

		score, err := strconv.Atoi(r.PostForm.Get(field))

		if err != nil || !domain.ValidScore(score) {
			return nil, a.errResp(err, get400("Scores must be integers between 1 and 5."))
		}

		*target = &score
	}

	if r.PostForm.Has("comments") {
		comment := r.PostForm.Get("comments")
		patch.Comment = &comment
	}
	if r.PostForm.Has("response") {
		response := r.PostForm.Get("response")
		patch.Response = &response
	}

	return &patch, nil
}

func (a App) deleteEvaluation(w http.ResponseWriter, r *http.Request, id string) *AppResp {
	err := a.EvaluationRepo.Delete(id)

	if err != nil {
		return a.storeResp(err)
	}

	http.Redirect(w, r, "/evaluations", http.StatusSeeOther)
	return nil
}

func (a App) evaluationReport(w http.ResponseWriter, id string) *AppResp {
	evaluations, err := a.EvaluationRepo.LoadAll()

	if err != nil {
		return a.storeResp(err)
	}

	for _, evaluation := range evaluations {
		if evaluation.Id != id {
			continue
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, genReport(evaluation))
		return nil
	}

	return a.errResp(persistence.ErrNotFound, get404())
}

func splitIdPath(path string, prefix string) (string, string) {
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.SplitN(rest, "/", 2)

	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
