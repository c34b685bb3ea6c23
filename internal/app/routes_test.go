package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"feedbackengine/internal/app"
	"feedbackengine/internal/components"
	"feedbackengine/internal/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) app.App {
	t.Helper()
	dir := t.TempDir()

	return app.App{
		EvaluationRepo: persistence.NewJSONEvaluationRepo(dir, false),
		PromptRepo:     persistence.NewJSONPromptRepo(dir, false),
		ComponentBuilder: app.ComponentBuilder{
			Index:       components.Index,
			Report:      components.Report,
			Compare:     components.Compare,
			Review:      components.Review,
			EmptyReview: components.EmptyReview,
			Dashboard:   components.Dashboard,
			Error:       components.Error,
		},
		Config: app.Config{Port: "0", DataDir: dir},
	}
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func ratingForm(h int, tr int, ha int) url.Values {
	return url.Values{
		"prompt":       {"Explain the water cycle."},
		"response":     {"Water evaporates, condenses and falls as rain."},
		"helpfulness":  {strconv.Itoa(h)},
		"truthfulness": {strconv.Itoa(tr)},
		"harmlessness": {strconv.Itoa(ha)},
		"comments":     {"fine"},
	}
}

func TestIndexPage(t *testing.T) {
	rec := get(newTestApp(t).Routes(), "/")

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Prompt Workshop")
	assert.Contains(t, rec.Body.String(), "Educational Explanation")
}

func TestUnknownPathIs404(t *testing.T) {
	rec := get(newTestApp(t).Routes(), "/nope")

	assert.Equal(t, 404, rec.Code)
}

func TestAnalyzeForm(t *testing.T) {
	rec := postForm(newTestApp(t).Routes(), "/analyze", url.Values{"prompt": {"Explain"}})

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quality score:")
	assert.Contains(t, rec.Body.String(), "Consider adding more specific details")
}

func TestAnalyzeJSON(t *testing.T) {
	body := `{"prompt": "What are the benefits of renewable energy sources for a household?"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestApp(t).Routes().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quality score:")
}

func TestAnalyzeNullJSONBodyIsRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("null"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestApp(t).Routes().ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not parse the request body.")
}

func TestCreateEvaluationNullJSONBodyIsRejected(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/evaluations", strings.NewReader("null"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)

	records, err := a.EvaluationRepo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestComparePageShowsForm(t *testing.T) {
	rec := get(newTestApp(t).Routes(), "/compare")

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Prompt A")
	assert.Contains(t, rec.Body.String(), "Prompt B")
}

func TestCompareRendersBothReports(t *testing.T) {
	rec := postForm(newTestApp(t).Routes(), "/compare", url.Values{
		"prompt_a":   {"Explain the process of photosynthesis in plants for a middle school student, please include simple examples."},
		"prompt_b":   {"hm"},
		"response_a": {"Plants turn sunlight into sugar."},
	})

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comparison results")
	assert.Contains(t, rec.Body.String(), "Prompt A scores higher")
	assert.Contains(t, rec.Body.String(), "response 5 words")
}

func TestCompareRequiresBothPrompts(t *testing.T) {
	rec := postForm(newTestApp(t).Routes(), "/compare", url.Values{"prompt_a": {"Explain recursion."}})

	assert.Equal(t, 400, rec.Code)
}

func TestAnalyzeRequiresPost(t *testing.T) {
	rec := get(newTestApp(t).Routes(), "/analyze")

	assert.Equal(t, 405, rec.Code)
}

func TestCreateEvaluationRejectsOutOfRangeScores(t *testing.T) {
	a := newTestApp(t)
	handler := a.Routes()

	rec := postForm(handler, "/evaluations", ratingForm(6, 3, 3))
	assert.Equal(t, 400, rec.Code)

	rec = postForm(handler, "/evaluations", ratingForm(4, 0, 3))
	assert.Equal(t, 400, rec.Code)

	// nothing reached the store
	records, err := a.EvaluationRepo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateEvaluationAndDashboard(t *testing.T) {
	a := newTestApp(t)
	handler := a.Routes()

	rec := postForm(handler, "/evaluations", ratingForm(4, 5, 5))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = get(handler, "/evaluations")
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 evaluations")
	assert.Contains(t, rec.Body.String(), "4.67")
}

func TestEvaluationLifecycleOverJSON(t *testing.T) {
	a := newTestApp(t)
	handler := a.Routes()

	body := `{"prompt": "p", "response": "r", "helpfulness_score": 3, "truthfulness_score": 3, "harmlessness_score": 3}`
	req := httptest.NewRequest(http.MethodPost, "/evaluations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Id string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Id)

	// re-rate
	rec = postForm(handler, "/evaluations/"+created.Id, url.Values{"helpfulness": {"5"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	records, err := a.EvaluationRepo.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Helpfulness)
	assert.Equal(t, 3, records[0].Truthfulness)

	// plain-text report
	rec = get(handler, "/evaluations/"+created.Id+"/report")
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "Helpfulness:  5/5")

	// delete
	rec = postForm(handler, "/evaluations/"+created.Id+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	records, err = a.EvaluationRepo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpdateMissingEvaluationIs404(t *testing.T) {
	rec := postForm(newTestApp(t).Routes(), "/evaluations/missing", url.Values{"helpfulness": {"5"}})

	assert.Equal(t, 404, rec.Code)
}

func TestDeleteMissingEvaluationIs404(t *testing.T) {
	rec := postForm(newTestApp(t).Routes(), "/evaluations/missing/delete", url.Values{})

	assert.Equal(t, 404, rec.Code)
}

func TestReviewSeededPrompts(t *testing.T) {
	handler := newTestApp(t).Routes()

	rec := get(handler, "/prompts")

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Prompt 1 of")
	assert.Contains(t, rec.Body.String(), "machine learning")
}

func TestReviewUnratedFilterShrinksAfterRating(t *testing.T) {
	a := newTestApp(t)
	handler := a.Routes()

	prompts, err := a.PromptRepo.LoadAll()
	require.NoError(t, err)

	form := ratingForm(3, 3, 3)
	form.Set("prompt_id", prompts[0].Id)
	rec := postForm(handler, "/evaluations", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = get(handler, "/prompts?filter=unrated")
	assert.Contains(t, rec.Body.String(), "Prompt 1 of "+strconv.Itoa(len(prompts)-1))

	rec = get(handler, "/prompts?filter=rated")
	assert.Contains(t, rec.Body.String(), "Prompt 1 of 1")
	assert.Contains(t, rec.Body.String(), "Already evaluated")
}

func TestAddPromptAndEditResponse(t *testing.T) {
	a := newTestApp(t)
	handler := a.Routes()

	rec := postForm(handler, "/prompts", url.Values{
		"prompt":   {"Summarize the French Revolution in one paragraph."},
		"category": {"Educational"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	prompts, err := a.PromptRepo.LoadAll()
	require.NoError(t, err)
	added := prompts[len(prompts)-1]
	assert.Empty(t, added.Response)

	rec = postForm(handler, "/prompts/"+added.Id+"/response", url.Values{"response": {"It began in 1789..."}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	prompts, err = a.PromptRepo.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "It began in 1789...", prompts[len(prompts)-1].Response)
}

func TestHealth(t *testing.T) {
	rec := get(newTestApp(t).Routes(), "/health")

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
