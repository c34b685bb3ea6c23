package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"feedbackengine/internal/domain"
	"feedbackengine/internal/stats"

	"github.com/a-h/templ"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

type Config struct {
	Port           string `env:"GOPORT" env-default:"8000"`
	DataDir        string `env:"DATA_DIR" env-default:"data"`
	DatabaseURL    string `env:"DATABASE_URL"`
	RecoverCorrupt bool   `env:"RECOVER_CORRUPT" env-default:"false"`
}

type EvaluationRepo interface {
	LoadAll() ([]domain.Evaluation, error)
	Append(evaluation domain.Evaluation) (*domain.Evaluation, error)
	Update(id string, patch domain.EvaluationPatch) (*domain.Evaluation, error)
	Delete(id string) error
}

type PromptRepo interface {
	LoadAll() ([]domain.Prompt, error)
	Append(prompt domain.Prompt) (*domain.Prompt, error)
	UpdateResponse(id string, response string) (*domain.Prompt, error)
}

type ComponentBuilder struct {
	Index       func(templates []domain.Template) templ.Component
	Report      func(prompt string, report domain.QualityReport) templ.Component
	Compare     func(comparison domain.Comparison) templ.Component
	Review      func(prompt domain.Prompt, evaluation *domain.Evaluation, insights domain.ResponseInsights, pos int, total int, filter string) templ.Component
	EmptyReview func(filter string) templ.Component
	Dashboard   func(summary stats.Summary) templ.Component
	Error       func(code int, title string, msg string) templ.Component
}

type App struct {
	EvaluationRepo   EvaluationRepo
	PromptRepo       PromptRepo
	ComponentBuilder ComponentBuilder
	Config           Config
}

// Routes wires the full handler chain: mux, CORS, request throttling.
func (a App) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", ComponentHandler(a.index))
	mux.Handle("/analyze", ComponentHandler(a.analyze))
	mux.Handle("/compare", ComponentHandler(a.compare))
	mux.Handle("/prompts", ComponentHandler(a.prompts))
	mux.Handle("/prompts/", ComponentHandler(a.promptById))
	mux.Handle("/evaluations", ComponentHandler(a.evaluations))
	mux.Handle("/evaluations/", ComponentHandler(a.evaluationById))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	// single-user tool; the limiter is there to shrug off accidental
	// request storms, not to be fair across clients
	limiter := rate.NewLimiter(rate.Limit(25), 50)

	return c.Handler(throttle(limiter, mux))
}

func throttle(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a App) Start() error {
	slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
	return http.ListenAndServe(fmt.Sprintf(":%s", a.Config.Port), a.Routes())
}
