package main

import (
	"fmt"
	"log/slog"
	"os"

	"feedbackengine/internal/app"
	"feedbackengine/internal/components"
	"feedbackengine/internal/persistence"

	"github.com/ilyakaznacheev/cleanenv"
	_ "go.uber.org/automaxprocs"
)

func config() (app.Config, error) {
	var cfg app.Config
	err := cleanenv.ReadEnv(&cfg)
	return cfg, err
}

func repos(cfg app.Config) (app.EvaluationRepo, app.PromptRepo, error) {
	if cfg.DatabaseURL == "" {
		slog.Info(fmt.Sprintf("using json file backend in %s", cfg.DataDir))
		return persistence.NewJSONEvaluationRepo(cfg.DataDir, cfg.RecoverCorrupt),
			persistence.NewJSONPromptRepo(cfg.DataDir, cfg.RecoverCorrupt),
			nil
	}

	db, err := persistence.Connect(cfg.DatabaseURL)

	if err != nil {
		return nil, nil, err
	}

	err = persistence.EnsureSchema(db)

	if err != nil {
		return nil, nil, err
	}

	slog.Info("using postgres backend")
	return persistence.PGEvaluationRepo{DB: db}, persistence.PGPromptRepo{DB: db}, nil
}

func main() {
	cfg, err := config()

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}

	evaluationRepo, promptRepo, err := repos(cfg)

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}

	componentBuilder := app.ComponentBuilder{
		Index:       components.Index,
		Report:      components.Report,
		Compare:     components.Compare,
		Review:      components.Review,
		EmptyReview: components.EmptyReview,
		Dashboard:   components.Dashboard,
		Error:       components.Error,
	}

	a := app.App{
		EvaluationRepo:   evaluationRepo,
		PromptRepo:       promptRepo,
		ComponentBuilder: componentBuilder,
		Config:           cfg,
	}

	err = a.Start()

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}
}
