package persistence

import (
	"path/filepath"
	"time"

	"feedbackengine/internal/domain"

	"github.com/google/uuid"
)

type JSONEvaluationRepo struct {
	store jsonStore
}

func NewJSONEvaluationRepo(dataDir string, recoverCorrupt bool) JSONEvaluationRepo {
	return JSONEvaluationRepo{store: jsonStore{
		path:           filepath.Join(dataDir, "evaluations.json"),
		recoverCorrupt: recoverCorrupt,
	}}
}

func (r JSONEvaluationRepo) LoadAll() ([]domain.Evaluation, error) {
	return readAll[domain.Evaluation](r.store)
}

func (r JSONEvaluationRepo) Append(evaluation domain.Evaluation) (*domain.Evaluation, error) {
	records, err := r.LoadAll()

	if err != nil {
		return nil, err
	}

	evaluation.Id = uuid.New().String()
	if evaluation.State == "" {
		evaluation.State = domain.StateCompleted
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	records = append(records, evaluation)
	err = writeAll(r.store, records)

	if err != nil {
		return nil, err
	}

	return &evaluation, nil
}

func (r JSONEvaluationRepo) Update(id string, patch domain.EvaluationPatch) (*domain.Evaluation, error) {
	records, err := r.LoadAll()

	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Id != id {
			continue
		}

		records[i].Apply(patch)
		err = writeAll(r.store, records)

		if err != nil {
			return nil, err
		}

		return &records[i], nil
	}

	return nil, ErrNotFound
}

func (r JSONEvaluationRepo) Delete(id string) error {
	records, err := r.LoadAll()

	if err != nil {
		return err
	}

	for i := range records {
		if records[i].Id != id {
			continue
		}

		records = append(records[:i], records[i+1:]...)
		return writeAll(r.store, records)
	}

	return ErrNotFound
}
