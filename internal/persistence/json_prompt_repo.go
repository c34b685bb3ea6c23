package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"feedbackengine/internal/domain"

	"github.com/google/uuid"
)

type JSONPromptRepo struct {
	store jsonStore
}

func NewJSONPromptRepo(dataDir string, recoverCorrupt bool) JSONPromptRepo {
	return JSONPromptRepo{store: jsonStore{
		path:           filepath.Join(dataDir, "prompts.json"),
		recoverCorrupt: recoverCorrupt,
	}}
}

// LoadAll seeds the default catalog on first use so the review view is never
// empty on a fresh install.
func (r JSONPromptRepo) LoadAll() ([]domain.Prompt, error) {
	_, err := os.Stat(r.store.path)

	if errors.Is(err, os.ErrNotExist) {
		seeded := defaultPrompts()
		err = writeAll(r.store, seeded)

		if err != nil {
			return nil, err
		}

		return seeded, nil
	}

	return readAll[domain.Prompt](r.store)
}

func (r JSONPromptRepo) Append(prompt domain.Prompt) (*domain.Prompt, error) {
	records, err := r.LoadAll()

	if err != nil {
		return nil, err
	}

	prompt.Id = uuid.New().String()
	if prompt.CreatedAt.IsZero() {
		prompt.CreatedAt = time.Now().UTC()
	}

	records = append(records, prompt)
	err = writeAll(r.store, records)

	if err != nil {
		return nil, err
	}

	return &prompt, nil
}

func (r JSONPromptRepo) UpdateResponse(id string, response string) (*domain.Prompt, error) {
	records, err := r.LoadAll()

	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Id != id {
			continue
		}

		records[i].Response = response
		err = writeAll(r.store, records)

		if err != nil {
			return nil, err
		}

		return &records[i], nil
	}

	return nil, ErrNotFound
}
