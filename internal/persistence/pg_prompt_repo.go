package persistence

import (
	"database/sql"
	"errors"
	"time"

	"feedbackengine/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var promptColumns = []string{"id", "prompt_text", "response_text", "category", "created_at"}

type PGPromptRepo struct {
	DB *sql.DB
}

// LoadAll seeds the default catalog when the table is empty, mirroring the
// JSON backend's first-load behavior.
func (r PGPromptRepo) LoadAll() ([]domain.Prompt, error) {
	records, err := r.selectAll()

	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		return records, nil
	}

	seeded := defaultPrompts()
	for _, prompt := range seeded {
		err = r.insert(prompt)

		if err != nil {
			return nil, err
		}
	}

	return seeded, nil
}

func (r PGPromptRepo) selectAll() ([]domain.Prompt, error) {
	query, args, err := builder.
		Select(promptColumns...).
		From("prompts").
		OrderBy("created_at", "id").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(query, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Prompt{}
	for rows.Next() {
		var p domain.Prompt
		err = rows.Scan(&p.Id, &p.Prompt, &p.Response, &p.Category, &p.CreatedAt)

		if err != nil {
			return nil, err
		}

		records = append(records, p)
	}

	return records, rows.Err()
}

func (r PGPromptRepo) insert(prompt domain.Prompt) error {
	query, args, err := builder.
		Insert("prompts").
		Columns(promptColumns...).
		Values(prompt.Id, prompt.Prompt, prompt.Response, prompt.Category, prompt.CreatedAt).
		ToSql()

	if err != nil {
		return err
	}

	_, err = r.DB.Exec(query, args...)

	return err
}

func (r PGPromptRepo) Append(prompt domain.Prompt) (*domain.Prompt, error) {
	prompt.Id = uuid.New().String()
	if prompt.CreatedAt.IsZero() {
		prompt.CreatedAt = time.Now().UTC()
	}

	err := r.insert(prompt)

	if err != nil {
		return nil, err
	}

	return &prompt, nil
}

func (r PGPromptRepo) UpdateResponse(id string, response string) (*domain.Prompt, error) {
	query, args, err := builder.
		Update("prompts").
		Set("response_text", response).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, err
	}

	result, err := r.DB.Exec(query, args...)

	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return nil, err
	}

	if affected == 0 {
		return nil, ErrNotFound
	}

	query, args, err = builder.
		Select(promptColumns...).
		From("prompts").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, err
	}

	var p domain.Prompt
	err = r.DB.QueryRow(query, args...).Scan(&p.Id, &p.Prompt, &p.Response, &p.Category, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &p, nil
}
