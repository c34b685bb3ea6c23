package persistence

import (
	"database/sql"
	"errors"
	"time"

	"feedbackengine/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var evaluationColumns = []string{
	"id", "prompt_id", "prompt_text", "response_text",
	"helpfulness_score", "truthfulness_score", "harmlessness_score",
	"comments", "state", "created_at",
}

type PGEvaluationRepo struct {
	DB *sql.DB
}

func scanEvaluation(row sq.RowScanner) (*domain.Evaluation, error) {
	var e domain.Evaluation
	err := row.Scan(&e.Id, &e.PromptId, &e.Prompt, &e.Response,
		&e.Helpfulness, &e.Truthfulness, &e.Harmlessness,
		&e.Comment, &e.State, &e.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r PGEvaluationRepo) LoadAll() ([]domain.Evaluation, error) {
	query, args, err := builder.
		Select(evaluationColumns...).
		From("evaluations").
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

	records := []domain.Evaluation{}
	for rows.Next() {
		record, err := scanEvaluation(rows)

		if err != nil {
			return nil, err
		}

		records = append(records, *record)
	}

	return records, rows.Err()
}

func (r PGEvaluationRepo) Append(evaluation domain.Evaluation) (*domain.Evaluation, error) {
	evaluation.Id = uuid.New().String()
	if evaluation.State == "" {
		evaluation.State = domain.StateCompleted
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	query, args, err := builder.
		Insert("evaluations").
		Columns(evaluationColumns...).
		Values(evaluation.Id, evaluation.PromptId, evaluation.Prompt, evaluation.Response,
			evaluation.Helpfulness, evaluation.Truthfulness, evaluation.Harmlessness,
			evaluation.Comment, evaluation.State, evaluation.CreatedAt).
		ToSql()

	if err != nil {
		return nil, err
	}

	_, err = r.DB.Exec(query, args...)

	if err != nil {
		return nil, err
	}

	return &evaluation, nil
}

func (r PGEvaluationRepo) Update(id string, patch domain.EvaluationPatch) (*domain.Evaluation, error) {
	query, args, err := builder.
		Select(evaluationColumns...).
		From("evaluations").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, err
	}

	record, err := scanEvaluation(r.DB.QueryRow(query, args...))

	if err != nil {
		return nil, err
	}

	record.Apply(patch)

	query, args, err = builder.
		Update("evaluations").
		Set("response_text", record.Response).
		Set("helpfulness_score", record.Helpfulness).
		Set("truthfulness_score", record.Truthfulness).
		Set("harmlessness_score", record.Harmlessness).
		Set("comments", record.Comment).
		Set("state", record.State).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, err
	}

	_, err = r.DB.Exec(query, args...)

	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r PGEvaluationRepo) Delete(id string) error {
	query, args, err := builder.
		Delete("evaluations").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := r.DB.Exec(query, args...)

	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
