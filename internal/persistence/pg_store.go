package persistence

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

// builder is shared by both Postgres repos; Postgres uses $n placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Connect opens the optional Postgres mirror. The connection string comes from
// DATABASE_URL; when it is unset the JSON backend is used instead.
func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)

	if err != nil {
		return nil, err
	}

	err = db.Ping()

	if err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the two tables mirroring the JSON collections.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS prompts (
			id TEXT PRIMARY KEY,
			prompt_text TEXT NOT NULL,
			response_text TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS evaluations (
			id TEXT PRIMARY KEY,
			prompt_id TEXT NOT NULL DEFAULT '',
			prompt_text TEXT NOT NULL,
			response_text TEXT NOT NULL,
			helpfulness_score INT NOT NULL,
			truthfulness_score INT NOT NULL,
			harmlessness_score INT NOT NULL,
			comments TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, statement := range statements {
		_, err := db.Exec(statement)

		if err != nil {
			return err
		}
	}

	return nil
}
