package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// jsonStore is one whole-file JSON collection. Every operation re-reads the
// file and every mutation rewrites it wholesale; the caller serializes access
// (single-process, single-writer assumption).
type jsonStore struct {
	path           string
	recoverCorrupt bool
}

func readAll[T any](store jsonStore) ([]T, error) {
	content, err := os.ReadFile(store.path)

	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	} else if err != nil {
		return nil, err
	}

	var records []T
	err = json.Unmarshal(content, &records)

	if err != nil {
		if store.recoverCorrupt {
			slog.Warn(fmt.Sprintf("treating malformed store %s as empty: %s", store.path, err.Error()))
			return []T{}, nil
		}
		return nil, &StorageError{Source: store.path, Err: err}
	}

	return records, nil
}

func writeAll[T any](store jsonStore, records []T) error {
	err := os.MkdirAll(filepath.Dir(store.path), 0755)

	if err != nil {
		return err
	}

	content, err := json.MarshalIndent(records, "", "  ")

	if err != nil {
		return err
	}

	return os.WriteFile(store.path, content, 0644)
}
