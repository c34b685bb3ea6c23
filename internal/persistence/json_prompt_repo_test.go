package persistence

import (
	"testing"

	"feedbackengine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptLoadAllSeedsDefaults(t *testing.T) {
	repo := NewJSONPromptRepo(t.TempDir(), false)

	records, err := repo.LoadAll()

	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, prompt := range records {
		assert.NotEmpty(t, prompt.Id)
		assert.NotEmpty(t, prompt.Prompt)
	}

	// seeding happens once; a second load reads the same catalog back
	again, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Len(t, again, len(records))
	assert.Equal(t, records[0].Id, again[0].Id)
}

func TestPromptAppend(t *testing.T) {
	repo := NewJSONPromptRepo(t.TempDir(), false)
	seeded, err := repo.LoadAll()
	require.NoError(t, err)

	stored, err := repo.Append(domain.Prompt{
		Prompt:   "Summarize the plot of Moby Dick in two sentences.",
		Category: "Creative",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, stored.Id)

	records, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(seeded)+1)
	assert.Equal(t, stored.Id, records[len(records)-1].Id)
}

func TestPromptUpdateResponse(t *testing.T) {
	repo := NewJSONPromptRepo(t.TempDir(), false)
	records, err := repo.LoadAll()
	require.NoError(t, err)

	updated, err := repo.UpdateResponse(records[0].Id, "a fresh response")

	require.NoError(t, err)
	assert.Equal(t, "a fresh response", updated.Response)
	assert.Equal(t, records[0].Prompt, updated.Prompt)

	reloaded, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "a fresh response", reloaded[0].Response)
}

func TestPromptUpdateResponseMissingId(t *testing.T) {
	repo := NewJSONPromptRepo(t.TempDir(), false)
	_, err := repo.LoadAll()
	require.NoError(t, err)

	_, err = repo.UpdateResponse("missing", "x")

	assert.ErrorIs(t, err, ErrNotFound)
}
