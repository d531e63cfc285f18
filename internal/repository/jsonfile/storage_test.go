package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"todo-list/internal/domain"
	"todo-list/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStorage(t *testing.T) *Storage {
	return New(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestStorage_LoadMissingFile(t *testing.T) {
	storage := setupStorage(t)

	tasks, err := storage.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, tasks)
	assert.True(t, errors.IsNotFound(err))
}

func TestStorage_SaveThenLoad(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()
	due := "2026-10-20"
	tasks := []domain.Task{
		{ID: 3, Text: "Call Mom", Completed: true, Created: "2024-01-01"},
		{ID: 1, Text: "Pay Bills", Completed: false, Created: "2026-10-18", Due: &due},
	}

	require.NoError(t, storage.Save(ctx, tasks))
	loaded, err := storage.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, tasks, loaded)
}

func TestStorage_FileLayout(t *testing.T) {
	storage := setupStorage(t)

	err := storage.Save(context.Background(), []domain.Task{
		{ID: 1, Text: "Grocery Shopping", Completed: true, Created: "2024-01-01"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(storage.Location())
	require.NoError(t, err)
	expected := `[
  {
    "id": 1,
    "text": "Grocery Shopping",
    "completed": true,
    "created": "2024-01-01",
    "due": null
  }
]
`
	assert.Equal(t, expected, string(data))
	_, err = os.Stat(storage.Location() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestStorage_SaveOverwrites(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, domain.SeedTasks()))
	require.NoError(t, storage.Save(ctx, []domain.Task{}))

	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
}

func TestStorage_SaveCreatesDirectory(t *testing.T) {
	storage := New(filepath.Join(t.TempDir(), "nested", "dir", "tasks.json"))

	require.NoError(t, storage.Save(context.Background(), domain.SeedTasks()))

	_, err := os.Stat(storage.Location())
	assert.NoError(t, err)
}

func TestStorage_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"object instead of array", `{"id": 1}`},
		{"wrong field type", `[{"id": "one", "text": "a"}]`},
		{"truncated", `[{"id": 1, "text": "a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := setupStorage(t)
			require.NoError(t, os.WriteFile(storage.Location(), []byte(tt.content), 0644))

			_, err := storage.Load(context.Background())

			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindStorage))
			assert.False(t, errors.IsNotFound(err))
		})
	}
}

func TestStorage_LoadNullIsEmpty(t *testing.T) {
	storage := setupStorage(t)
	require.NoError(t, os.WriteFile(storage.Location(), []byte("null"), 0644))

	tasks, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStorage_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))
	storage := New(filepath.Join(blocker, "tasks.json"))

	err := storage.Save(context.Background(), domain.SeedTasks())

	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindStorage))
}

func TestStorage_CanceledContext(t *testing.T) {
	storage := setupStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, storage.Save(ctx, domain.SeedTasks()))
	_, err := storage.Load(ctx)
	assert.Error(t, err)
}
