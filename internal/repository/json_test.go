package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknotes-service/internal/model"
	"tasknotes-service/internal/storage"
	"tasknotes-service/internal/storage/memory"
)

// failingStorage хранилище, возвращающее заданные ошибки
type failingStorage struct {
	getErr error
	setErr error
}

func (f *failingStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.getErr
}

func (f *failingStorage) Set(ctx context.Context, key, value string) error {
	return f.setErr
}

func (f *failingStorage) Close() error { return nil }

var _ storage.Storage = (*failingStorage)(nil)

func sampleTasks() []model.Task {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	completed := created.Add(time.Hour)
	return []model.Task{
		{
			ID:        "t1",
			Title:     "Buy milk",
			Priority:  model.PriorityLow,
			Status:    model.StatusPending,
			CreatedAt: created,
		},
		{
			ID:          "t2",
			Title:       "Ship release",
			Description: "tag and push",
			Priority:    model.PriorityHigh,
			Status:      model.StatusCompleted,
			CreatedAt:   created.Add(time.Minute),
			CompletedAt: &completed,
		},
	}
}

func TestJSONCollection_LoadMissingKey(t *testing.T) {
	c := NewJSONCollection[model.Task](memory.NewStorage(), TasksKey)

	items := c.Load(context.Background())

	require.NotNil(t, items, "Expected empty slice, not nil")
	assert.Empty(t, items)
}

func TestJSONCollection_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewJSONCollection[model.Task](memory.NewStorage(), TasksKey)
	original := sampleTasks()

	require.NoError(t, c.Save(ctx, original))
	loaded := c.Load(ctx)

	require.NoError(t, c.Save(ctx, loaded))
	reloaded := c.Load(ctx)

	require.Len(t, reloaded, len(original))
	for i := range original {
		assert.Equal(t, original[i].ID, reloaded[i].ID)
		assert.Equal(t, original[i].Title, reloaded[i].Title)
		assert.Equal(t, original[i].Description, reloaded[i].Description)
		assert.Equal(t, original[i].Priority, reloaded[i].Priority)
		assert.Equal(t, original[i].Status, reloaded[i].Status)
		assert.True(t, original[i].CreatedAt.Equal(reloaded[i].CreatedAt))
		if original[i].CompletedAt == nil {
			assert.Nil(t, reloaded[i].CompletedAt)
		} else {
			require.NotNil(t, reloaded[i].CompletedAt)
			assert.True(t, original[i].CompletedAt.Equal(*reloaded[i].CompletedAt))
		}
	}
}

func TestJSONCollection_SaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	c := NewJSONCollection[model.Note](s, NotesKey)

	require.NoError(t, c.Save(ctx, nil))

	raw, ok, err := s.Get(ctx, NotesKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestJSONCollection_StoredFormat(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	c := NewJSONCollection[model.Task](s, TasksKey)

	require.NoError(t, c.Save(ctx, sampleTasks()[:1]))

	raw, _, err := s.Get(ctx, TasksKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id": "t1",
		"title": "Buy milk",
		"description": "",
		"priority": "low",
		"status": "Pending",
		"createdAt": "2026-03-01T10:00:00Z",
		"completedAt": null
	}]`, raw)
}

func TestJSONCollection_MalformedDataIsDropped(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{oops"},
		{name: "object instead of array", raw: `{"id":"t1"}`},
		{name: "invalid status", raw: `[{"id":"t1","title":"a","priority":"low","status":"Done","createdAt":"2026-03-01T10:00:00Z"}]`},
		{name: "completed without completedAt", raw: `[{"id":"t1","title":"a","priority":"low","status":"Completed","createdAt":"2026-03-01T10:00:00Z","completedAt":null}]`},
		{name: "empty id", raw: `[{"id":"","title":"a","priority":"low","status":"Pending","createdAt":"2026-03-01T10:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := memory.NewStorage()
			require.NoError(t, s.Set(ctx, TasksKey, tt.raw))

			items := NewJSONCollection[model.Task](s, TasksKey).Load(ctx)

			require.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestJSONCollection_NullIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	require.NoError(t, s.Set(ctx, NotesKey, "null"))

	items := NewJSONCollection[model.Note](s, NotesKey).Load(ctx)

	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestJSONCollection_LegacyNumericNoteIDs(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStorage()
	require.NoError(t, s.Set(ctx, NotesKey, `[{"id":1718000000000,"text":"remember"}]`))

	items := NewJSONCollection[model.Note](s, NotesKey).Load(ctx)

	require.Len(t, items, 1)
	assert.Equal(t, model.ID("1718000000000"), items[0].ID)
	assert.Equal(t, "remember", items[0].Text)
}

func TestJSONCollection_ReadErrorGivesEmpty(t *testing.T) {
	c := NewJSONCollection[model.Task](&failingStorage{getErr: errors.New("disk gone")}, TasksKey)

	items := c.Load(context.Background())

	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestJSONCollection_SaveErrorIsReturned(t *testing.T) {
	writeErr := errors.New("disk full")
	c := NewJSONCollection[model.Task](&failingStorage{setErr: writeErr}, TasksKey)

	err := c.Save(context.Background(), sampleTasks())

	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)
}
