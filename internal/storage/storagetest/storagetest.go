// Package storagetest содержит общий набор проверок для реализаций storage.Storage
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknotes-service/internal/storage"
)

// Run прогоняет контракт storage.Storage на хранилище, созданном newStorage.
// Каждый подтест получает новое хранилище.
func Run(t *testing.T, newStorage func(t *testing.T) storage.Storage) {
	t.Helper()

	t.Run("GetMissingKey", func(t *testing.T) {
		s := newStorage(t)
		value, ok, err := s.Get(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, ok, "Expected missing key to be reported as absent")
		assert.Empty(t, value)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		ctx := context.Background()
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, "tasks", `[{"id":"1"}]`))

		value, ok, err := s.Get(ctx, "tasks")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"1"}]`, value)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		ctx := context.Background()
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, "notes", "first"))
		require.NoError(t, s.Set(ctx, "notes", "second"))

		value, ok, err := s.Get(ctx, "notes")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", value)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		ctx := context.Background()
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, "tasks", "t"))
		require.NoError(t, s.Set(ctx, "notes", "n"))

		tasks, _, err := s.Get(ctx, "tasks")
		require.NoError(t, err)
		notes, _, err := s.Get(ctx, "notes")
		require.NoError(t, err)
		assert.Equal(t, "t", tasks)
		assert.Equal(t, "n", notes)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		ctx := context.Background()
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, "tasks", ""))

		value, ok, err := s.Get(ctx, "tasks")
		require.NoError(t, err)
		assert.True(t, ok, "Expected empty value to be stored")
		assert.Empty(t, value)
	})
}
