package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknotes-service/internal/storage"
	"tasknotes-service/internal/storage/storagetest"
)

func TestStorage_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		return NewStorage()
	})
}

func TestStorage_ClosedRejectsAccess(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	require.NoError(t, s.Close())

	_, _, err := s.Get(ctx, "tasks")
	assert.ErrorIs(t, err, storage.ErrClosed)
	assert.ErrorIs(t, s.Set(ctx, "tasks", "[]"), storage.ErrClosed)
}
