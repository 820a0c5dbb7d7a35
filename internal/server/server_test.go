package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tasknotes-service/internal/config"
	todov1 "tasknotes-service/pkg/api/todo/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStorage_Drivers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  *config.ConfigStorage
	}{
		{"memory", &config.ConfigStorage{Driver: config.StorageMemory}},
		{"file", &config.ConfigStorage{Driver: config.StorageFile, FileDir: filepath.Join(dir, "data")}},
		{"sqlite", &config.ConfigStorage{Driver: config.StorageSQLite, SQLitePath: filepath.Join(dir, "tasknotes.db")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := OpenStorage(ctx, tt.cfg)
			require.NoError(t, err)
			require.NoError(t, store.Set(ctx, "tasks", "[]"))
			assert.NoError(t, store.Close())
		})
	}

	_, err := OpenStorage(ctx, &config.ConfigStorage{Driver: "etcd"})
	assert.Error(t, err)
}

func TestServer_InitializeLoadsPersistedData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"),
		[]byte(`[{"id":"t1","title":"Persisted","description":"","priority":"high","status":"Pending","createdAt":"2026-01-01T00:00:00Z","completedAt":null}]`), 0o644))

	cfg := &config.Config{
		Server:  &config.ConfigServer{PortGRPC: 0, PortHTTP: 0},
		Storage: &config.ConfigStorage{Driver: config.StorageFile, FileDir: dir},
	}
	require.NoError(t, cfg.Validate())

	srv := &Server{Config: cfg, GatewayCancel: func() {}}
	require.NoError(t, srv.Initialize(ctx))
	t.Cleanup(func() { _ = srv.Shutdown(ctx) })

	require.NotNil(t, srv.Handler)
	require.NotNil(t, srv.GRPCServer)

	resp, err := srv.Handler.ListTasks(ctx, &todov1.ListTasksRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "Persisted", resp.Tasks[0].Title)
}
