package redis

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"tasknotes-service/internal/storage"
	"tasknotes-service/internal/storage/storagetest"
)

// Для тестов нужен Redis на localhost:6379
const testRedisAddr = "localhost:6379"

func checkRedisAvailable(t *testing.T) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", testRedisAddr, 2*time.Second)
	if err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	conn.Close()
}

func TestStorage_Contract(t *testing.T) {
	checkRedisAvailable(t)

	storagetest.Run(t, func(t *testing.T) storage.Storage {
		client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
		prefix := "test:" + uuid.NewString() + ":"
		t.Cleanup(func() {
			ctx := context.Background()
			keys, _ := client.Keys(ctx, prefix+"*").Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
			client.Close()
		})
		return New(client, prefix)
	})
}

func TestNewStorage_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewStorage(ctx, Config{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
