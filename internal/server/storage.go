package server

import (
	"context"
	"fmt"
	"log"

	"tasknotes-service/internal/config"
	"tasknotes-service/internal/storage"
	"tasknotes-service/internal/storage/file"
	"tasknotes-service/internal/storage/memory"
	"tasknotes-service/internal/storage/redis"
	"tasknotes-service/internal/storage/sqlite"
)

// OpenStorage открывает хранилище, выбранное в storage.driver
func OpenStorage(ctx context.Context, cfg *config.ConfigStorage) (storage.Storage, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		log.Println("[storage] using in-memory storage, data is lost on restart")
		return memory.NewStorage(), nil
	case config.StorageFile:
		log.Printf("[storage] using file storage in %s", cfg.FileDir)
		return file.NewStorage(cfg.FileDir)
	case config.StorageSQLite:
		log.Printf("[storage] using sqlite storage at %s", cfg.SQLitePath)
		return sqlite.NewStorage(cfg.SQLitePath)
	case config.StorageRedis:
		log.Printf("[storage] using redis storage at %s (prefix %q)", cfg.RedisAddr, cfg.RedisPrefix)
		return redis.NewStorage(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
