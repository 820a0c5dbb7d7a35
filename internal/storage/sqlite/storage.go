package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tasknotes-service/internal/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry строка таблицы key-value
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:128"`
	Value     string `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time
}

// TableName возвращает имя таблицы для Entry
func (Entry) TableName() string {
	return "kv_entries"
}

var _ storage.Storage = (*store)(nil)

type store struct {
	db *gorm.DB
}

// NewStorage открывает (или создает) базу SQLite по пути path
func NewStorage(path string) (storage.Storage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	return New(db)
}

// New создает хранилище поверх готового *gorm.DB и применяет миграцию таблицы
func New(db *gorm.DB) (storage.Storage, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}
	return &store{db: db}, nil
}

func (s *store) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	if err := s.db.WithContext(ctx).First(&entry, "entry_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *store) Set(ctx context.Context, key, value string) error {
	entry := Entry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
