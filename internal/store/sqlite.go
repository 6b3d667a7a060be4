package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lanagram/internal/models"
	"lanagram/internal/observability"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one persisted key with its full JSON snapshot value.
type kvEntry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLiteStore is the local Store backend: a single key-value table in
// an embedded SQLite file, one row per collection snapshot.
type SQLiteStore struct {
	db  *gorm.DB
	log *observability.StoreLogger
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the key-value store at path.
// Use ":memory:" for an ephemeral store in tests.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return &SQLiteStore{db: db, log: observability.NewStoreLogger("sqlite")}, nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		s.log.LogError(ctx, err, "get", key)
		return nil, false, models.NewInternalError(err)
	}
	s.log.LogRead(ctx, key, len(entry.Value))
	return entry.Value, true, nil
}

func (s *SQLiteStore) set(ctx context.Context, key string, value []byte) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&kvEntry{Key: key, Value: value}).Error
	if err != nil {
		s.log.LogError(ctx, err, "set", key)
		return models.NewInternalError(err)
	}
	s.log.LogWrite(ctx, key, len(value))
	return nil
}

func (s *SQLiteStore) Users(ctx context.Context) ([]models.User, error) {
	raw, ok, err := s.get(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.User{}, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (s *SQLiteStore) SaveUsers(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return models.NewInternalError(err)
	}
	return s.set(ctx, KeyUsers, raw)
}

func (s *SQLiteStore) Posts(ctx context.Context) ([]models.Post, error) {
	raw, ok, err := s.get(ctx, KeyPosts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Post{}, nil
	}
	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (s *SQLiteStore) SavePosts(ctx context.Context, posts []models.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return models.NewInternalError(err)
	}
	return s.set(ctx, KeyPosts, raw)
}

func (s *SQLiteStore) SessionUserID(ctx context.Context) (string, error) {
	raw, ok, err := s.get(ctx, KeySession)
	if err != nil || !ok {
		return "", err
	}
	return string(raw), nil
}

func (s *SQLiteStore) SetSessionUserID(ctx context.Context, id string) error {
	if id == "" {
		// Clearing the session removes the key entirely rather than
		// storing an empty value.
		if err := s.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", KeySession).Error; err != nil {
			s.log.LogError(ctx, err, "delete", KeySession)
			return models.NewInternalError(err)
		}
		return nil
	}
	return s.set(ctx, KeySession, []byte(id))
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
