package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"timekeep/internal/models"
)

// InMemory is the DSN for a throwaway in-memory database, used by tests.
const InMemory = ":memory:"

// Store wraps the gorm connection and exposes the persistence primitives
// the tracker operates on.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and runs migrations
func Open(path string) (*Store, error) {
	if path != InMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("database ready", "path", path)

	return store, nil
}

// migrate creates/updates the database schema
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.Category{},
		&models.Session{},
		&models.ActiveSession{},
	)
}

// Transaction runs fn against a transactional view of the store. Any error
// returned by fn rolls the whole transaction back.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
