package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "github.com/aqualog/aqualog/internal/config"
)

var (
	DB      *gorm.DB
	once    sync.Once
	initErr error
)

func Init() error {
	once.Do(func() {
		DB, initErr = SetupDatabase()
	})
	return initErr
}

func SetupDatabase() (*gorm.DB, error) {
	dbPath := config.DBPath()

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	return Open(dbPath)
}

// Open connects to the SQLite database at path and brings the schema up
// to date. Foreign keys are enabled through the DSN so that cascade
// deletes apply on every pooled connection, not just the first one.
func Open(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
