package config

import (
	"os"
	"path/filepath"
)

const (
	DB_NAME = "aqualog.db"
)

func DBPath() string {
	if dbPath := os.Getenv("AQUALOG_DB_PATH"); dbPath != "" {
		return dbPath
	}

	return filepath.Join(DataDir(), DB_NAME)
}
