package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aqualog/aqualog/internal/database"
	"github.com/aqualog/aqualog/internal/models"
)

// testDB opens a fresh migrated SQLite database in a per-test temp dir.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "aqualog.db"))
	require.NoError(t, err)
	return db
}

func mustAddTank(t *testing.T, repo *TankRepository, name string) *models.Tank {
	t.Helper()

	tank, err := repo.Add(name, nil, "")
	require.NoError(t, err)
	require.NotZero(t, tank.ID)
	return tank
}

func count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
