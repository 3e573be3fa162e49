// Package testhelpers provides database fixtures for tests: an in-memory
// sqlite instance for fast unit tests and a containerized postgres for
// integration tests.
package testhelpers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pulsefit/coach-backend/internal/database"
)

// SetupTestDatabase opens a per-test in-memory sqlite database with the full
// schema migrated. The database name is derived from the test name so
// parallel tests do not share state.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite test database")

	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	return db
}
