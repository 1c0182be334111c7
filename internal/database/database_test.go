package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/yukikurage/employee-management-api/internal/config"
	"github.com/yukikurage/employee-management-api/internal/models"
)

func TestConnectAndMigrate(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	}
	log := zaptest.NewLogger(t)

	db, err := Connect(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	require.NoError(t, Migrate(db, log))
	// A second run finds every index in place.
	require.NoError(t, Migrate(db, log))

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&models.Employee{}))
	assert.True(t, migrator.HasIndex("timesheets", "idx_timesheets_employee_date"))
	assert.True(t, migrator.HasIndex("projects", "idx_projects_employee_status"))
	assert.True(t, migrator.HasIndex("employees", "idx_employees_created_id"))

	assert.NoError(t, Ping(db))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDialectorFor(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres", "sqlite"} {
		dialector, err := dialectorFor(&config.Config{DBDriver: driver, SQLitePath: "x.db"})
		require.NoError(t, err)
		assert.Equal(t, driver, dialector.Name())
	}
}
