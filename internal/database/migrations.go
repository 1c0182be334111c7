package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes that gorm tags cannot express on
// their own. Existing indexes are left untouched.
func AddIndexes(db *gorm.DB, log *zap.Logger) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Timesheets are listed per employee, newest first
		{"timesheets", "idx_timesheets_employee_date", "employee_id, date"},

		// Projects are commonly filtered by owner and status
		{"projects", "idx_projects_employee_status", "employee_id, status"},

		// Listing with filterBy=recent|oldest sorts by creation time
		{"employees", "idx_employees_created_id", "created_at, id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			log.Debug("index already exists", zap.String("index", idx.name))
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info("created index",
			zap.String("index", idx.name),
			zap.String("table", idx.table),
			zap.String("columns", idx.columns),
		)
	}

	return nil
}
