package repository

import (
	"context"

	"github.com/yukikurage/employee-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTimesheetRepository is a GORM implementation of TimesheetRepository
type GormTimesheetRepository struct {
	db *gorm.DB
}

// NewTimesheetRepository creates a new TimesheetRepository
func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &GormTimesheetRepository{db: db}
}

func (r *GormTimesheetRepository) Create(ctx context.Context, timesheet *models.Timesheet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(timesheet).Error
}

func (r *GormTimesheetRepository) FindByID(ctx context.Context, id uint64) (*models.Timesheet, error) {
	var timesheet models.Timesheet
	if err := r.db.WithContext(ctx).First(&timesheet, id).Error; err != nil {
		return nil, err
	}
	return &timesheet, nil
}

// List returns every timesheet, most recent work date first
func (r *GormTimesheetRepository) List(ctx context.Context) ([]models.Timesheet, error) {
	timesheets := []models.Timesheet{}
	if err := r.db.WithContext(ctx).Order("date DESC").Order("id DESC").Find(&timesheets).Error; err != nil {
		return nil, err
	}
	return timesheets, nil
}

// ListByEmployee returns the timesheets of one employee, most recent first
func (r *GormTimesheetRepository) ListByEmployee(ctx context.Context, employeeID uint64) ([]models.Timesheet, error) {
	timesheets := []models.Timesheet{}
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Order("id DESC").
		Find(&timesheets).Error
	if err != nil {
		return nil, err
	}
	return timesheets, nil
}

func (r *GormTimesheetRepository) Update(ctx context.Context, timesheet *models.Timesheet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(timesheet).Error
}

func (r *GormTimesheetRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&models.Timesheet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
