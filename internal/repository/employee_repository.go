package repository

import (
	"context"

	"github.com/yukikurage/employee-management-api/internal/database"
	"github.com/yukikurage/employee-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const employeesTable = "employees"

// searchColumns are matched by the free-text search of the employee list
var searchColumns = []string{"name", "email", "mobile_no"}

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create creates a new employee
func (r *GormEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(employee).Error
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail finds an employee by email
func (r *GormEmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindConflict finds another employee already holding email or mobileNo
func (r *GormEmployeeRepository) FindConflict(ctx context.Context, email, mobileNo string, excludeID uint64) (*models.Employee, error) {
	if email == "" && mobileNo == "" {
		return nil, gorm.ErrRecordNotFound
	}

	query := r.db.WithContext(ctx).Model(&models.Employee{})
	switch {
	case email != "" && mobileNo != "":
		query = query.Where("(email = ? OR mobile_no = ?)", email, mobileNo)
	case email != "":
		query = query.Where("email = ?", email)
	default:
		query = query.Where("mobile_no = ?", mobileNo)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var employee models.Employee
	if err := query.First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// List retrieves employees with search, ordering and pagination
func (r *GormEmployeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]models.Employee, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Scopes(database.ContainsFold(filter.Search, searchColumns...))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	employees := []models.Employee{}
	if total == 0 || int64(filter.Pagination.Offset) >= total {
		return employees, total, nil
	}

	err := query.
		Scopes(
			database.OrderBy(employeesTable, filter.Sort.Column, filter.Sort.Desc),
			database.Paginate(filter.Pagination),
		).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Each streams matching employees ordered by name
func (r *GormEmployeeRepository) Each(ctx context.Context, search string, fn func(models.Employee) error) error {
	rows, err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Scopes(
			database.ContainsFold(search, searchColumns...),
			database.OrderBy(employeesTable, "name", false),
		).
		Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var employee models.Employee
		if err := r.db.ScanRows(rows, &employee); err != nil {
			return err
		}
		if err := fn(employee); err != nil {
			return err
		}
	}

	return rows.Err()
}

// Update updates an employee
func (r *GormEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(employee).Error
}

// Delete deletes an employee and its dependent rows in a transaction
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Timesheet{}).Error; err != nil {
			return err
		}

		if err := tx.Where("employee_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Employee{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// Exists reports whether an employee exists
func (r *GormEmployeeRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
