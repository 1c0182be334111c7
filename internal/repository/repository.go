package repository

import (
	"context"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

// EmployeeSort is a resolved ordering over a whitelisted employees column.
type EmployeeSort struct {
	Column string
	Desc   bool
}

// EmployeeFilter holds search, ordering and pagination for listing employees
type EmployeeFilter struct {
	Search     string
	Sort       EmployeeSort
	Pagination utils.PaginationParams
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, employee *models.Employee) error

	// FindByID finds an employee by ID
	FindByID(ctx context.Context, id uint64) (*models.Employee, error)

	// FindByEmail finds an employee by email
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)

	// FindConflict returns an employee other than excludeID that already uses
	// email or mobileNo. Empty values are not compared.
	FindConflict(ctx context.Context, email, mobileNo string, excludeID uint64) (*models.Employee, error)

	// List retrieves one page of employees and the total count of rows
	// matching the search
	List(ctx context.Context, filter EmployeeFilter) ([]models.Employee, int64, error)

	// Each streams every employee matching search, ordered by name, to fn
	Each(ctx context.Context, search string, fn func(models.Employee) error) error

	// Update saves all columns of an employee
	Update(ctx context.Context, employee *models.Employee) error

	// Delete deletes an employee together with its timesheets and projects
	Delete(ctx context.Context, id uint64) error

	// Exists reports whether an employee with id exists
	Exists(ctx context.Context, id uint64) (bool, error)
}

// TimesheetRepository defines the interface for timesheet data access
type TimesheetRepository interface {
	Create(ctx context.Context, timesheet *models.Timesheet) error
	FindByID(ctx context.Context, id uint64) (*models.Timesheet, error)
	List(ctx context.Context) ([]models.Timesheet, error)
	ListByEmployee(ctx context.Context, employeeID uint64) ([]models.Timesheet, error)
	Update(ctx context.Context, timesheet *models.Timesheet) error
	Delete(ctx context.Context, id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error

	// FindByID finds a project with its employee preloaded
	FindByID(ctx context.Context, id uint64) (*models.Project, error)

	// List returns all projects with their employees preloaded
	List(ctx context.Context) ([]models.Project, error)

	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint64) error
}
