package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailTaken       = errors.New("email already exists")
	ErrMobileTaken      = errors.New("mobile number already exists")
	ErrInvalidSortField = errors.New("sortBy must be one of name, email, mobileNo, createdAt, id")
	ErrInvalidSortOrder = errors.New("sortOrder must be asc or desc")
)

// employeeSortColumns maps accepted sortBy values, lowercased, to columns.
var employeeSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"mobileno":  "mobile_no",
	"createdat": "created_at",
	"id":        "id",
}

// exportHeader is the first row of an employee CSV export.
var exportHeader = []string{"name", "email", "mobileNo"}

// ResolveEmployeeSort turns the listing parameters into a column ordering.
// filterBy "recent" and "oldest" order by creation time and "name" or
// "email" order by that field in sortOrder; any other value falls back to
// sortBy and sortOrder.
func ResolveEmployeeSort(filterBy, sortBy, sortOrder string) (repository.EmployeeSort, error) {
	var desc bool
	switch strings.ToLower(sortOrder) {
	case "asc":
	case "desc":
		desc = true
	default:
		return repository.EmployeeSort{}, ErrInvalidSortOrder
	}

	column, ok := employeeSortColumns[strings.ToLower(sortBy)]
	if !ok {
		return repository.EmployeeSort{}, ErrInvalidSortField
	}

	switch strings.ToLower(filterBy) {
	case "recent":
		return repository.EmployeeSort{Column: "created_at", Desc: true}, nil
	case "oldest":
		return repository.EmployeeSort{Column: "created_at", Desc: false}, nil
	case "name", "email":
		return repository.EmployeeSort{Column: strings.ToLower(filterBy), Desc: desc}, nil
	default:
		return repository.EmployeeSort{Column: column, Desc: desc}, nil
	}
}

// EmployeeService provides business logic for employee records.
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// EmployeeList is one page of employees with its pagination metadata.
type EmployeeList struct {
	Employees  []models.Employee
	Pagination utils.PaginationResponse
}

// List returns the page of employees selected by params.
func (s *EmployeeService) List(ctx context.Context, params utils.ListParams) (*EmployeeList, error) {
	sort, err := ResolveEmployeeSort(params.FilterBy, params.SortBy, params.SortOrder)
	if err != nil {
		return nil, err
	}

	employees, total, err := s.employeeRepo.List(ctx, repository.EmployeeFilter{
		Search:     params.Search,
		Sort:       sort,
		Pagination: params.Pagination,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return &EmployeeList{
		Employees:  employees,
		Pagination: utils.NewPaginationResponse(params.Pagination, total),
	}, nil
}

// Get retrieves an employee by ID.
func (s *EmployeeService) Get(ctx context.Context, id uint64) (*models.Employee, error) {
	return findEmployee(ctx, s.employeeRepo, id)
}

// CreateEmployeeInput holds the fields of an employee added by an
// administrator. Such records have no password and cannot log in.
type CreateEmployeeInput struct {
	Name     string
	Email    string
	MobileNo string
}

// Create adds an employee after checking email and mobile uniqueness.
func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*models.Employee, error) {
	contact, err := contactInput(input).normalize()
	if err != nil {
		return nil, err
	}

	if err := checkConflict(ctx, s.employeeRepo, contact.Email, contact.MobileNo, 0); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:     contact.Name,
		Email:    contact.Email,
		MobileNo: contact.MobileNo,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, writeError(ctx, s.employeeRepo, err, employee, "failed to create employee")
	}

	return employee, nil
}

// UpdateEmployeeInput holds the replaceable identity fields of an employee.
type UpdateEmployeeInput struct {
	Name     string
	Email    string
	MobileNo string
}

// Update replaces name, email and mobile number of an employee.
func (s *EmployeeService) Update(ctx context.Context, id uint64, input UpdateEmployeeInput) (*models.Employee, error) {
	contact, err := contactInput(input).normalize()
	if err != nil {
		return nil, err
	}

	employee, err := findEmployee(ctx, s.employeeRepo, id)
	if err != nil {
		return nil, err
	}

	if err := checkConflict(ctx, s.employeeRepo, contact.Email, contact.MobileNo, id); err != nil {
		return nil, err
	}

	employee.Name = contact.Name
	employee.Email = contact.Email
	employee.MobileNo = contact.MobileNo

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, writeError(ctx, s.employeeRepo, err, employee, "failed to update employee")
	}

	return employee, nil
}

// Delete removes an employee with its timesheets and projects.
func (s *EmployeeService) Delete(ctx context.Context, id uint64) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// Export writes every employee matching search as CSV to w.
func (s *EmployeeService) Export(ctx context.Context, search string, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	err := s.employeeRepo.Each(ctx, strings.TrimSpace(search), func(e models.Employee) error {
		return cw.Write([]string{e.Name, e.Email, e.MobileNo})
	})
	if err != nil {
		return fmt.Errorf("failed to export employees: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func findEmployee(ctx context.Context, repo repository.EmployeeRepository, id uint64) (*models.Employee, error) {
	employee, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

func ensureEmployeeExists(ctx context.Context, repo repository.EmployeeRepository, id uint64) error {
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return ErrEmployeeNotFound
	}
	return nil
}

// checkConflict reports ErrEmailTaken or ErrMobileTaken when another
// employee than excludeID already holds email or mobileNo.
func checkConflict(ctx context.Context, repo repository.EmployeeRepository, email, mobileNo string, excludeID uint64) error {
	existing, err := repo.FindConflict(ctx, email, mobileNo, excludeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check uniqueness: %w", err)
	}

	if email != "" && strings.EqualFold(existing.Email, email) {
		return ErrEmailTaken
	}
	return ErrMobileTaken
}

// writeError maps a failed employee write. A unique index violation that
// slipped past checkConflict under concurrent writes is reported the same
// way as the pre-check.
func writeError(ctx context.Context, repo repository.EmployeeRepository, err error, employee *models.Employee, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if conflict := checkConflict(ctx, repo, employee.Email, employee.MobileNo, employee.ID); conflict != nil {
			return conflict
		}
		return ErrEmailTaken
	}
	return fmt.Errorf("%s: %w", msg, err)
}
