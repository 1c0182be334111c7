package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/utils"
	"gorm.io/gorm"
)

var ErrTimesheetNotFound = errors.New("timesheet not found")

// TimesheetService provides business logic for timesheet operations.
type TimesheetService struct {
	timesheetRepo repository.TimesheetRepository
	employeeRepo  repository.EmployeeRepository
}

// NewTimesheetService creates a new TimesheetService.
func NewTimesheetService(timesheetRepo repository.TimesheetRepository, employeeRepo repository.EmployeeRepository) *TimesheetService {
	return &TimesheetService{
		timesheetRepo: timesheetRepo,
		employeeRepo:  employeeRepo,
	}
}

// CreateTimesheetInput represents a new work log entry.
type CreateTimesheetInput struct {
	EmployeeID  uint64
	Date        string
	HoursWorked *float64
	TaskDetails string
}

// Create records worked hours for an existing employee.
func (s *TimesheetService) Create(ctx context.Context, input CreateTimesheetInput) (*models.Timesheet, error) {
	if input.EmployeeID == 0 {
		return nil, required("employeeId")
	}
	date, err := parseRequiredDate("date", input.Date)
	if err != nil {
		return nil, err
	}
	if input.HoursWorked == nil {
		return nil, required("hoursWorked")
	}
	if err := checkHours(*input.HoursWorked); err != nil {
		return nil, err
	}
	details := strings.TrimSpace(input.TaskDetails)
	if details == "" {
		return nil, required("taskDetails")
	}

	if err := ensureEmployeeExists(ctx, s.employeeRepo, input.EmployeeID); err != nil {
		return nil, err
	}

	timesheet := &models.Timesheet{
		EmployeeID:  input.EmployeeID,
		Date:        date,
		HoursWorked: *input.HoursWorked,
		TaskDetails: details,
	}
	if err := s.timesheetRepo.Create(ctx, timesheet); err != nil {
		return nil, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return timesheet, nil
}

// List returns all timesheets, newest work date first.
func (s *TimesheetService) List(ctx context.Context) ([]models.Timesheet, error) {
	timesheets, err := s.timesheetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return timesheets, nil
}

// ListByEmployee returns the timesheets of one employee, newest first.
func (s *TimesheetService) ListByEmployee(ctx context.Context, employeeID uint64) ([]models.Timesheet, error) {
	timesheets, err := s.timesheetRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return timesheets, nil
}

// UpdateTimesheetInput holds the fields to change. Nil fields are kept.
type UpdateTimesheetInput struct {
	EmployeeID  *uint64
	Date        *string
	HoursWorked *float64
	TaskDetails *string
}

// Update applies a partial update to a timesheet.
func (s *TimesheetService) Update(ctx context.Context, id uint64, input UpdateTimesheetInput) (*models.Timesheet, error) {
	timesheet, err := s.timesheetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimesheetNotFound
		}
		return nil, fmt.Errorf("failed to find timesheet: %w", err)
	}

	if input.Date != nil {
		date, err := parseRequiredDate("date", *input.Date)
		if err != nil {
			return nil, err
		}
		timesheet.Date = date
	}
	if input.HoursWorked != nil {
		if err := checkHours(*input.HoursWorked); err != nil {
			return nil, err
		}
		timesheet.HoursWorked = *input.HoursWorked
	}
	if input.TaskDetails != nil {
		details := strings.TrimSpace(*input.TaskDetails)
		if details == "" {
			return nil, required("taskDetails")
		}
		timesheet.TaskDetails = details
	}
	if input.EmployeeID != nil && *input.EmployeeID != timesheet.EmployeeID {
		if *input.EmployeeID == 0 {
			return nil, required("employeeId")
		}
		if err := ensureEmployeeExists(ctx, s.employeeRepo, *input.EmployeeID); err != nil {
			return nil, err
		}
		timesheet.EmployeeID = *input.EmployeeID
	}

	if err := s.timesheetRepo.Update(ctx, timesheet); err != nil {
		return nil, fmt.Errorf("failed to update timesheet: %w", err)
	}

	return timesheet, nil
}

// Delete removes a timesheet.
func (s *TimesheetService) Delete(ctx context.Context, id uint64) error {
	if err := s.timesheetRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimesheetNotFound
		}
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	return nil
}

func checkHours(hours float64) error {
	if hours <= 0 {
		return invalid("hoursWorked", "hoursWorked must be a positive number")
	}
	return nil
}

func parseRequiredDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, required(field)
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, invalid(field, field+" must be a date in YYYY-MM-DD or RFC 3339 format")
	}
	return t, nil
}
