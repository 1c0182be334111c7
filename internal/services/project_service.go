package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectStatus = errors.New("status must be one of Not Started, In Progress, Completed")
	ErrProjectDateOrder     = errors.New("endDate must not be before startDate")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	employeeRepo repository.EmployeeRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, employeeRepo repository.EmployeeRepository) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	Status      string
	EmployeeID  uint64
}

// Create assigns a new project to an existing employee.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, required("name")
	}
	startDate, err := parseRequiredDate("startDate", input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseRequiredDate("endDate", input.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrProjectDateOrder
	}
	if strings.TrimSpace(input.Status) == "" {
		return nil, required("status")
	}
	status := models.ProjectStatus(strings.TrimSpace(input.Status))
	if !status.Valid() {
		return nil, ErrInvalidProjectStatus
	}
	if input.EmployeeID == 0 {
		return nil, required("employeeId")
	}

	if err := ensureEmployeeExists(ctx, s.employeeRepo, input.EmployeeID); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
		EmployeeID:  input.EmployeeID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.Get(ctx, project.ID)
}

// List returns all projects with their assigned employees.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get retrieves a project with its assigned employee.
func (s *ProjectService) Get(ctx context.Context, id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// UpdateProjectInput holds the fields to change. Nil fields are kept.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	StartDate   *string
	EndDate     *string
	Status      *string
	EmployeeID  *uint64
}

// Update applies a partial update to a project.
func (s *ProjectService) Update(ctx context.Context, id uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, required("name")
		}
		project.Name = name
	}
	if input.Description != nil {
		project.Description = strings.TrimSpace(*input.Description)
	}
	if input.StartDate != nil {
		if project.StartDate, err = parseRequiredDate("startDate", *input.StartDate); err != nil {
			return nil, err
		}
	}
	if input.EndDate != nil {
		if project.EndDate, err = parseRequiredDate("endDate", *input.EndDate); err != nil {
			return nil, err
		}
	}
	if project.EndDate.Before(project.StartDate) {
		return nil, ErrProjectDateOrder
	}
	if input.Status != nil {
		status := models.ProjectStatus(strings.TrimSpace(*input.Status))
		if !status.Valid() {
			return nil, ErrInvalidProjectStatus
		}
		project.Status = status
	}
	if input.EmployeeID != nil && *input.EmployeeID != project.EmployeeID {
		if *input.EmployeeID == 0 {
			return nil, required("employeeId")
		}
		if err := ensureEmployeeExists(ctx, s.employeeRepo, *input.EmployeeID); err != nil {
			return nil, err
		}
		project.EmployeeID = *input.EmployeeID
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id uint64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
