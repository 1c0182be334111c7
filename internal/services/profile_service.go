package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

var (
	ErrUnsupportedImageType = errors.New("profile image must be a jpg, jpeg, png, gif or webp file")
	ErrImageTooLarge        = errors.New("profile image is too large")
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ProfileService provides business logic for the profile page of an
// employee.
type ProfileService struct {
	employeeRepo  repository.EmployeeRepository
	uploadDir     string
	maxImageBytes int64
}

// NewProfileService creates a new ProfileService storing images under
// uploadDir.
func NewProfileService(employeeRepo repository.EmployeeRepository, uploadDir string, maxImageBytes int64) *ProfileService {
	return &ProfileService{
		employeeRepo:  employeeRepo,
		uploadDir:     uploadDir,
		maxImageBytes: maxImageBytes,
	}
}

// Get retrieves the profile of an employee.
func (s *ProfileService) Get(ctx context.Context, id uint64) (*models.Employee, error) {
	return findEmployee(ctx, s.employeeRepo, id)
}

// ImageTarget is where an uploaded profile image is written and the path
// under which it is served.
type ImageTarget struct {
	DiskPath   string
	PublicPath string
}

// Discard removes the stored image, for updates that did not go through.
func (t *ImageTarget) Discard() error {
	if err := os.Remove(t.DiskPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove profile image: %w", err)
	}
	return nil
}

// PrepareImage checks an upload and picks a unique location for it.
func (s *ProfileService) PrepareImage(ctx context.Context, id uint64, filename string, size int64) (*ImageTarget, error) {
	if !allowedImageExtensions[strings.ToLower(filepath.Ext(filename))] {
		return nil, ErrUnsupportedImageType
	}
	if size > s.maxImageBytes {
		return nil, ErrImageTooLarge
	}

	employee, err := findEmployee(ctx, s.employeeRepo, id)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := utils.ProfileImageFileName(employee.Name, filename)
	return &ImageTarget{
		DiskPath:   filepath.Join(s.uploadDir, name),
		PublicPath: path.Join(constants.UploadsURLPrefix, name),
	}, nil
}

// UpdateProfileInput holds the profile fields to change. Nil fields are
// kept.
type UpdateProfileInput struct {
	FirstName        *string
	LastName         *string
	MobileNo         *string
	Address          *string
	Department       *string
	Designation      *string
	DateOfJoining    *string
	EmergencyContact *string
	BloodGroup       *string
	LinkedIn         *string
	ProfileImage     *string
}

// Update applies a partial update to an employee profile.
func (s *ProfileService) Update(ctx context.Context, id uint64, input UpdateProfileInput) (*models.Employee, error) {
	employee, err := findEmployee(ctx, s.employeeRepo, id)
	if err != nil {
		return nil, err
	}

	if input.MobileNo != nil {
		mobileNo := strings.TrimSpace(*input.MobileNo)
		if mobileNo == "" {
			return nil, required("mobileNo")
		}
		if err := checkConflict(ctx, s.employeeRepo, "", mobileNo, id); err != nil {
			return nil, err
		}
		employee.MobileNo = mobileNo
	}

	if input.DateOfJoining != nil {
		joined, err := parseOptionalDate("dateOfJoining", *input.DateOfJoining)
		if err != nil {
			return nil, err
		}
		employee.DateOfJoining = joined
	}

	setTrimmed(&employee.FirstName, input.FirstName)
	setTrimmed(&employee.LastName, input.LastName)
	setTrimmed(&employee.Address, input.Address)
	setTrimmed(&employee.Department, input.Department)
	setTrimmed(&employee.Designation, input.Designation)
	setTrimmed(&employee.EmergencyContact, input.EmergencyContact)
	setTrimmed(&employee.BloodGroup, input.BloodGroup)
	setTrimmed(&employee.LinkedIn, input.LinkedIn)
	setTrimmed(&employee.ProfileImage, input.ProfileImage)

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, writeError(ctx, s.employeeRepo, err, employee, "failed to update profile")
	}

	return employee, nil
}

func setTrimmed(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

// parseOptionalDate clears the date on an empty value.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseRequiredDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
