package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/employee-management-api/internal/auth"
	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	tokens       *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(employeeRepo repository.EmployeeRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		tokens:       tokens,
	}
}

// AuthResult is an employee together with a freshly issued bearer token.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Employee  *models.Employee
}

// SignupInput represents the required information to register an employee.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	MobileNo string
	Age      *int
}

// Signup creates an employee with a hashed password and logs it in.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	contact, err := contactInput{
		Name:     input.Name,
		Email:    input.Email,
		MobileNo: input.MobileNo,
	}.normalize()
	if err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, required("password")
	}
	if len(input.Password) > constants.MaxPasswordBytes {
		return nil, invalid("password", fmt.Sprintf("password must be at most %d bytes", constants.MaxPasswordBytes))
	}
	if input.Age != nil && *input.Age < 0 {
		return nil, invalid("age", "age must not be negative")
	}

	if err := checkConflict(ctx, s.employeeRepo, contact.Email, contact.MobileNo, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	employee := &models.Employee{
		Name:         contact.Name,
		Email:        contact.Email,
		MobileNo:     contact.MobileNo,
		PasswordHash: string(hashedPassword),
		Age:          input.Age,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, writeError(ctx, s.employeeRepo, err, employee, "failed to create employee")
	}

	return s.issue(employee)
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a token. Unknown emails, records
// without a password and wrong passwords all fail the same way.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	employee, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	if !employee.HasPassword() {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(employee)
}

// GetEmployee retrieves the employee a token was issued for.
func (s *AuthService) GetEmployee(ctx context.Context, id uint64) (*models.Employee, error) {
	return findEmployee(ctx, s.employeeRepo, id)
}

func (s *AuthService) issue(employee *models.Employee) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(employee.ID)
	if err != nil {
		return nil, ErrFailedToIssueToken
	}

	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  employee,
	}, nil
}
