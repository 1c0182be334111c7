package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

// EmployeeDTO represents an employee in API responses
type EmployeeDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	MobileNo  string    `json:"mobileNo"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginEmployeeDTO is the minimal identity returned by login
type LoginEmployeeDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmployeeSummaryDTO is an employee embedded in another resource
type EmployeeSummaryDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees  []EmployeeDTO            `json:"employees"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// AuthResponse is returned by signup
type AuthResponse struct {
	Token    string      `json:"token"`
	Employee EmployeeDTO `json:"employee"`
}

// LoginResponse is returned by login
type LoginResponse struct {
	Token    string           `json:"token"`
	Employee LoginEmployeeDTO `json:"employee"`
}

// ToEmployeeDTO converts an Employee model to EmployeeDTO
func ToEmployeeDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:        employee.ID,
		Name:      employee.Name,
		Email:     employee.Email,
		MobileNo:  employee.MobileNo,
		Age:       employee.Age,
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

// ToLoginEmployeeDTO converts an Employee model to LoginEmployeeDTO
func ToLoginEmployeeDTO(employee models.Employee) LoginEmployeeDTO {
	return LoginEmployeeDTO{
		ID:    employee.ID,
		Name:  employee.Name,
		Email: employee.Email,
	}
}

// ToEmployeeSummaryDTO converts an Employee model to EmployeeSummaryDTO
func ToEmployeeSummaryDTO(employee models.Employee) EmployeeSummaryDTO {
	return EmployeeSummaryDTO{
		ID:        employee.ID,
		Name:      employee.Name,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
	}
}

// ToEmployeeListResponse converts one page of employees to EmployeeListResponse
func ToEmployeeListResponse(employees []models.Employee, pagination utils.PaginationResponse) EmployeeListResponse {
	items := make([]EmployeeDTO, len(employees))
	for i, employee := range employees {
		items[i] = ToEmployeeDTO(employee)
	}

	return EmployeeListResponse{
		Employees:  items,
		Pagination: pagination,
	}
}
