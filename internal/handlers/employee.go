package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
	now             func() time.Time
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		now:             time.Now,
	}
}

type employeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	MobileNo string `json:"mobileNo" binding:"required"`
}

// ListEmployees returns one page of employees.
// Query: page, limit, sortBy, sortOrder, search, filterBy
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	params, err := utils.GetListParams(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result, err := h.employeeService.List(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToEmployeeListResponse(result.Employees, result.Pagination)))
}

// ExportEmployees streams the employees matching search as a CSV download.
func (h *EmployeeHandler) ExportEmployees(c *gin.Context) {
	filename := utils.ExportFileName(h.now())
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	err := h.employeeService.Export(c.Request.Context(), c.Query("search"), c.Writer)
	if err == nil {
		return
	}

	if c.Writer.Written() {
		// The body is partly sent; the truncated download is all we can do.
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.Writer.Header().Del("Content-Type")
	c.Writer.Header().Del("Content-Disposition")
	respondServiceError(c, err)
}

// CreateEmployee adds an employee without login credentials.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), services.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		MobileNo: req.MobileNo,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage(dto.ToEmployeeDTO(*employee), "Employee created successfully"))
}

// GetEmployee returns a single employee.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToEmployeeDTO(*employee)))
}

// UpdateEmployee replaces name, email and mobile number.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, services.UpdateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		MobileNo: req.MobileNo,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage(dto.ToEmployeeDTO(*employee), "Employee updated successfully"))
}

// DeleteEmployee removes an employee.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Employee deleted successfully"))
}
