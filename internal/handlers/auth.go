package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new employee and returns a token for it.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		MobileNo string `json:"mobileNo" binding:"required"`
		Age      *int   `json:"age" binding:"omitempty,min=0"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		MobileNo: req.MobileNo,
		Age:      req.Age,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage(dto.AuthResponse{
		Token:    result.Token,
		Employee: dto.ToEmployeeDTO(*result.Employee),
	}, "Employee registered successfully"))
}

// Login authenticates an employee and issues a token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.LoginResponse{
		Token:    result.Token,
		Employee: dto.ToLoginEmployeeDTO(*result.Employee),
	}))
}

// GetCurrentEmployee returns the authenticated employee.
func (h *AuthHandler) GetCurrentEmployee(c *gin.Context) {
	employeeID, exists := middleware.GetEmployeeID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	employee, err := h.authService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToEmployeeDTO(*employee)))
}
