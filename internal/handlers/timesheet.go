package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	"github.com/yukikurage/employee-management-api/internal/services"
)

type TimesheetHandler struct {
	timesheetService *services.TimesheetService
}

func NewTimesheetHandler(timesheetService *services.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{
		timesheetService: timesheetService,
	}
}

// CreateTimesheet records worked hours for an employee.
func (h *TimesheetHandler) CreateTimesheet(c *gin.Context) {
	type CreateTimesheetRequest struct {
		EmployeeID  uint64   `json:"employeeId" binding:"required"`
		Date        string   `json:"date" binding:"required"`
		HoursWorked *float64 `json:"hoursWorked" binding:"required"`
		TaskDetails string   `json:"taskDetails" binding:"required"`
	}

	var req CreateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	timesheet, err := h.timesheetService.Create(c.Request.Context(), services.CreateTimesheetInput{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		HoursWorked: req.HoursWorked,
		TaskDetails: req.TaskDetails,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage(dto.ToTimesheetDTO(*timesheet), "Timesheet created successfully"))
}

// ListTimesheets returns every timesheet, newest first.
func (h *TimesheetHandler) ListTimesheets(c *gin.Context) {
	timesheets, err := h.timesheetService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTimesheetDTOs(timesheets)))
}

// ListEmployeeTimesheets returns the timesheets of the employee named by
// the :id path parameter.
func (h *TimesheetHandler) ListEmployeeTimesheets(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	timesheets, err := h.timesheetService.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTimesheetDTOs(timesheets)))
}

// UpdateTimesheet applies a partial update.
func (h *TimesheetHandler) UpdateTimesheet(c *gin.Context) {
	type UpdateTimesheetRequest struct {
		EmployeeID  *uint64  `json:"employeeId"`
		Date        *string  `json:"date"`
		HoursWorked *float64 `json:"hoursWorked"`
		TaskDetails *string  `json:"taskDetails"`
	}

	id, ok := parseIDParam(c, "id", "timesheet")
	if !ok {
		return
	}

	var req UpdateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	timesheet, err := h.timesheetService.Update(c.Request.Context(), id, services.UpdateTimesheetInput{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		HoursWorked: req.HoursWorked,
		TaskDetails: req.TaskDetails,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage(dto.ToTimesheetDTO(*timesheet), "Timesheet updated successfully"))
}

// DeleteTimesheet removes a timesheet.
func (h *TimesheetHandler) DeleteTimesheet(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "timesheet")
	if !ok {
		return
	}

	if err := h.timesheetService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Timesheet deleted successfully"))
}
