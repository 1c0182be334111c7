package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
)

// TimesheetDTO represents a timesheet in API responses
type TimesheetDTO struct {
	ID          uint64    `json:"id"`
	EmployeeID  uint64    `json:"employeeId"`
	Date        time.Time `json:"date"`
	HoursWorked float64   `json:"hoursWorked"`
	TaskDetails string    `json:"taskDetails"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToTimesheetDTO converts a Timesheet model to TimesheetDTO
func ToTimesheetDTO(timesheet models.Timesheet) TimesheetDTO {
	return TimesheetDTO{
		ID:          timesheet.ID,
		EmployeeID:  timesheet.EmployeeID,
		Date:        timesheet.Date,
		HoursWorked: timesheet.HoursWorked,
		TaskDetails: timesheet.TaskDetails,
		CreatedAt:   timesheet.CreatedAt,
		UpdatedAt:   timesheet.UpdatedAt,
	}
}

// ToTimesheetDTOs converts a slice of timesheets
func ToTimesheetDTOs(timesheets []models.Timesheet) []TimesheetDTO {
	items := make([]TimesheetDTO, len(timesheets))
	for i, timesheet := range timesheets {
		items[i] = ToTimesheetDTO(timesheet)
	}
	return items
}
