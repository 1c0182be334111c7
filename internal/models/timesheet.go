package models

import "time"

type Timesheet struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	EmployeeID  uint64    `gorm:"not null;index" json:"employeeId"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	HoursWorked float64   `gorm:"not null" json:"hoursWorked"`
	TaskDetails string    `gorm:"type:text;not null" json:"taskDetails"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}
