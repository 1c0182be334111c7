package models

import (
	"time"
)

type Employee struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	MobileNo     string `gorm:"type:varchar(32);uniqueIndex;not null" json:"mobileNo"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null;default:''" json:"-"`
	Age          *int   `json:"age,omitempty"`

	FirstName        string     `gorm:"type:varchar(255)" json:"firstName"`
	LastName         string     `gorm:"type:varchar(255)" json:"lastName"`
	Address          string     `gorm:"type:text" json:"address"`
	Department       string     `gorm:"type:varchar(255)" json:"department"`
	Designation      string     `gorm:"type:varchar(255)" json:"designation"`
	DateOfJoining    *time.Time `json:"dateOfJoining"`
	EmergencyContact string     `gorm:"type:varchar(64)" json:"emergencyContact"`
	BloodGroup       string     `gorm:"type:varchar(8)" json:"bloodGroup"`
	LinkedIn         string     `gorm:"type:varchar(255)" json:"linkedIn"`
	ProfileImage     string     `gorm:"type:varchar(512)" json:"profileImage"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Timesheets []Timesheet `gorm:"foreignKey:EmployeeID" json:"-"`
	Projects   []Project   `gorm:"foreignKey:EmployeeID" json:"-"`
}

// HasPassword reports whether the employee can log in with a password.
// Records created by an administrator carry an empty hash.
func (e *Employee) HasPassword() bool {
	return e.PasswordHash != ""
}
