package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
)

// ProfileDTO is the profile page of an employee. It never carries the
// password hash.
type ProfileDTO struct {
	ID               uint64     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	MobileNo         string     `json:"mobileNo"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Address          string     `json:"address"`
	Department       string     `json:"department"`
	Designation      string     `json:"designation"`
	DateOfJoining    *time.Time `json:"dateOfJoining"`
	EmergencyContact string     `json:"emergencyContact"`
	BloodGroup       string     `json:"bloodGroup"`
	LinkedIn         string     `json:"linkedIn"`
	ProfileImage     string     `json:"profileImage"`
}

// ToProfileDTO converts an Employee model to ProfileDTO
func ToProfileDTO(employee models.Employee) ProfileDTO {
	return ProfileDTO{
		ID:               employee.ID,
		Name:             employee.Name,
		Email:            employee.Email,
		MobileNo:         employee.MobileNo,
		FirstName:        employee.FirstName,
		LastName:         employee.LastName,
		Address:          employee.Address,
		Department:       employee.Department,
		Designation:      employee.Designation,
		DateOfJoining:    employee.DateOfJoining,
		EmergencyContact: employee.EmergencyContact,
		BloodGroup:       employee.BloodGroup,
		LinkedIn:         employee.LinkedIn,
		ProfileImage:     employee.ProfileImage,
	}
}
