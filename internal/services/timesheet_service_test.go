package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/testutil"
)

type TimesheetServiceTestSuite struct {
	suite.Suite
	service  *TimesheetService
	employee *models.Employee
	ctx      context.Context
}

func (suite *TimesheetServiceTestSuite) SetupTest() {
	db := testutil.NewDB(suite.T())
	employeeRepo := repository.NewEmployeeRepository(db)
	suite.service = NewTimesheetService(repository.NewTimesheetRepository(db), employeeRepo)
	suite.ctx = context.Background()

	suite.employee = &models.Employee{Name: "Ann", Email: "ann@example.com", MobileNo: "111"}
	suite.Require().NoError(employeeRepo.Create(suite.ctx, suite.employee))
}

func hours(h float64) *float64 {
	return &h
}

func (suite *TimesheetServiceTestSuite) createTimesheet(date string, h float64) *models.Timesheet {
	timesheet, err := suite.service.Create(suite.ctx, CreateTimesheetInput{
		EmployeeID:  suite.employee.ID,
		Date:        date,
		HoursWorked: hours(h),
		TaskDetails: "reviews",
	})
	suite.Require().NoError(err)
	return timesheet
}

func (suite *TimesheetServiceTestSuite) TestCreate() {
	timesheet := suite.createTimesheet("2024-03-04", 7.5)

	suite.NotZero(timesheet.ID)
	suite.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), timesheet.Date)
	suite.Equal(7.5, timesheet.HoursWorked)
}

func (suite *TimesheetServiceTestSuite) TestCreate_Validation() {
	tests := []struct {
		name  string
		input CreateTimesheetInput
	}{
		{"missing employee", CreateTimesheetInput{Date: "2024-03-04", HoursWorked: hours(1), TaskDetails: "x"}},
		{"missing date", CreateTimesheetInput{EmployeeID: suite.employee.ID, HoursWorked: hours(1), TaskDetails: "x"}},
		{"bad date", CreateTimesheetInput{EmployeeID: suite.employee.ID, Date: "04/03/2024", HoursWorked: hours(1), TaskDetails: "x"}},
		{"missing hours", CreateTimesheetInput{EmployeeID: suite.employee.ID, Date: "2024-03-04", TaskDetails: "x"}},
		{"zero hours", CreateTimesheetInput{EmployeeID: suite.employee.ID, Date: "2024-03-04", HoursWorked: hours(0), TaskDetails: "x"}},
		{"negative hours", CreateTimesheetInput{EmployeeID: suite.employee.ID, Date: "2024-03-04", HoursWorked: hours(-2), TaskDetails: "x"}},
		{"missing details", CreateTimesheetInput{EmployeeID: suite.employee.ID, Date: "2024-03-04", HoursWorked: hours(1), TaskDetails: "  "}},
	}

	for _, tt := range tests {
		_, err := suite.service.Create(suite.ctx, tt.input)
		var verr *ValidationError
		suite.ErrorAs(err, &verr, tt.name)
	}
}

func (suite *TimesheetServiceTestSuite) TestCreate_UnknownEmployee() {
	_, err := suite.service.Create(suite.ctx, CreateTimesheetInput{
		EmployeeID:  suite.employee.ID + 100,
		Date:        "2024-03-04",
		HoursWorked: hours(1),
		TaskDetails: "x",
	})
	suite.ErrorIs(err, ErrEmployeeNotFound)
}

func (suite *TimesheetServiceTestSuite) TestListOrdersByDateDescending() {
	suite.createTimesheet("2024-03-01", 1)
	suite.createTimesheet("2024-03-03", 3)
	suite.createTimesheet("2024-03-02", 2)

	all, err := suite.service.List(suite.ctx)
	suite.Require().NoError(err)
	byEmployee, err := suite.service.ListByEmployee(suite.ctx, suite.employee.ID)
	suite.Require().NoError(err)

	for _, list := range [][]models.Timesheet{all, byEmployee} {
		suite.Require().Len(list, 3)
		suite.Equal(3.0, list[0].HoursWorked)
		suite.Equal(2.0, list[1].HoursWorked)
		suite.Equal(1.0, list[2].HoursWorked)
	}

	none, err := suite.service.ListByEmployee(suite.ctx, 9999)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *TimesheetServiceTestSuite) TestUpdate_Partial() {
	timesheet := suite.createTimesheet("2024-03-01", 1)
	details := "deploy"

	updated, err := suite.service.Update(suite.ctx, timesheet.ID, UpdateTimesheetInput{TaskDetails: &details})
	suite.Require().NoError(err)
	suite.Equal("deploy", updated.TaskDetails)
	suite.Equal(1.0, updated.HoursWorked)

	_, err = suite.service.Update(suite.ctx, timesheet.ID, UpdateTimesheetInput{HoursWorked: hours(0)})
	var verr *ValidationError
	suite.ErrorAs(err, &verr)

	missing := suite.employee.ID + 100
	_, err = suite.service.Update(suite.ctx, timesheet.ID, UpdateTimesheetInput{EmployeeID: &missing})
	suite.ErrorIs(err, ErrEmployeeNotFound)

	_, err = suite.service.Update(suite.ctx, timesheet.ID+100, UpdateTimesheetInput{TaskDetails: &details})
	suite.ErrorIs(err, ErrTimesheetNotFound)
}

func (suite *TimesheetServiceTestSuite) TestDelete() {
	timesheet := suite.createTimesheet("2024-03-01", 1)

	suite.Require().NoError(suite.service.Delete(suite.ctx, timesheet.ID))
	suite.ErrorIs(suite.service.Delete(suite.ctx, timesheet.ID), ErrTimesheetNotFound)
}

func TestTimesheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimesheetServiceTestSuite))
}
