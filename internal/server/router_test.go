package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/yukikurage/employee-management-api/internal/auth"
	"github.com/yukikurage/employee-management-api/internal/config"
	"github.com/yukikurage/employee-management-api/internal/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type RouterTestSuite struct {
	suite.Suite
	router    *gin.Engine
	tokens    *auth.TokenManager
	now       time.Time
	uploadDir string
	token     string
	selfID    uint64
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.now = time.Now()
	tokens, err := auth.NewTokenManager("router-secret", time.Hour, auth.WithClock(func() time.Time {
		return suite.now
	}))
	suite.Require().NoError(err)
	suite.tokens = tokens
	suite.uploadDir = suite.T().TempDir()

	suite.router = NewRouter(Dependencies{
		Config: &config.Config{
			UploadDir:      suite.uploadDir,
			MaxUploadBytes: 1 << 20,
			CORSOrigins:    []string{"*"},
		},
		DB:     testutil.NewDB(suite.T()),
		Logger: zap.NewNop(),
		Tokens: tokens,
	})

	suite.token, suite.selfID = suite.signup("Self", "self@example.com", "9000000000")
}

func (suite *RouterTestSuite) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (suite *RouterTestSuite) signup(name, email, mobile string) (string, uint64) {
	w, env := suite.do(http.MethodPost, "/api/employees/signup", "", map[string]interface{}{
		"name": name, "email": email, "password": "p", "mobileNo": mobile,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		Token    string `json:"token"`
		Employee struct {
			ID    uint64 `json:"id"`
			Email string `json:"email"`
		} `json:"employee"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	return data.Token, data.Employee.ID
}

func (suite *RouterTestSuite) TestSignupLoginRoundTrip() {
	w, env := suite.do(http.MethodPost, "/api/employees/signup", "", map[string]string{
		"name": "A", "email": "a@x.com", "password": "p", "mobileNo": "1111111111",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	suite.True(env.Success)

	var signup struct {
		Token    string `json:"token"`
		Employee struct {
			ID    uint64 `json:"id"`
			Email string `json:"email"`
		} `json:"employee"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &signup))
	suite.NotEmpty(signup.Token)
	suite.Equal("a@x.com", signup.Employee.Email)
	suite.NotContains(string(env.Data), "password")

	w, env = suite.do(http.MethodPost, "/api/employees/login", "", map[string]string{
		"email": "a@x.com", "password": "p",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var login struct {
		Token    string                 `json:"token"`
		Employee map[string]interface{} `json:"employee"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &login))
	suite.ElementsMatch([]string{"id", "name", "email"}, keys(login.Employee))

	claims, err := suite.tokens.Parse(login.Token)
	suite.Require().NoError(err)
	suite.Equal(signup.Employee.ID, claims.EmployeeID)
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func (suite *RouterTestSuite) TestLoginFailure() {
	w, env := suite.do(http.MethodPost, "/api/employees/login", "", map[string]string{
		"email": "self@example.com", "password": "wrong",
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(env.Success)
	suite.Equal("Invalid credentials", env.Message)
}

func (suite *RouterTestSuite) TestProtectedRoutesRequireToken() {
	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/employees"},
		{http.MethodGet, "/api/employees/me"},
		{http.MethodGet, "/api/employees/export"},
		{http.MethodPost, "/api/employees"},
		{http.MethodGet, "/api/timesheets"},
		{http.MethodPost, "/api/projects"},
		{http.MethodGet, fmt.Sprintf("/api/profile/%d", suite.selfID)},
	}

	for _, p := range paths {
		w, env := suite.do(p.method, p.path, "", nil)
		suite.Equal(http.StatusUnauthorized, w.Code, p.path)
		suite.False(env.Success, p.path)
		suite.Empty(env.Data, p.path)
	}
}

func (suite *RouterTestSuite) TestExpiredTokenIsRejected() {
	suite.now = suite.now.Add(61 * time.Minute)

	w, env := suite.do(http.MethodGet, "/api/employees", suite.token, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("UNAUTHORIZED", env.Code)
}

func (suite *RouterTestSuite) TestEmployeeList() {
	suite.signup("Jessica", "jess@example.com", "9000000001")
	suite.signup("Bob", "bob@example.com", "9000000002")

	w, env := suite.do(http.MethodGet, "/api/employees?search=JES&limit=2", suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var list struct {
		Employees []struct {
			Name string `json:"name"`
		} `json:"employees"`
		Pagination struct {
			Total       int64 `json:"total"`
			Pages       int   `json:"pages"`
			CurrentPage int   `json:"currentPage"`
			Limit       int   `json:"limit"`
		} `json:"pagination"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &list))
	suite.Require().Len(list.Employees, 1)
	suite.Equal("Jessica", list.Employees[0].Name)
	suite.Equal(int64(1), list.Pagination.Total)
	suite.Equal(1, list.Pagination.Pages)
	suite.Equal(2, list.Pagination.Limit)

	for _, query := range []string{"page=0", "limit=abc", "limit=1000", "sortBy=password", "sortOrder=sideways"} {
		w, env := suite.do(http.MethodGet, "/api/employees?"+query, suite.token, nil)
		suite.Equal(http.StatusBadRequest, w.Code, query)
		suite.Equal("INVALID_INPUT", env.Code, query)
	}
}

func (suite *RouterTestSuite) TestEmployeeCRUD() {
	w, env := suite.do(http.MethodPost, "/api/employees", suite.token, map[string]string{
		"name": "Ann", "email": "ann@example.com", "mobileNo": "555",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	var created struct {
		ID uint64 `json:"id"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &created))

	w, env = suite.do(http.MethodPost, "/api/employees", suite.token, map[string]string{
		"name": "Dup", "email": "ann@example.com", "mobileNo": "556",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("CONFLICT", env.Code)

	w, env = suite.do(http.MethodPost, "/api/employees", suite.token, map[string]string{"name": "NoEmail"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("INVALID_INPUT", env.Code)

	path := fmt.Sprintf("/api/employees/%d", created.ID)

	w, env = suite.do(http.MethodPut, path, suite.token, map[string]string{
		"name": "Ann", "email": "self@example.com", "mobileNo": "555",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("CONFLICT", env.Code)

	w, _ = suite.do(http.MethodPut, path, suite.token, map[string]string{
		"name": "Anne", "email": "anne@example.com", "mobileNo": "555",
	})
	suite.Equal(http.StatusOK, w.Code)

	w, env = suite.do(http.MethodGet, path, suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(string(env.Data), "anne@example.com")

	w, _ = suite.do(http.MethodDelete, path, suite.token, nil)
	suite.Equal(http.StatusOK, w.Code)

	w, env = suite.do(http.MethodGet, path, suite.token, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("NOT_FOUND", env.Code)

	w, _ = suite.do(http.MethodGet, "/api/employees/abc", suite.token, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestMe() {
	w, env := suite.do(http.MethodGet, "/api/employees/me", suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(string(env.Data), "self@example.com")
}

func (suite *RouterTestSuite) TestExport() {
	suite.signup("Other", "other@test.org", "9000000003")

	w, _ := suite.do(http.MethodGet, "/api/employees/export?search=example", suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	suite.Regexp(`attachment; filename="employees-\d{8}-\d{6}\.csv"`, w.Header().Get("Content-Disposition"))
	suite.Equal("name,email,mobileNo\nSelf,self@example.com,9000000000\n", w.Body.String())
}

func (suite *RouterTestSuite) TestTimesheetsAndProjects() {
	w, env := suite.do(http.MethodPost, "/api/timesheets", suite.token, map[string]interface{}{
		"employeeId": suite.selfID, "date": "2024-04-02", "hoursWorked": 6.5, "taskDetails": "release",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w, _ = suite.do(http.MethodPost, "/api/timesheets", suite.token, map[string]interface{}{
		"employeeId": suite.selfID, "date": "2024-04-02", "hoursWorked": -1, "taskDetails": "x",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w, _ = suite.do(http.MethodPost, "/api/timesheets", suite.token, map[string]interface{}{
		"employeeId": suite.selfID + 100, "date": "2024-04-02", "hoursWorked": 1, "taskDetails": "x",
	})
	suite.Equal(http.StatusNotFound, w.Code)

	w, env = suite.do(http.MethodGet, fmt.Sprintf("/api/timesheets/%d", suite.selfID), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var timesheets []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(env.Data, &timesheets))
	suite.Len(timesheets, 1)

	w, env = suite.do(http.MethodPost, "/api/projects", suite.token, map[string]interface{}{
		"name": "Payroll", "startDate": "2024-01-01", "endDate": "2024-03-01",
		"status": "In Progress", "employeeId": suite.selfID,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var project struct {
		ID       uint64 `json:"id"`
		Employee struct {
			ID   uint64 `json:"id"`
			Name string `json:"name"`
		} `json:"employee"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &project))
	suite.Equal(suite.selfID, project.Employee.ID)
	suite.Equal("Self", project.Employee.Name)

	w, _ = suite.do(http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), suite.token, map[string]string{"status": "Done"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w, _ = suite.do(http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), suite.token, nil)
	suite.Equal(http.StatusOK, w.Code)
	w, _ = suite.do(http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), suite.token, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestProfileImageUpload() {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	suite.Require().NoError(form.WriteField("department", "Finance"))
	part, err := form.CreateFormFile("profileImage", "avatar.png")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("\x89PNG fake image"))
	suite.Require().NoError(err)
	suite.Require().NoError(form.Close())

	path := fmt.Sprintf("/api/profile/%d", suite.selfID)
	req := httptest.NewRequest(http.MethodPut, path, &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	var profile struct {
		Department   string `json:"department"`
		ProfileImage string `json:"profileImage"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &profile))
	suite.Equal("Finance", profile.Department)
	suite.True(strings.HasPrefix(profile.ProfileImage, "/uploads/self-"))

	stored, err := os.ReadFile(filepath.Join(suite.uploadDir, strings.TrimPrefix(profile.ProfileImage, "/uploads/")))
	suite.Require().NoError(err)
	suite.Equal("\x89PNG fake image", string(stored))

	w, _ = suite.do(http.MethodGet, profile.ProfileImage, "", nil)
	suite.Equal(http.StatusOK, w.Code)

	w, env = suite.do(http.MethodGet, path, suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.NotContains(string(env.Data), "password")
}

func (suite *RouterTestSuite) putProfileImage(fields map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for k, v := range fields {
		suite.Require().NoError(form.WriteField(k, v))
	}
	part, err := form.CreateFormFile("profileImage", "avatar.png")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("\x89PNG fake image"))
	suite.Require().NoError(err)
	suite.Require().NoError(form.Close())

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/profile/%d", suite.selfID), &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) TestProfileImageRemovedWhenUpdateFails() {
	suite.signup("Other", "other@example.com", "9111111111")

	tests := []struct {
		name   string
		fields map[string]string
		code   string
	}{
		{"taken mobile", map[string]string{"mobileNo": "9111111111"}, "CONFLICT"},
		{"bad date", map[string]string{"dateOfJoining": "yesterday"}, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.putProfileImage(tt.fields)
			suite.Require().Equal(http.StatusBadRequest, w.Code, w.Body.String())

			var env envelope
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
			suite.Equal(tt.code, env.Code)

			entries, err := os.ReadDir(suite.uploadDir)
			suite.Require().NoError(err)
			suite.Empty(entries)
		})
	}
}

func (suite *RouterTestSuite) TestHealthAndNoRoute() {
	w, _ := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)

	w, env := suite.do(http.MethodGet, "/api/nothing-here", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Route not found", env.Message)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
