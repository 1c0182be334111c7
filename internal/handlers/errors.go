package handlers

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// respondBindError reports a body that could not be decoded or failed its
// binding rules.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, len(verrs))
		for i, fe := range verrs {
			details[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
		}
		apierrors.BadRequestWithDetails(c, "Validation failed", details)
		return
	}
	apierrors.BadRequest(c, "Invalid request body")
}

func init() {
	// Report JSON names instead of Go field names in validation details.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		apierrors.BadRequestWithDetails(c, verr.Message, FieldError{Field: verr.Field, Rule: "invalid"})
	case errors.Is(err, services.ErrInvalidSortField),
		errors.Is(err, services.ErrInvalidSortOrder),
		errors.Is(err, services.ErrInvalidProjectStatus),
		errors.Is(err, services.ErrProjectDateOrder),
		errors.Is(err, services.ErrUnsupportedImageType),
		errors.Is(err, services.ErrImageTooLarge),
		errors.Is(err, utils.ErrInvalidPage),
		errors.Is(err, utils.ErrInvalidLimit):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrMobileTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, "Employee not found")
	case errors.Is(err, services.ErrTimesheetNotFound):
		apierrors.NotFound(c, "Timesheet not found")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c *gin.Context, name, label string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}
