package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
)

// RequireSelf lets a request through only when the path parameter param
// names the authenticated employee. When enforce is false every
// authenticated caller may act on any record.
func RequireSelf(param string, enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enforce {
			c.Next()
			return
		}

		targetID, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid employee ID")
			return
		}

		employeeID, exists := GetEmployeeID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if employeeID != targetID {
			apierrors.Forbidden(c, "You can only access your own profile")
			return
		}

		c.Next()
	}
}
