package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/auth"
	"github.com/yukikurage/employee-management-api/internal/constants"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
)

// RequireAuth checks the bearer token of the request. Only the employee ID
// is attached to the context; handlers load the record when they need it.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(constants.ContextKeyEmployeeID, claims.EmployeeID)
		c.Next()
	}
}

// bearerToken extracts the token of a "Bearer <token>" header. The scheme
// is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetEmployeeID retrieves the authenticated employee ID from context
func GetEmployeeID(c *gin.Context) (uint64, bool) {
	employeeID, exists := c.Get(constants.ContextKeyEmployeeID)
	if !exists {
		return 0, false
	}

	switch v := employeeID.(type) {
	case uint64:
		return v, v != 0
	case uint:
		return uint64(v), v != 0
	case int:
		if v <= 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
