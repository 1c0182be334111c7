package constants

import "time"

// Context keys
const (
	ContextKeyEmployeeID = "employee_id"
	ContextKeyRequestID  = "request_id"
)

// Pagination
const (
	DefaultPage     = 1
	DefaultPageSize = 6
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Employee listing defaults
const (
	DefaultSortBy    = "name"
	DefaultSortOrder = "asc"
	DefaultFilterBy  = "all"
)

// Authentication
const (
	DefaultTokenTTL  = time.Hour
	BearerScheme     = "Bearer"
	MaxPasswordBytes = 72
)

// Uploads
const (
	DefaultMaxUploadBytes = 5 << 20
	UploadsURLPrefix      = "/uploads"
	ProfileImageField     = "profileImage"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"
