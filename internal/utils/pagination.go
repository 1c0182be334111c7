package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/constants"
)

var (
	ErrInvalidPage  = errors.New("page must be a positive integer")
	ErrInvalidLimit = fmt.Errorf("limit must be an integer between %d and %d", constants.MinPageSize, constants.MaxPageSize)
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// NewPaginationParams validates page and limit and derives the offset.
func NewPaginationParams(page, limit int) (PaginationParams, error) {
	if page < 1 {
		return PaginationParams{}, ErrInvalidPage
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		return PaginationParams{}, ErrInvalidLimit
	}
	// The offset must fit in an int.
	if page-1 > math.MaxInt/limit {
		return PaginationParams{}, ErrInvalidPage
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, nil
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// NewPaginationResponse computes the page count for total rows. An empty
// result has zero pages.
func NewPaginationResponse(params PaginationParams, total int64) PaginationResponse {
	pages := int(total / int64(params.Limit))
	if total%int64(params.Limit) > 0 {
		pages++
	}

	return PaginationResponse{
		Total:       total,
		Pages:       pages,
		CurrentPage: params.Page,
		Limit:       params.Limit,
	}
}

// ListParams are the raw employee listing parameters of a request.
type ListParams struct {
	Pagination PaginationParams
	SortBy     string
	SortOrder  string
	Search     string
	FilterBy   string
}

// GetPaginationParams extracts and validates page and limit. Values that
// are present but not positive integers are rejected instead of being
// replaced by defaults.
func GetPaginationParams(c *gin.Context) (PaginationParams, error) {
	page, err := queryInt(c, "page", constants.DefaultPage)
	if err != nil {
		return PaginationParams{}, ErrInvalidPage
	}
	limit, err := queryInt(c, "limit", constants.DefaultPageSize)
	if err != nil {
		return PaginationParams{}, ErrInvalidLimit
	}

	return NewPaginationParams(page, limit)
}

// GetListParams extracts the listing parameters with their defaults.
// Sort field and order are checked by the service that knows the columns.
func GetListParams(c *gin.Context) (ListParams, error) {
	pagination, err := GetPaginationParams(c)
	if err != nil {
		return ListParams{}, err
	}

	return ListParams{
		Pagination: pagination,
		SortBy:     queryString(c, "sortBy", constants.DefaultSortBy),
		SortOrder:  strings.ToLower(queryString(c, "sortOrder", constants.DefaultSortOrder)),
		Search:     strings.TrimSpace(c.Query("search")),
		FilterBy:   strings.ToLower(queryString(c, "filterBy", constants.DefaultFilterBy)),
	}, nil
}

func queryInt(c *gin.Context, key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

func queryString(c *gin.Context, key, defaultValue string) string {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return defaultValue
	}
	return value
}
