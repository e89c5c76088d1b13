package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuskudos/backend/internal/app/models/dto"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ParseLimitOffset extracts and clamps limit/offset query parameters.
// Invalid or out-of-range values fall back to the defaults.
func ParseLimitOffset(c *gin.Context) (limit, offset int) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}

// NewPaginationInfo builds the pagination metadata for a paginated list.
func NewPaginationInfo(total int64, limit, offset, returned int) dto.PaginationInfo {
	if limit < 1 {
		limit = DefaultLimit
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.PaginationInfo{
		Total:       total,
		Limit:       limit,
		Offset:      offset,
		HasMore:     int64(offset+returned) < total,
		TotalPages:  totalPages,
		CurrentPage: offset/limit + 1,
	}
}
