package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/findup-dz/findup-api/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// ParsePaginationParams extracts and validates page/limit query parameters.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return page, limit
}

// CalculateOffsetLimit converts a 1-based page number to a SQL offset.
func CalculateOffsetLimit(page, limit int) (offset uint64, boundedLimit int) {
	if limit <= 0 || limit > MaxPageSize {
		boundedLimit = DefaultPageSize
	} else {
		boundedLimit = limit
	}
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * boundedLimit), boundedLimit
}

// NewPagination builds the standard pagination block for list responses.
func NewPagination(total int64, page, limit int) dto.Pagination {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
