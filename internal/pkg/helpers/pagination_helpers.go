package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, lim int) {
	if limit <= 0 || limit > MaxLimit {
		lim = DefaultLimit
	} else {
		lim = limit
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * lim)
	return offset, lim
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
func NewPaginationInfo(total int64, page, limit int) dto.PaginationInfo {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.PaginationInfo{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return page, limit
}
