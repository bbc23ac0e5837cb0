package utils

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PaginationParams represents pagination parameters. Page is zero-based.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

func NewPaginationParams(page, pageSize int) PaginationParams {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	if page > math.MaxInt/pageSize {
		page = math.MaxInt / pageSize
	}
	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   page * pageSize,
	}
}

// GetPaginationParams extracts pagination parameters from request
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("size"))

	return NewPaginationParams(page, pageSize)
}

// Paginate returns the window of items selected by p. A start past the end yields an empty slice.
func Paginate[T any](items []T, p PaginationParams) []T {
	start := p.Offset
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(total/pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}
