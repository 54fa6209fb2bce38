package pagination

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Page      int
	Limit     int
	Offset    int
	Total     int64
	SortBy    string
	Direction string
	Search    string
}

// ParseFromRequest handles pagination parameters from Fiber context
func ParseFromRequest(c *fiber.Ctx) Pagination {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return Pagination{
		Page:      page,
		Limit:     limit,
		Offset:    (page - 1) * limit,
		SortBy:    c.Query("sortby", "created_at"),
		Direction: c.Query("direction", "desc"),
		Search:    strings.TrimSpace(c.Query("search")),
	}
}

// Order builds an ORDER BY clause from the requested sort column and
// direction, falling back to created_at when the column is not whitelisted.
func (p Pagination) Order(allowed map[string]bool) string {
	column := p.SortBy
	if !allowed[column] {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(p.Direction, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}

// Response creates a standardized pagination response
func Response(p Pagination, data interface{}) fiber.Map {
	totalPages := p.Total / int64(p.Limit)
	if p.Total%int64(p.Limit) > 0 {
		totalPages++
	}

	return fiber.Map{
		"data": data,
		"meta": fiber.Map{
			"current_page": p.Page,
			"per_page":     p.Limit,
			"total_items":  p.Total,
			"total_pages":  totalPages,
		},
	}
}
