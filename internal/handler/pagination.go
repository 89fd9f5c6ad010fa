package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 3
)

// parsePagination reads page and limit from query parameters, falling back
// to the defaults on missing, non-numeric or non-positive values. No upper
// bound is enforced on limit.
func parsePagination(c echo.Context) (page, limit int) {
	page = defaultPage
	limit = defaultLimit

	if raw := c.QueryParam("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	return page, limit
}

// parseID reads the numeric id path parameter; ok is false when it is not a
// positive integer.
func parseID(c echo.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
