package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds page-based pagination parameters extracted from a request.
type Params struct {
	Page  int
	Limit int
}

// FromContext extracts page and limit query parameters from the echo
// context, clamping them to sane values.
func FromContext(c echo.Context) Params {
	return FromContextDefault(c, DefaultLimit)
}

// FromContextDefault is FromContext with a caller-chosen default page size.
func FromContextDefault(c echo.Context, defaultLimit int) Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns the page count for a given total row count.
// An empty result set still has one (empty) page.
func (p Params) TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}
	return pages
}
