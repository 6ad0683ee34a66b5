package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const MaxLimit = 100

type Paging struct {
	Limit  int
	Offset int
}

// ResolvePaging reads ?limit= and ?offset= and normalizes them.
// Values above maxLimit are clamped silently, never rejected.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	return NormalizePaging(c.Query("limit"), c.Query("offset"), defaultLimit, maxLimit)
}

// NormalizePaging is the query-independent core so it stays testable.
func NormalizePaging(limitStr, offsetStr string, defaultLimit, maxLimit int) Paging {
	limit := defaultLimit
	if n, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil && n > 0 {
		limit = n
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	offset := 0
	if n, err := strconv.Atoi(strings.TrimSpace(offsetStr)); err == nil && n > 0 {
		offset = n
	}

	return Paging{Limit: limit, Offset: offset}
}

type Pagination struct {
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
	Count   int   `json:"count"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// BuildPagination builds response meta; total is the full filtered count,
// independent of limit/offset.
func BuildPagination(total int64, p Paging, count int) Pagination {
	return Pagination{
		Limit:   p.Limit,
		Offset:  p.Offset,
		Total:   total,
		Count:   count,
		HasNext: int64(p.Offset+count) < total,
		HasPrev: p.Offset > 0,
	}
}
