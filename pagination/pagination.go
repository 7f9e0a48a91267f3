// Package pagination implements the list-query paging policy shared by the
// dog listing endpoints: page/limit coercion, offset math, and the response
// metadata block.
package pagination

import "strconv"

const (
	// DefaultLimit is used when the limit parameter is absent or unparsable.
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the client asks for.
	MaxLimit = 50
)

// Params are the coerced paging inputs. Page is always >= 1 and Limit is
// always within [1, MaxLimit]; out-of-range requests never error.
type Params struct {
	Page  int
	Limit int
}

// ParseParams coerces raw query-string values into valid Params.
// A non-positive or unparsable page becomes 1; an unparsable limit becomes
// DefaultLimit and any parsed limit is clamped into [1, MaxLimit].
func ParseParams(pageStr, limitStr string) Params {
	page := 1
	if p, err := strconv.Atoi(pageStr); err == nil && p > 1 {
		page = p
	}

	limit := DefaultLimit
	if l, err := strconv.Atoi(limitStr); err == nil {
		limit = l
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Offset returns the number of records to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block attached to list responses.
type Meta struct {
	CurrentPage int  `json:"currentPage" example:"1"`
	TotalPages  int  `json:"totalPages" example:"3"`
	TotalItems  int  `json:"totalItems" example:"25"`
	HasNext     bool `json:"hasNext" example:"true"`
	HasPrev     bool `json:"hasPrev" example:"false"`
}

// NewMeta computes the metadata for a result set of totalItems records.
// Pages past the end produce HasNext=false and an empty slice upstream,
// never an error.
func NewMeta(p Params, totalItems int) Meta {
	totalPages := (totalItems + p.Limit - 1) / p.Limit
	return Meta{
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     p.Page < totalPages,
		HasPrev:     p.Page > 1,
	}
}
