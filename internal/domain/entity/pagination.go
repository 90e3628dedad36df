package entity

import "strings"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery carries the common paging and filtering parameters of list endpoints.
type ListQuery struct {
	Page   int       `query:"page"`
	Limit  int       `query:"limit"`
	Sort   string    `query:"sort"`
	Order  SortOrder `query:"order"`
	Search string    `query:"search"`
	Status string    `query:"status"`
}

// Normalize clamps paging values and fills defaults.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.Order = SortOrder(strings.ToLower(string(q.Order)))
	if q.Order != SortAsc {
		q.Order = SortDesc
	}
	q.Search = strings.TrimSpace(q.Search)
}

// Offset returns the number of rows to skip.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Page is one page of list results.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPage assembles a page from the query and the total row count.
func NewPage[T any](items []T, q ListQuery, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if q.Limit > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}

	return Page[T]{
		Items:      items,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: pages,
	}
}
