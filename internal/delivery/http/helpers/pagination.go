package helpers

import (
	"net/http"
	"strconv"
)

// Pagination query parameter defaults and limits. The backend applies its
// own defaults; these only clamp what we forward.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParsePagination reads page and limit from the request query string and
// clamps them to valid ranges. Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) (page, limit int) {
	page = DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	limit = DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}
	return page, limit
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Count int `json:"count"`
}

// NewPaginationMeta builds PaginationMeta from the requested page, limit,
// and the number of items actually returned.
func NewPaginationMeta(page, limit, count int) PaginationMeta {
	return PaginationMeta{Page: page, Limit: limit, Count: count}
}
