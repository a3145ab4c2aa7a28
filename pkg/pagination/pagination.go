package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// PageRequest selects one page of a result set, optionally narrowed by a
// case-insensitive search term.
type PageRequest struct {
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Search   *string `json:"search,omitempty"`
}

// PageRequestFromQuery reads page, page_size, and search from query values
// and normalizes the result against cfg.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	req := PageRequest{}
	req.Page, _ = strconv.Atoi(values.Get("page"))
	req.PageSize, _ = strconv.Atoi(values.Get("page_size"))
	if s := strings.TrimSpace(values.Get("search")); s != "" {
		req.Search = &s
	}
	req.Normalize(cfg)
	return req
}

// Normalize clamps PageSize into [1, cfg.MaxPageSize], substituting
// cfg.DefaultPageSize when unset, then clamps Page so that Page*PageSize
// stays within int.
func (r *PageRequest) Normalize(cfg Config) {
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	r.PageSize = max(min(r.PageSize, cfg.MaxPageSize), 1)
	r.Page = min(max(r.Page, 1), math.MaxInt/r.PageSize)
}

// Window returns the [start, end) bounds of the page within total items.
func (r *PageRequest) Window(total int) (int, int) {
	if r.PageSize < 1 || r.Page < 1 || r.Page-1 > total/r.PageSize {
		return total, total
	}
	start := min((r.Page-1)*r.PageSize, total)
	return start, min(start+r.PageSize, total)
}

// PageResult is one page of items with the totals needed to page further.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices the requested page out of items. req must be normalized.
// Data is never nil so it encodes as an empty JSON array.
func Paginate[T any](items []T, req PageRequest) PageResult[T] {
	start, end := req.Window(len(items))

	data := make([]T, end-start)
	copy(data, items[start:end])

	return PageResult[T]{
		Data:       data,
		Total:      len(items),
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: max((len(items)+req.PageSize-1)/req.PageSize, 1),
	}
}
