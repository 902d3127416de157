package helpers

import (
	"net/http"
	"strconv"

	"youthministry/internal/domain"
)

// List query defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Missing values take
// the defaults and a page_size above MaxPageSize is capped. A value that is not a
// positive integer writes a 400 and returns false, the same way PathID does.
func ParsePagination(w http.ResponseWriter, r *http.Request) (domain.PaginationParams, bool) {
	page, ok := queryPositiveInt(w, r, "page", DefaultPage)
	if !ok {
		return domain.PaginationParams{}, false
	}
	pageSize, ok := queryPositiveInt(w, r, "page_size", DefaultPageSize)
	if !ok {
		return domain.PaginationParams{}, false
	}
	return domain.PaginationParams{Page: page, PageSize: min(pageSize, MaxPageSize)}, true
}

func queryPositiveInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid "+name+": must be a positive integer")
		return 0, false
	}
	return v, true
}

// PaginationMeta is the pagination block of list responses.
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// PageMeta describes page as returned for params. A page past the end reports the
// real TotalPages and HasNext=false.
func PageMeta[T any](params domain.PaginationParams, page *domain.Page[T]) PaginationMeta {
	meta := PaginationMeta{Page: params.Page, PageSize: params.PageSize, Total: page.Total}
	if params.PageSize > 0 {
		meta.TotalPages = (page.Total + params.PageSize - 1) / params.PageSize
	}
	meta.HasNext = params.Page < meta.TotalPages
	return meta
}
