package view

import "github.com/mesh-intelligence/contactdesk/pkg/types"

// Page is one slice of the sorted sequence plus its boundary flags.
type Page struct {
	Records      []types.Record `json:"records" yaml:"records"`
	Number       int            `json:"number" yaml:"number"`
	TotalPages   int            `json:"total_pages" yaml:"total_pages"`
	TotalRecords int            `json:"total_records" yaml:"total_records"`
	IsFirstPage  bool           `json:"is_first_page" yaml:"is_first_page"`
	IsLastPage   bool           `json:"is_last_page" yaml:"is_last_page"`
}

// TotalPages returns ceil(n/pageSize), never less than 1.
// A non-positive pageSize is treated as a single page.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage forces page into [1, total].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	return max(1, min(page, total))
}

// NextPage returns current+1, or current when it is already the last page.
func NextPage(current, total int) int {
	if current < total {
		return current + 1
	}
	return current
}

// PreviousPage returns current-1, or current when it is already the first page.
func PreviousPage(current int) int {
	if current > 1 {
		return current - 1
	}
	return current
}

// Paginate slices sorted to [(page-1)*pageSize, page*pageSize). Bounds past
// the end of sorted yield a shorter or empty page instead of an error.
// TotalPages is recomputed from len(sorted) on every call; the flags compare
// page against it as given, so callers clamp first.
func Paginate(sorted []types.Record, page, pageSize int) Page {
	total := TotalPages(len(sorted), pageSize)
	p := Page{
		Records:      []types.Record{},
		Number:       page,
		TotalPages:   total,
		TotalRecords: len(sorted),
		IsFirstPage:  page == 1,
		IsLastPage:   page == total,
	}
	if pageSize <= 0 || page < 1 {
		return p
	}
	start := (page - 1) * pageSize
	if start >= len(sorted) {
		return p
	}
	end := min(start+pageSize, len(sorted))
	p.Records = append(p.Records, sorted[start:end]...)
	return p
}

// Compute runs the full pipeline over canonical for state: filter, sort,
// clamp the page into range, paginate. The returned Page.Number is the
// clamped page. Compute does not retain or modify its inputs.
func Compute(canonical []types.Record, state types.ViewState, searchable []string) Page {
	filtered := Filter(canonical, state.SearchKey, searchable)
	sorted := filtered
	if state.SortField != "" {
		sorted = Sort(filtered, state.SortField, state.SortDirection)
	}
	page := ClampPage(state.CurrentPage, TotalPages(len(sorted), state.PageSize))
	return Paginate(sorted, page, state.PageSize)
}
