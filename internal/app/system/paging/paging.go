// Package paging computes page-number pagination state for list pages.
//
// The backend paginates with page/page_size query parameters and reports a
// total count; page numbers are 1-based and the page size is fixed per list.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
const PageSize = 10

// Parse extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func Parse(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// PageCount returns the number of pages for a total row count,
// never below 1 (an empty list is a single empty page).
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Pager holds display state for a paginated list.
type Pager struct {
	Page  int
	Pages int
	Total int
	Shown int

	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int

	// 1-based display range ("Showing 11–20 of 37"); zero when empty.
	RangeStart int
	RangeEnd   int
}

// Build computes a Pager for the current page. shown is the number of rows
// actually rendered (the last page is usually partial).
func Build(page, pageSize, total, shown int) Pager {
	if page < 1 {
		page = 1
	}
	pages := PageCount(total, pageSize)
	if page > pages {
		page = pages
	}

	p := Pager{
		Page:     page,
		Pages:    pages,
		Total:    total,
		Shown:    shown,
		HasPrev:  page > 1,
		HasNext:  page < pages,
		PrevPage: page - 1,
		NextPage: page + 1,
	}
	if p.PrevPage < 1 {
		p.PrevPage = 1
	}
	if p.NextPage > pages {
		p.NextPage = pages
	}

	if shown > 0 {
		p.RangeStart = (page-1)*pageSize + 1
		p.RangeEnd = p.RangeStart + shown - 1
	}
	return p
}

// Window returns the page numbers to render in the pager control: the
// current page with up to span neighbors on each side, clamped to [1,pages].
func Window(page, pages, span int) []int {
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	lo := page - span
	if lo < 1 {
		lo = 1
	}
	hi := page + span
	if hi > pages {
		hi = pages
	}
	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, n)
	}
	return out
}
