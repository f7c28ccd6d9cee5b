package common

import (
	"webcafe/src/config"
)

// PageWindow is the pagination block rendered under a listing.
type PageWindow struct {
	Show  bool  `json:"show_pagination"`
	Pages []int `json:"pages,omitempty"`
}

// Window computes which page numbers to display. With a single page there
// is nothing to show; otherwise a band of at most five pages is kept
// centered on the current one, clamped at both ends.
func Window(currentPage, totalPages int) PageWindow {
	if totalPages == 1 {
		return PageWindow{Show: false}
	}

	var first, last int
	switch {
	case totalPages <= 5:
		first, last = 1, totalPages
	case currentPage <= 2:
		first, last = 1, 5
	case currentPage >= totalPages-1:
		first, last = totalPages-4, totalPages
	default:
		first, last = currentPage-2, currentPage+2
	}

	pages := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		pages = append(pages, p)
	}
	return PageWindow{Show: true, Pages: pages}
}

// TotalPages converts a row count into a page count, never less than one.
func TotalPages(count int64) int {
	pages := int((count + config.PAGE_SIZE - 1) / config.PAGE_SIZE)
	if pages < 1 {
		return 1
	}
	return pages
}
