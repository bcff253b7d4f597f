// Package views holds the derivation layer shared by every admin page: pure
// filtering, search and pagination over fetched lists, plus the snapshot and
// mutation controllers that manage per-resource view state.
package views

// Page describes one window over a list. CurrentPage is always clamped into
// [1, max(1, TotalPages)], so shrinking the underlying list can never leave
// the view pointing past the end.
type Page struct {
	TotalItems  int `json:"total_items"`
	PageSize    int `json:"page_size"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	StartIndex  int `json:"start_index"`
	EndIndex    int `json:"end_index"`
}

// Paginate computes the page window for a list of totalItems. A pageSize
// below 1 is treated as 1.
func Paginate(totalItems, pageSize, currentPage int) Page {
	if totalItems < 0 {
		totalItems = 0
	}
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (totalItems + pageSize - 1) / pageSize

	maxPage := totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > maxPage {
		currentPage = maxPage
	}

	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}
	if start > totalItems {
		start = totalItems
	}

	return Page{
		TotalItems:  totalItems,
		PageSize:    pageSize,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		StartIndex:  start,
		EndIndex:    end,
	}
}

// PageSlice applies a page window to items.
func PageSlice[T any](items []T, p Page) []T {
	if p.StartIndex >= len(items) {
		return nil
	}
	end := p.EndIndex
	if end > len(items) {
		end = len(items)
	}
	return items[p.StartIndex:end]
}
