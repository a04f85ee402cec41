// Package pagination slices an ordered sequence into fixed-size pages.
package pagination

// Page is a window over an ordered sequence. It is a runtime view, never
// persisted.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	Size        int  `json:"size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate is a pure function of its arguments. Out-of-range page numbers are
// clamped, never an error: below 1 clamps to the first page, past the end
// clamps to the last. An empty sequence yields a single empty page.
func Paginate[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      pageNumber,
		Size:        pageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     pageNumber < totalPages,
		HasPrevious: pageNumber > 1,
	}
}
