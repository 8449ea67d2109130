package pagination

// Page is a view over one slice of a larger sequence. Derived on every
// render, never stored.
type Page[T any] struct {
	Items      []T
	Index      int
	PageSize   int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate slices items into fixed-size pages and returns the requested
// one. The index is clamped into the valid range instead of rejected:
// buttons can carry a page number computed against a list that has since
// shrunk.
func Paginate[T any](items []T, pageSize, index int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if index < 0 {
		index = 0
	}
	if index > totalPages-1 {
		index = totalPages - 1
	}

	start := index * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Index:      index,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasPrev:    index > 0,
		HasNext:    index < totalPages-1,
	}
}
