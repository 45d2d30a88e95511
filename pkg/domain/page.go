package domain

// Page is one page of a paginated resource collection.
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

// TotalPages returns ceil(total/pageSize), never less than 1 so that an
// empty collection still displays as "page 1 of 1".
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// TotalPages returns the number of pages in the collection.
func (p Page[T]) TotalPages() int {
	return TotalPages(p.Total, p.PageSize)
}

// ClampPage keeps page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
