package pagination

// Meta is the derived paging metadata for one result page.
type Meta struct {
	CurrentPage     int
	TotalPages      int
	TotalItems      int
	HasNextPage     bool
	HasPreviousPage bool
}

// Plan derives page metadata from a total count. Callers are expected to pass
// page >= 1; an out-of-range page is not an error, it simply comes back with
// HasNextPage=false and yields an empty slice at fetch time.
func Plan(page, totalItems, pageSize int) Meta {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return Meta{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Offset is the storage offset for the given page.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}
