package pagination

// OffsetRequest is a 1-based page request bound from query parameters.
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Validate normalizes the request in place: missing values take the
// defaults and oversized pages are capped at PageMaxSize.
func (r *OffsetRequest) Validate() error {
	r.Page = max(r.Page, 1)
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	r.Size = min(r.Size, PageMaxSize)
	return nil
}

func (r OffsetRequest) Offset() int {
	return Offset(r.Page, r.Size)
}

// Offset converts a 1-based page into a row offset.
func Offset(page, size int) int {
	return (max(page, 1) - 1) * max(size, 0)
}

// Paginate slices one page out of items.
func Paginate[T any](items []T, page, size int) []T {
	start := Offset(page, size)
	if size <= 0 || start >= len(items) {
		return []T{}
	}
	return items[start:min(start+size, len(items))]
}
