package pagination

type OffsetResult[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Pages   int   `json:"pages"`
	HasMore bool  `json:"has_more"`
}

func NewOffsetResult[T any](items []T, total int64, page int, size int) *OffsetResult[T] {
	r := &OffsetResult[T]{Items: items, Total: total, Page: page, Size: size}
	if size > 0 {
		r.Pages = int((total + int64(size) - 1) / int64(size))
	}
	r.HasMore = page < r.Pages
	return r
}
