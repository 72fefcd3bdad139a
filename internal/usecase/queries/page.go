package queries

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
	// MaxPageNumber keeps OFFSET far inside PostgreSQL's bigint range.
	MaxPageNumber = 1_000_000
)

// Page is a 1-based page-number request.
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size int) Page {
	number = min(max(number, 1), MaxPageNumber)
	return Page{Number: number, Size: ValidatePageSize(size)}
}

func ValidatePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

func (p Page) Limit() uint64 {
	return uint64(p.Size)
}

func (p Page) Offset() uint64 {
	return uint64(p.Number-1) * uint64(p.Size)
}

type PageResult[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

func newPageResult[T any](items []T, count int64, page Page) *PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResult[T]{
		Count:    count,
		Page:     page.Number,
		PageSize: page.Size,
		Results:  items,
	}
}
