package response

import "slot-booking/internal/usecase/queries"

type PageResponse[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

func FromPage[S, T any](p *queries.PageResult[S], convert func(S) T) *PageResponse[T] {
	results := make([]T, len(p.Results))
	for i, item := range p.Results {
		results[i] = convert(item)
	}
	return &PageResponse[T]{
		Count:    p.Count,
		Page:     p.Page,
		PageSize: p.PageSize,
		Results:  results,
	}
}
