package pkg

type PaginationParams struct {
	Page  int
	Limit int
}

func (p *PaginationParams) Offset() int {
	if p == nil {
		return 0
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * p.Limit
}

func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func NormalizePagination(p *PaginationParams) *PaginationParams {
	if p == nil {
		return &PaginationParams{Page: 1, Limit: 10}
	}
	p.Normalize()
	return p
}

// PaginatedResponse is the list envelope: count is the number of records on
// this page, total the count under the same predicate regardless of paging.
type PaginatedResponse[T any] struct {
	Count int   `json:"count"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Data  []T   `json:"data"`
}

// NewPaginatedResponse computes pages = ceil(total/limit); an empty result set
// has zero pages.
func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	if limit < 1 {
		limit = 10
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Count: len(data),
		Total: total,
		Page:  page,
		Pages: pages,
		Data:  data,
	}
}
