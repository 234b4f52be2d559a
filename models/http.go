package models

// Pagination bounds shared by every list endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// PageQuery is the normalized page/limit pair parsed from a list
// request. Use NormalizePage to clamp raw query values into range.
type PageQuery struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NormalizePage clamps raw page/limit values into the allowed range,
// substituting defaults for missing or out-of-range input.
func NormalizePage(page, limit int) PageQuery {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageQuery{Page: page, Limit: limit}
}

// Paginated is the envelope returned by every list endpoint.
type Paginated[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginated assembles the envelope, computing TotalPages as
// ceil(total/limit). Data is never nil so the JSON field marshals as
// an empty array rather than null.
func NewPaginated[T any](data []T, total int64, page PageQuery) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := int((total + int64(page.Limit) - 1) / int64(page.Limit))
	return Paginated[T]{
		Data:       data,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages,
	}
}

// Message is the body of delete responses and other acknowledgements.
type Message struct {
	Message string `json:"message"`
}
