// Package pagination computes offset windows and page metadata for list queries.
package pagination

const (
	DefaultPage  int32 = 1
	DefaultLimit int32 = 10
	MaxLimit     int32 = 100
)

// Request is a 1-based page request. Page and Limit are expected to be >= 1;
// callers validate that before reaching this package.
type Request struct {
	Page  int32 `json:"page"  validate:"gte=1"`
	Limit int32 `json:"limit" validate:"gte=1,lte=100"`
}

// WithDefaults fills zero fields with DefaultPage and DefaultLimit.
func (r Request) WithDefaults() Request {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
	return r
}

// Offset returns the number of rows to skip. Page 1 has offset 0.
// Computed in int64 as (Page-1)*Limit exceeds int32 for large pages.
func (r Request) Offset() int64 {
	return int64(r.Page-1) * int64(r.Limit)
}

// Meta describes a page relative to the total number of matching rows.
type Meta struct {
	Page     int32 `json:"page"`
	Limit    int32 `json:"limit"`
	Total    int64 `json:"total"`
	LastPage int64 `json:"lastPage"`
	IsFirst  bool  `json:"isFirst"`
	IsLast   bool  `json:"isLast"`
}

// Result is a page of data together with its metadata.
type Result[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// NewMeta derives page metadata from a request and the total row count.
// IsLast compares the requested window against total, not against LastPage,
// so an empty table still reports IsLast.
func NewMeta(req Request, total int64) Meta {
	limit := int64(req.Limit)
	lastPage := (total + limit - 1) / limit

	return Meta{
		Page:     req.Page,
		Limit:    req.Limit,
		Total:    total,
		LastPage: lastPage,
		IsFirst:  req.Page == 1,
		IsLast:   int64(req.Page)*limit >= total,
	}
}
