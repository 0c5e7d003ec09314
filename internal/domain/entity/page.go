package entity

const (
	// DefaultPageSize is used when a caller does not ask for a size.
	DefaultPageSize = 20
	// MaxPageSize caps the number of rows returned by one page.
	MaxPageSize = 100
)

// PageRequest selects a zero-based page of a result set.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest clamps page and size to sane values.
func NewPageRequest(page, size int) PageRequest {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return PageRequest{Page: page, Size: size}
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

// NewPage wraps content returned for request.
func NewPage[T any](content []T, request PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	return Page[T]{Content: content, Number: request.Page, Size: request.Size, TotalElements: total}
}

// TotalPages returns the number of pages needed for TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Size == 0 {
		return 0
	}

	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// IsFirst reports whether this is the first page.
func (p Page[T]) IsFirst() bool {
	return p.Number == 0
}

// IsLast reports whether no page follows this one.
func (p Page[T]) IsLast() bool {
	return !p.HasNext()
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

// HasPrevious reports whether a preceding page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}

// MapPage converts the content of a page while keeping its position.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}

	return Page[U]{Content: out, Number: p.Number, Size: p.Size, TotalElements: p.TotalElements}
}
