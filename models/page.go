package models

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is a zero-based page selection
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest clamps page and size into the accepted range
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
	if page > MaxPage(size) {
		page = MaxPage(size)
	}
	return PageRequest{Page: page, Size: size}
}

// MaxPage is the largest page whose offset fits in an int for size
func MaxPage(size int) int {
	if size <= 0 {
		return 0
	}
	return (math.MaxInt - 1) / size
}

// Limit is the number of rows to fetch: one extra to detect a next page.
func (p PageRequest) Limit() int {
	return p.Size + 1
}

// Offset is the number of rows to skip
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a listing
type Page[T any] struct {
	Content []T  `json:"content"`
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	HasNext bool `json:"hasNext"`
}

// NewPage builds a page from rows fetched with req.Limit().
func NewPage[T any](rows []T, req PageRequest) Page[T] {
	hasNext := len(rows) > req.Size
	if hasNext {
		rows = rows[:req.Size]
	}
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{Content: rows, Page: req.Page, Size: req.Size, HasNext: hasNext}
}

// MapPage converts the content of a page
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}
	return Page[U]{Content: out, Page: p.Page, Size: p.Size, HasNext: p.HasNext}
}
