// Package pagination turns a raw entity slice into a requested page
// with optional free-text filtering. The same envelope is used for
// every paginated endpoint so pagination semantics stay uniform across
// the API.
package pagination

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrInvalidPage is returned when the page parameter is below 1 or not
// a number. Negative skips are rejected here instead of being handed to
// the slice math.
var ErrInvalidPage = errors.New("page must be a positive integer")

// Page is the JSON envelope for paginated listings. Total counts the
// filtered collection before slicing.
type Page[T any] struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Items    []T `json:"items"`
}

// Params are the parsed listing query parameters.
type Params struct {
	Page     int
	PageSize int
	Query    string
}

// ParseParams reads page, pageSize and q from the request query.
// Missing values fall back to the defaults, pageSize is clamped into
// [1, MaxPageSize], and page < 1 is a validation error.
func ParseParams(r *http.Request) (Params, error) {
	p := Params{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Query:    r.URL.Query().Get("q"),
	}

	if pStr := r.URL.Query().Get("page"); pStr != "" {
		n, err := strconv.Atoi(pStr)
		if err != nil || n < 1 {
			return Params{}, ErrInvalidPage
		}
		p.Page = n
	}

	if sStr := r.URL.Query().Get("pageSize"); sStr != "" {
		if n, err := strconv.Atoi(sStr); err == nil {
			if n < 1 {
				p.PageSize = 1
			} else if n > MaxPageSize {
				p.PageSize = MaxPageSize
			} else {
				p.PageSize = n
			}
		}
	}

	return p, nil
}

// Paginate filters items by the free-text query (case-sensitive
// substring over the fields match inspects), counts the result, sorts
// it with less, and returns the requested slice. A page past the end
// yields an empty items list with the total untouched.
func Paginate[T any](items []T, p Params, match func(T, string) bool, less func(T, T) bool) Page[T] {
	filtered := items
	if q := p.Query; strings.TrimSpace(q) != "" {
		filtered = make([]T, 0, len(items))
		for _, item := range items {
			if match(item, q) {
				filtered = append(filtered, item)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j])
	})

	total := len(filtered)
	skip := (p.Page - 1) * p.PageSize
	if skip > total {
		skip = total
	}
	end := skip + p.PageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
		Items:    filtered[skip:end],
	}
}
