package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Pagination defaults applied when the caller omits or garbles page and limit.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset is the index of the first item on the page. It saturates at
// math.MaxInt instead of overflowing for huge page numbers.
func (r PageRequest) Offset() int {
	if r.Page <= 1 || r.Limit < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.Limit {
		return math.MaxInt
	}

	return (r.Page - 1) * r.Limit
}

// Pager normalizes page and limit parameters.
type Pager struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPager uses DefaultLimit and MaxLimit.
var DefaultPager = Pager{DefaultLimit: DefaultLimit, MaxLimit: MaxLimit}

// NewPager returns a Pager, falling back to the package defaults for
// non-positive values.
func NewPager(defaultLimit, maxLimit int) Pager {
	if maxLimit < 1 {
		maxLimit = MaxLimit
	}
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}

	return Pager{DefaultLimit: defaultLimit, MaxLimit: maxLimit}
}

// FromValues reads page and limit out of query parameters.
func (p Pager) FromValues(params url.Values) PageRequest {
	return p.Parse(params.Get(ParamPage), params.Get(ParamLimit))
}

// Parse never fails: missing or non-numeric values take the defaults, page is
// raised to 1 and limit is clamped to [1, MaxLimit]. Numbers too large for an
// int count as the largest int.
func (p Pager) Parse(page, limit string) PageRequest {
	req := PageRequest{Page: DefaultPage, Limit: p.DefaultLimit}

	if n, ok := parseCount(page); ok {
		req.Page = max(n, 1)
	}
	if n, ok := parseCount(limit); ok {
		req.Limit = min(max(n, 1), p.MaxLimit)
	}

	return req
}

// parseCount reads a decimal integer. Out of range input saturates at
// math.MaxInt or math.MinInt, which strconv already reports alongside ErrRange.
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return n, true
	}

	return 0, false
}

// Page is one slice of an ordered result together with its position.
type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}

// Pages is ceil(Total/Limit); an empty result has zero pages.
func (p Page[T]) Pages() int {
	if p.Total == 0 || p.Limit < 1 {
		return 0
	}

	return (p.Total + p.Limit - 1) / p.Limit
}

// Paginate cuts the requested page out of items. A page past the end yields
// no items but still reports the total.
func Paginate[T any](items []T, req PageRequest) Page[T] {
	total := len(items)
	start := min(req.Offset(), total)
	end := start + min(max(req.Limit, 0), total-start)

	page := make([]T, end-start)
	copy(page, items[start:end])

	return Page[T]{
		Items: page,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	}
}
