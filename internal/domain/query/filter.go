// Package query turns request parameters into predicates over a collection
// snapshot, orders the matches and cuts a page out of them.
package query

import (
	"net/url"
	"strings"
	"time"

	"dashboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Recognized parameter names shared by every resource.
const (
	ParamStartDate = "startDate"
	ParamEndDate   = "endDate"
	ParamFilter    = "filter"
	ParamPage      = "page"
	ParamLimit     = "limit"
)

// ErrInvalidDate is returned when startDate or endDate cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order when parsing startDate and endDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Predicate reports whether a record matches.
type Predicate[T any] func(T) bool

// MatchAll is the identity predicate.
func MatchAll[T any](T) bool { return true }

// And combines predicates; an empty list matches everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	switch len(preds) {
	case 0:
		return MatchAll[T]
	case 1:
		return preds[0]
	}

	return func(item T) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}

		return true
	}
}

// Apply returns the items matching pred, preserving their order.
func Apply[T any](items []T, pred Predicate[T]) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		}
	}

	return matched
}

// FilterSet is the fixed set of parameters one resource recognizes.
type FilterSet[T entity.Record] struct {
	fields    []Field[T]
	dateRange bool
}

// NewFilterSet declares the fields a resource can be filtered on.
func NewFilterSet[T entity.Record](fields ...Field[T]) *FilterSet[T] {
	return &FilterSet[T]{fields: fields}
}

// WithDateRange makes startDate and endDate recognized for the resource.
func (fs *FilterSet[T]) WithDateRange() *FilterSet[T] {
	fs.dateRange = true

	return fs
}

// Compose builds the conjunction of every recognized parameter present in
// params. Parameters the set does not know about are ignored.
func (fs *FilterSet[T]) Compose(params url.Values) (Predicate[T], error) {
	var preds []Predicate[T]

	for _, field := range fs.fields {
		if !field.param {
			continue
		}
		want := params.Get(field.Name)
		if want == "" {
			continue
		}
		value := field.str
		preds = append(preds, func(item T) bool {
			return value(item) == want
		})
	}

	if fs.dateRange {
		if raw := params.Get(ParamStartDate); raw != "" {
			start, err := ParseDate(raw)
			if err != nil {
				return nil, errors.Wrap(err, ParamStartDate)
			}
			preds = append(preds, func(item T) bool {
				return !item.RecordCreatedAt().Before(start)
			})
		}
		if raw := params.Get(ParamEndDate); raw != "" {
			end, err := ParseDate(raw)
			if err != nil {
				return nil, errors.Wrap(err, ParamEndDate)
			}
			preds = append(preds, func(item T) bool {
				return !item.RecordCreatedAt().After(end)
			})
		}
	}

	if raw := strings.TrimSpace(params.Get(ParamFilter)); raw != "" {
		pred, err := fs.CompileExpression(raw)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}

	return And(preds...), nil
}

// ParseDate parses a calendar timestamp. Date-only values mean midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", raw)
}
