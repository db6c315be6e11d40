package query

import (
	"slices"

	"dashboard/internal/domain/entity"
)

// Order decides how a filtered snapshot is presented.
type Order int

const (
	// InsertionOrder keeps the stored order.
	InsertionOrder Order = iota
	// NewestFirst sorts by createdAt descending; equal timestamps keep their
	// stored relative order.
	NewestFirst
)

// SortByCreatedAtDesc orders items newest first in place.
func SortByCreatedAtDesc[T entity.Record](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return b.RecordCreatedAt().Compare(a.RecordCreatedAt())
	})
}

// Select runs the read pipeline over a snapshot: filter, order, paginate.
func Select[T entity.Record](items []T, pred Predicate[T], order Order, req PageRequest) Page[T] {
	matched := Apply(items, pred)
	if order == NewestFirst {
		SortByCreatedAtDesc(matched)
	}

	return Paginate(matched, req)
}
