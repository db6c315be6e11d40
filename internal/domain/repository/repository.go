// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dashboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Persistence errors shared by every collection.
var (
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when appending a record whose id is already stored.
	ErrDuplicateID = errors.New("record id already exists")
	// ErrEmptyID is returned when appending a record without an id.
	ErrEmptyID = errors.New("record id is empty")
	// ErrInvalidRecord is returned when a record breaks an entity invariant.
	ErrInvalidRecord = errors.New("record is invalid")
)

// Reader exposes snapshot reads over one collection.
type Reader[T entity.Record] interface {
	// List returns a copy of every record in insertion order.
	List(ctx context.Context) ([]T, error)

	// FindByID returns a copy of the record with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (T, error)
}

// Appender inserts records at the end of a collection.
type Appender[T entity.Record] interface {
	// Append stores record after every existing one. It fails with
	// ErrDuplicateID, ErrEmptyID or ErrInvalidRecord and leaves the
	// collection unchanged.
	Append(ctx context.Context, record T) error
}
