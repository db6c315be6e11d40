package memory

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"

	"github.com/pkg/errors"
)

// reader adapts a Collection to the repository Reader and Appender interfaces.
type reader[T entity.Entity[T]] struct {
	c *Collection[T]
}

func (r *reader[T]) List(_ context.Context) ([]T, error) {
	return r.c.All(), nil
}

func (r *reader[T]) FindByID(_ context.Context, id string) (T, error) {
	record, ok := r.c.FindByID(id)
	if !ok {
		return record, errors.Wrapf(repository.ErrNotFound, "%s %q", r.c.Name(), id)
	}

	return record, nil
}

func (r *reader[T]) Append(_ context.Context, record T) error {
	return r.c.Append(record)
}
