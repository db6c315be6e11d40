package service

import "context"

// Seeder guarantees the store holds its baseline data before it is read.
type Seeder interface {
	// EnsureSeeded loads the baseline data set if and only if the store is empty.
	// It is called on every request and must be cheap once the store is populated.
	EnsureSeeded(ctx context.Context) error
}
