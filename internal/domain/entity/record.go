// Package entity contains the records held by the dashboard's collections.
package entity

import (
	"maps"
	"time"

	"github.com/mitchellh/copystructure"
)

// Record is the subset every stored entity shares.
type Record interface {
	RecordID() string
	RecordCreatedAt() time.Time
}

// Validator is implemented by records that carry invariants the store must
// enforce before accepting them.
type Validator interface {
	Validate() error
}

// Entity is a Record that can produce a copy detached from the stored value.
type Entity[T any] interface {
	Record
	Clone() T
}

// Attributes is the opaque payload carried through the core untouched.
type Attributes map[string]any

// CloneAttributes deep-copies an attribute tail so a snapshot never aliases
// nested maps or slices of the stored record.
func CloneAttributes(attrs Attributes) Attributes {
	if attrs == nil {
		return nil
	}

	copied, err := copystructure.Copy(map[string]any(attrs))
	if err != nil {
		return maps.Clone(attrs)
	}

	m, ok := copied.(map[string]any)
	if !ok {
		return maps.Clone(attrs)
	}

	return Attributes(m)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}
