package repository

import (
	"context"

	"dashboard/internal/domain/entity"
)

// DeviceRepository defines the operations on the device collection.
type DeviceRepository interface {
	Reader[entity.Device]
	Appender[entity.Device]

	// Update applies mutate to the stored device while holding the collection
	// lock and returns a copy of the result. A non-nil error from mutate
	// discards the changes.
	Update(ctx context.Context, id string, mutate func(device *entity.Device) error) (entity.Device, error)
}
