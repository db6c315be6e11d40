package memory

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	reader[entity.Device]
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{reader: reader[entity.Device]{c: store.devices}}
}

// Update applies mutate to the stored device; the trust score is clamped
// before the change becomes visible.
func (repo *deviceRepository) Update(_ context.Context, id string, mutate func(*entity.Device) error) (entity.Device, error) {
	return repo.c.Update(id, func(device *entity.Device) error {
		if err := mutate(device); err != nil {
			return err
		}
		device.TrustScore = entity.ClampTrustScore(device.TrustScore)

		return nil
	})
}
