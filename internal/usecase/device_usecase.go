package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/query"
)

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// ListDevices returns the filtered devices in insertion order
	ListDevices(ctx context.Context, q ListQuery) (query.Page[entity.Device], error)

	// ApplyDeviceAction blocks, unblocks or trusts a device and returns its new state
	ApplyDeviceAction(ctx context.Context, id, action string) (*entity.Device, error)
}
