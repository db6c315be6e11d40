package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/query"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/usecase"

	"github.com/pkg/errors"
)

// deviceActions maps each accepted action to the change it applies.
var deviceActions = map[string]func(*entity.Device) error{
	entity.DeviceActionBlock: func(d *entity.Device) error {
		d.Blocked = true

		return nil
	},
	entity.DeviceActionUnblock: func(d *entity.Device) error {
		d.Blocked = false

		return nil
	},
	entity.DeviceActionTrust: func(d *entity.Device) error {
		d.Trust()

		return nil
	},
}

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	lister[entity.Device]

	deviceRepo repository.DeviceRepository
	recorder   service.AuditRecorder
	logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(
	seeder service.Seeder,
	deviceRepo repository.DeviceRepository,
	recorder service.AuditRecorder,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		lister: lister[entity.Device]{
			seeder:  seeder,
			repo:    deviceRepo,
			filters: deviceFilters,
			order:   query.InsertionOrder,
		},
		deviceRepo: deviceRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDevices returns the devices matching q in insertion order.
func (srv *deviceService) ListDevices(ctx context.Context, q usecase.ListQuery) (query.Page[entity.Device], error) {
	srv.log(ctx).Debug("Listing devices", slog.Any("filters", q.Filters))

	return srv.list(ctx, q)
}

// ApplyDeviceAction applies action to the device. Unknown actions are
// rejected before the store is touched.
func (srv *deviceService) ApplyDeviceAction(ctx context.Context, id, action string) (*entity.Device, error) {
	srv.log(ctx).Debug("Applying device action", slog.String("device_id", id), slog.String("action", action))

	if id == "" {
		return nil, errors.WithStack(domainerrors.ErrValidation.WithDetails("device id is required"))
	}
	mutate, ok := deviceActions[action]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrValidation.WithDetails(fmt.Sprintf("unknown device action %q", action)))
	}

	if err := srv.seeder.EnsureSeeded(ctx); err != nil {
		return nil, errors.Wrap(err, "ensure seeded")
	}

	device, err := srv.deviceRepo.Update(ctx, id, mutate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("device %q", id)))
		}

		return nil, errors.Wrap(err, "update device")
	}

	recordAudit(ctx, srv.recorder, srv.log(ctx), &service.AuditEvent{
		EntityType: entity.EntityTypeDevice,
		EntityID:   device.ID,
		Action:     action,
		Details: map[string]any{
			"blocked":    device.Blocked,
			"trustScore": device.TrustScore,
		},
	})

	srv.log(ctx).Info("Device action applied",
		slog.String("device_id", device.ID),
		slog.String("action", action),
		slog.Bool("blocked", device.Blocked),
		slog.Int("trust_score", device.TrustScore),
	)

	return &device, nil
}
