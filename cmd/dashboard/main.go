package main

import (
	"context"
	"log/slog"
	"os"

	"dashboard/config"
	"dashboard/internal/delivery"
	"dashboard/internal/delivery/api"
	"dashboard/internal/infra/audit"
	logs "dashboard/internal/infra/log"
	"dashboard/internal/infra/metrics"
	"dashboard/internal/infra/persistence/memory"
	"dashboard/internal/infra/seed"
	"dashboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		memory.Module,
		seed.Module,
		audit.Module,
		metrics.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewSessionService,
			impl.NewSecurityEventService,
			impl.NewAuditLogService,
			impl.NewWalletLedgerService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		api.Module,
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
