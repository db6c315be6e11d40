// Package seed populates the in-memory store with its baseline data set.
package seed

import (
	"bytes"
	"context"
	"embed"
	"io"
	"log/slog"
	"os"
	"sync"

	"dashboard/config"
	"dashboard/internal/domain/lifecycle"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/baseline.yaml
var fixtures embed.FS

const baselineFixture = "fixtures/baseline.yaml"

var _ service.Seeder = (*Seeder)(nil)

// Seeder loads a fixed data set into an empty store.
type Seeder struct {
	mu      sync.Mutex
	store   repository.StoreManager
	dataset repository.Dataset
	enabled bool
	logger  *slog.Logger
}

// NewWithDataset creates a seeder that loads dataset.
func NewWithDataset(store repository.StoreManager, dataset repository.Dataset, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:   store,
		dataset: dataset,
		enabled: true,
		logger:  logger,
	}
}

// Params holds dependencies for the Seeder, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Store  repository.StoreManager
	Logger *slog.Logger
}

// New creates the seeder from configuration and seeds the store on startup.
// A fixture that cannot be decoded or loaded aborts startup.
func New(params Params) (*Seeder, error) {
	cfg := params.Config.Seed

	dataset, err := loadConfigured(cfg.Path)
	if err != nil {
		return nil, err
	}

	seeder := NewWithDataset(params.Store, dataset, params.Logger)
	seeder.enabled = cfg.Enabled

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return seeder.EnsureSeeded(ctx)
		},
	})

	return seeder, nil
}

// EnsureSeeded loads the data set if every collection is empty; otherwise it does nothing.
func (s *Seeder) EnsureSeeded(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	empty, err := s.store.IsEmpty(ctx)
	if err != nil {
		return errors.Wrap(err, "check store")
	}
	if !empty {
		return nil
	}

	if err := s.store.Load(ctx, s.dataset); err != nil {
		return errors.Wrap(err, "seed store")
	}

	s.logger.Info("Store seeded",
		slog.Int("devices", len(s.dataset.Devices)),
		slog.Int("sessions", len(s.dataset.Sessions)),
		slog.Int("security_events", len(s.dataset.SecurityEvents)),
		slog.Int("audit_logs", len(s.dataset.AuditLogs)),
		slog.Int("wallet_ledger", len(s.dataset.WalletLedger)),
	)

	return nil
}

// Reset empties the store so the next EnsureSeeded reloads the data set.
func (s *Seeder) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Wrap(s.store.Clear(ctx), "reset store")
}

// Baseline decodes the embedded baseline fixture.
func Baseline() (repository.Dataset, error) {
	raw, err := fixtures.ReadFile(baselineFixture)
	if err != nil {
		return repository.Dataset{}, errors.Wrap(err, "read baseline fixture")
	}

	return Decode(bytes.NewReader(raw))
}

// Decode reads a YAML fixture. Unknown keys are rejected so typos in a
// fixture fail loudly instead of producing half-empty records.
func Decode(r io.Reader) (repository.Dataset, error) {
	var dataset repository.Dataset

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dataset); err != nil && !errors.Is(err, io.EOF) {
		return repository.Dataset{}, errors.Wrap(err, "decode fixture")
	}

	for _, device := range dataset.Devices {
		if err := device.Validate(); err != nil {
			return repository.Dataset{}, errors.Wrapf(err, "fixture device %q", device.ID)
		}
	}

	return dataset, nil
}

func loadConfigured(path string) (repository.Dataset, error) {
	if path == "" {
		return Baseline()
	}

	f, err := os.Open(path)
	if err != nil {
		return repository.Dataset{}, errors.Wrapf(err, "open fixture %s", path)
	}
	defer f.Close()

	dataset, err := Decode(f)
	if err != nil {
		return repository.Dataset{}, errors.Wrapf(err, "fixture %s", path)
	}

	return dataset, nil
}

// Module provides the seeder FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		fx.Annotate(func(s *Seeder) *Seeder { return s }, fx.As(new(service.Seeder))),
	),
)
