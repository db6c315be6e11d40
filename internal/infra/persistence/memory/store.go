package memory

import (
	"context"
	"sync"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"

	"github.com/pkg/errors"
)

// Collection names.
const (
	CollectionDevices        = "devices"
	CollectionSessions       = "sessions"
	CollectionSecurityEvents = "security_events"
	CollectionAuditLogs      = "audit_logs"
	CollectionWalletLedger   = "wallet_ledger"
)

var _ repository.StoreManager = (*Store)(nil)

// Store owns every collection of the dashboard. It is constructed once per
// process and injected wherever a repository is needed.
type Store struct {
	mu sync.Mutex // serializes Load, Clear and IsEmpty across collections

	devices        *Collection[entity.Device]
	sessions       *Collection[entity.Session]
	securityEvents *Collection[entity.SecurityEvent]
	auditLogs      *Collection[entity.AuditLog]
	walletLedger   *Collection[entity.WalletLedgerEntry]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		devices:        NewCollection[entity.Device](CollectionDevices),
		sessions:       NewCollection[entity.Session](CollectionSessions),
		securityEvents: NewCollection[entity.SecurityEvent](CollectionSecurityEvents),
		auditLogs:      NewCollection[entity.AuditLog](CollectionAuditLogs),
		walletLedger:   NewCollection[entity.WalletLedgerEntry](CollectionWalletLedger),
	}
}

// IsEmpty reports whether every collection is empty.
func (s *Store) IsEmpty(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sizeLocked() == 0, nil
}

// Sizes returns the record count of each collection keyed by collection name.
func (s *Store) Sizes() map[string]int {
	return map[string]int{
		CollectionDevices:        s.devices.Len(),
		CollectionSessions:       s.sessions.Len(),
		CollectionSecurityEvents: s.securityEvents.Len(),
		CollectionAuditLogs:      s.auditLogs.Len(),
		CollectionWalletLedger:   s.walletLedger.Len(),
	}
}

// Load appends dataset to the store, rolling back every collection it already
// touched when a later one rejects its records.
func (s *Store) Load(_ context.Context, dataset repository.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rollbacks []func()

	steps := []func() (func(), error){
		loadStep(s.devices, dataset.Devices),
		loadStep(s.sessions, dataset.Sessions),
		loadStep(s.securityEvents, dataset.SecurityEvents),
		loadStep(s.auditLogs, dataset.AuditLogs),
		loadStep(s.walletLedger, dataset.WalletLedger),
	}

	for _, step := range steps {
		rollback, err := step()
		if err != nil {
			for _, undo := range rollbacks {
				undo()
			}

			return errors.Wrap(err, "load dataset")
		}
		rollbacks = append(rollbacks, rollback)
	}

	return nil
}

// Clear removes every record from every collection.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.devices.Clear()
	s.sessions.Clear()
	s.securityEvents.Clear()
	s.auditLogs.Clear()
	s.walletLedger.Clear()

	return nil
}

func (s *Store) sizeLocked() int {
	total := 0
	for _, n := range s.Sizes() {
		total += n
	}

	return total
}

func loadStep[T entity.Entity[T]](c *Collection[T], items []T) func() (func(), error) {
	return func() (func(), error) {
		if err := c.AppendAll(items); err != nil {
			return nil, err
		}

		ids := make(map[string]struct{}, len(items))
		for _, item := range items {
			ids[item.RecordID()] = struct{}{}
		}

		return func() {
			c.RemoveFunc(func(item T) bool {
				_, ok := ids[item.RecordID()]

				return ok
			})
		}, nil
	}
}
