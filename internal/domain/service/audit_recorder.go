package service

import (
	"context"
	"time"
)

// AuditEvent describes a mutation that must be appended to the audit log.
type AuditEvent struct {
	RequestID  string         // For request correlation
	ActorID    string         // Admin who performed the mutation, if known
	EntityType string         // entity.EntityTypeDevice, entity.EntityTypeSession, ...
	EntityID   string
	Action     string
	OccurredAt time.Time      // Zero means now
	Details    map[string]any // Optional payload copied into the audit row attributes
}

// AuditRecorder appends immutable audit records for mutations.
type AuditRecorder interface {
	// Record appends one audit entry for event.
	Record(ctx context.Context, event *AuditEvent) error
}
