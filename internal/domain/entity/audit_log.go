package entity

import "time"

// Entity type names written into audit records.
const (
	EntityTypeDevice  = "device"
	EntityTypeSession = "session"
	EntityTypeUser    = "user"
)

// AuditLog records a mutation applied to an entity. Audit rows are append-only.
type AuditLog struct {
	ID         string     `json:"id" yaml:"id"`
	Action     string     `json:"action" yaml:"action"`
	EntityType string     `json:"entityType" yaml:"entityType"`
	EntityID   string     `json:"entityId" yaml:"entityId"`
	ActorID    string     `json:"actorId,omitempty" yaml:"actorId"`
	RequestID  string     `json:"requestId,omitempty" yaml:"requestId"`
	CreatedAt  time.Time  `json:"createdAt" yaml:"createdAt"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes"`
}

func (a AuditLog) RecordID() string { return a.ID }

func (a AuditLog) RecordCreatedAt() time.Time { return a.CreatedAt }

func (a AuditLog) Clone() AuditLog {
	a.Attributes = CloneAttributes(a.Attributes)

	return a
}
