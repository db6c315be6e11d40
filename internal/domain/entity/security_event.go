package entity

import "time"

// SecurityEvent severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// SecurityEvent is an append-only record of something security relevant.
type SecurityEvent struct {
	ID          string     `json:"id" yaml:"id"`
	Type        string     `json:"type" yaml:"type"`
	Severity    string     `json:"severity" yaml:"severity"`
	UserID      string     `json:"userId,omitempty" yaml:"userId"`
	Description string     `json:"description,omitempty" yaml:"description"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	Attributes  Attributes `json:"attributes,omitempty" yaml:"attributes"`
}

func (e SecurityEvent) RecordID() string { return e.ID }

func (e SecurityEvent) RecordCreatedAt() time.Time { return e.CreatedAt }

func (e SecurityEvent) Clone() SecurityEvent {
	e.Attributes = CloneAttributes(e.Attributes)

	return e
}
