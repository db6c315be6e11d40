package entity

import (
	"time"

	"dashboard/internal/errors"
)

// Trust score bounds and the increment applied by a single trust action.
const (
	MinTrustScore  = 0
	MaxTrustScore  = 100
	TrustScoreStep = 10
)

// Device actions accepted by the device mutation endpoint.
const (
	DeviceActionBlock   = "block"
	DeviceActionUnblock = "unblock"
	DeviceActionTrust   = "trust"
)

// Device represents a user's device known to the dashboard.
type Device struct {
	ID         string     `json:"id" yaml:"id"`
	UserID     string     `json:"userId" yaml:"userId"`
	Name       string     `json:"name" yaml:"name"`
	Platform   string     `json:"platform" yaml:"platform"`
	Blocked    bool       `json:"blocked" yaml:"blocked"`
	TrustScore int        `json:"trustScore" yaml:"trustScore"` // Always within [MinTrustScore, MaxTrustScore].
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty" yaml:"lastSeenAt"`
	CreatedAt  time.Time  `json:"createdAt" yaml:"createdAt"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes"`
}

func (d Device) RecordID() string { return d.ID }

func (d Device) RecordCreatedAt() time.Time { return d.CreatedAt }

// Clone returns a copy of d that shares no mutable state with it.
func (d Device) Clone() Device {
	d.LastSeenAt = cloneTime(d.LastSeenAt)
	d.Attributes = CloneAttributes(d.Attributes)

	return d
}

// Validate reports a trust score outside [MinTrustScore, MaxTrustScore].
func (d Device) Validate() error {
	if d.TrustScore < MinTrustScore || d.TrustScore > MaxTrustScore {
		return errors.Errorf("trust score %d outside [%d, %d]", d.TrustScore, MinTrustScore, MaxTrustScore)
	}

	return nil
}

// Trust raises the trust score by TrustScoreStep, never past MaxTrustScore.
func (d *Device) Trust() {
	d.TrustScore = ClampTrustScore(d.TrustScore + TrustScoreStep)
}

// ClampTrustScore constrains score to [MinTrustScore, MaxTrustScore].
func ClampTrustScore(score int) int {
	return min(max(score, MinTrustScore), MaxTrustScore)
}
