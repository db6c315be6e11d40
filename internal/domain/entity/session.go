package entity

import "time"

// Session actions written into audit records.
const (
	SessionActionRevoke    = "revoke"
	SessionActionRevokeAll = "revoke_sessions"
)

// Session is an authenticated login of a user on a device. Revoking a session
// removes it from the store permanently.
type Session struct {
	ID         string     `json:"id" yaml:"id"`
	UserID     string     `json:"userId" yaml:"userId"`
	DeviceID   string     `json:"deviceId,omitempty" yaml:"deviceId"`
	IPAddress  string     `json:"ipAddress,omitempty" yaml:"ipAddress"`
	UserAgent  string     `json:"userAgent,omitempty" yaml:"userAgent"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty" yaml:"expiresAt"`
	CreatedAt  time.Time  `json:"createdAt" yaml:"createdAt"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes"`
}

func (s Session) RecordID() string { return s.ID }

func (s Session) RecordCreatedAt() time.Time { return s.CreatedAt }

// Clone returns a copy of s that shares no mutable state with it.
func (s Session) Clone() Session {
	s.ExpiresAt = cloneTime(s.ExpiresAt)
	s.Attributes = CloneAttributes(s.Attributes)

	return s
}

// RevokeAck is returned after a session has been revoked; the session itself no longer exists.
type RevokeAck struct {
	Revoked bool   `json:"revoked"`
	ID      string `json:"id,omitempty"`
	UserID  string `json:"userId,omitempty"`
	Count   int    `json:"count"`
}
