package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/query"
)

// SecurityEventInput is the payload of a new security event
type SecurityEventInput struct {
	Type        string            `json:"type" validate:"required,max=64"`
	Severity    string            `json:"severity" validate:"required,oneof=low medium high critical"`
	UserID      string            `json:"userId" validate:"omitempty,max=128"`
	Description string            `json:"description" validate:"omitempty,max=1024"`
	Attributes  entity.Attributes `json:"attributes"`
}

// SecurityEventUsecase defines the interface for security event use cases
type SecurityEventUsecase interface {
	// ListSecurityEvents returns the filtered events, newest first
	ListSecurityEvents(ctx context.Context, q ListQuery) (query.Page[entity.SecurityEvent], error)

	// CreateSecurityEvent appends a new event
	CreateSecurityEvent(ctx context.Context, input *SecurityEventInput) (*entity.SecurityEvent, error)
}
