package valueobjects

import "time"

// EntityMetadata carries the audit trail and the optimistic-lock version
// of every aggregate.
//
// It is an immutable value: mutating an entity produces a new metadata
// with Version+1 and a refreshed UpdatedAt. Version starts at 1 and the
// repositories condition writes on the previous value.

type EntityMetadata struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	Version   int       `json:"version"`
}

func NewEntityMetadata(actor string) EntityMetadata {
	now := time.Now().UTC()
	return EntityMetadata{
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actor,
		UpdatedBy: actor,
		Version:   1,
	}
}

// Touch returns a copy with Version+1 and UpdatedAt refreshed.
// UpdatedAt never goes below CreatedAt, even across clock adjustments.
func (m EntityMetadata) Touch(actor string) EntityMetadata {
	now := time.Now().UTC()
	if now.Before(m.CreatedAt) {
		now = m.CreatedAt
	}
	next := m
	next.UpdatedAt = now
	if actor != "" {
		next.UpdatedBy = actor
	}
	next.Version++
	return next
}
