package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the embedded base for all persisted entities
type Entity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// NewEntity creates a base entity with a fresh ID and timestamps
func NewEntity() Entity {
	now := time.Now()
	return Entity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp
func (e *Entity) Touch() {
	e.UpdatedAt = time.Now()
}

// SoftDelete is the embedded base for soft-deletable master data.
// A soft-deleted row is excluded from listings and from new transactions but
// its denormalized name fields remain intact on historical records.
type SoftDelete struct {
	DeletedAt *time.Time `gorm:"index" json:"deletedAt,omitempty"`
	DeletedBy *uuid.UUID `gorm:"type:uuid" json:"deletedBy,omitempty"`
}

// IsDeleted reports whether the entity has been soft-deleted
func (s SoftDelete) IsDeleted() bool {
	return s.DeletedAt != nil
}

// MarkDeleted soft-deletes the entity, recording who deleted it
func (s *SoftDelete) MarkDeleted(by uuid.UUID) {
	now := time.Now()
	s.DeletedAt = &now
	s.DeletedBy = &by
}
