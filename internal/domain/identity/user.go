package identity

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// User is reference data for audit trails (createdBy on ledger records).
// Authentication, sessions and role storage live in the external identity
// system; this service only resolves IDs to display names.
type User struct {
	shared.Entity
	shared.SoftDelete
	Username string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Name     string `gorm:"size:255;not null" json:"name"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserRepository provides read access to user reference data
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, int64, error)
}
