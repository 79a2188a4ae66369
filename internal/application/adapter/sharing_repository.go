package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
)

// SharingRepository defines the interface for sharing record persistence.
type SharingRepository interface {
	// Create inserts a sharing record unless one already ties the user to
	// the project.
	Create(ctx context.Context, record *entity.Sharing) error

	// FindByUserAndProject retrieves the record tying a user to a project.
	FindByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (*entity.Sharing, error)

	// FindByProject lists all records of one project.
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Sharing, error)

	// CountByProject counts the recipients of one project.
	CountByProject(ctx context.Context, projectID uuid.UUID) (int, error)

	// UpdatePermission sets the permission of an existing record.
	UpdatePermission(ctx context.Context, userID, projectID uuid.UUID, permission entity.Permission) error

	// Delete revokes a user's access to a project.
	Delete(ctx context.Context, userID, projectID uuid.UUID) error

	// FindProjectIDsSharedWith lists the project IDs shared with a user.
	FindProjectIDsSharedWith(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
