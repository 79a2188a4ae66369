package entity

import (
	"github.com/google/uuid"
)

// Permission is the access level a sharing record grants on a project.
type Permission string

const (
	PermissionView    Permission = "VIEW"
	PermissionEdit    Permission = "EDIT"
	PermissionPending Permission = "PENDING"
)

// Sharing ties a non-owner user to a project with a permission level.
// Owners are never represented by a sharing record.
type Sharing struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	UserID     uuid.UUID
	Permission Permission
}

// NewSharing creates a sharing record. Invitations start out PENDING until
// the recipient approves or declines them.
func NewSharing(projectID, userID uuid.UUID) *Sharing {
	return &Sharing{
		ID:         uuid.New(),
		ProjectID:  projectID,
		UserID:     userID,
		Permission: PermissionPending,
	}
}

// FormatPermission renders a permission as user-facing text.
func FormatPermission(p Permission) string {
	switch p {
	case PermissionView:
		return "Can view"
	case PermissionEdit:
		return "Can edit"
	default:
		return "Pending"
	}
}
