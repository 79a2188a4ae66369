// Package access implements the per-project permission gate applied before
// mutations and reads of a project's sub-resources.
package access

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// Gate resolves whether a user may act on a project. The owner is always
// allowed; any other user needs a sharing record with a sufficient
// permission. The owner branch is explicit: owners are never represented in
// the sharing table.
type Gate struct {
	projectRepo adapter.ProjectRepository
	sharingRepo adapter.SharingRepository
}

// NewGate creates a new permission gate.
func NewGate(projectRepo adapter.ProjectRepository, sharingRepo adapter.SharingRepository) *Gate {
	return &Gate{
		projectRepo: projectRepo,
		sharingRepo: sharingRepo,
	}
}

// RequireEdit ensures the user may mutate the project's sub-resources and
// returns the project so callers can resolve the owning scope.
func (g *Gate) RequireEdit(ctx context.Context, userID, projectID uuid.UUID) (*entity.CashProject, error) {
	return g.require(ctx, userID, projectID, func(p entity.Permission) bool {
		return p == entity.PermissionEdit
	})
}

// RequireView ensures the user may read the project's sub-resources.
// EDIT implies VIEW; PENDING grants nothing.
func (g *Gate) RequireView(ctx context.Context, userID, projectID uuid.UUID) (*entity.CashProject, error) {
	return g.require(ctx, userID, projectID, func(p entity.Permission) bool {
		return p == entity.PermissionEdit || p == entity.PermissionView
	})
}

func (g *Gate) require(
	ctx context.Context,
	userID, projectID uuid.UUID,
	sufficient func(entity.Permission) bool,
) (*entity.CashProject, error) {
	project, err := g.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNotFound,
				"project not found",
				err,
			)
		}
		return nil, err
	}

	if project.OwnerID == userID {
		return project, nil
	}

	record, err := g.sharingRepo.FindByUserAndProject(ctx, userID, projectID)
	if err != nil || !sufficient(record.Permission) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeNotAuthorized,
			domainerror.MsgNotAuthorized,
			domainerror.ErrNotAuthorized,
		)
	}

	return project, nil
}
