package sharing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// UpdatePermissionInput represents the input for a permission change. The
// owner uses it to switch a recipient between view and edit; the recipient
// uses it to approve a pending invitation.
type UpdatePermissionInput struct {
	ActingUserID uuid.UUID
	ProjectID    uuid.UUID
	TargetUserID uuid.UUID
	Permission   entity.Permission
}

// UpdatePermissionOutput represents the output of a permission change.
type UpdatePermissionOutput struct {
	Record *entity.Sharing
}

// UpdatePermissionUseCase handles sharing permission changes.
type UpdatePermissionUseCase struct {
	projectRepo adapter.ProjectRepository
	sharingRepo adapter.SharingRepository
}

// NewUpdatePermissionUseCase creates a new UpdatePermissionUseCase instance.
func NewUpdatePermissionUseCase(projectRepo adapter.ProjectRepository, sharingRepo adapter.SharingRepository) *UpdatePermissionUseCase {
	return &UpdatePermissionUseCase{projectRepo: projectRepo, sharingRepo: sharingRepo}
}

// Execute performs the permission change.
func (uc *UpdatePermissionUseCase) Execute(ctx context.Context, input UpdatePermissionInput) (*UpdatePermissionOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	// Only the owner or the targeted recipient may change the record.
	if project.OwnerID != input.ActingUserID && input.TargetUserID != input.ActingUserID {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeNotAuthorized,
			domainerror.MsgNotAuthorized,
			domainerror.ErrNotAuthorized,
		)
	}

	record, err := uc.sharingRepo.FindByUserAndProject(ctx, input.TargetUserID, input.ProjectID)
	if err != nil {
		return nil, domainerror.NewSharingError(
			domainerror.ErrCodeSharingNotFound,
			"sharing record not found",
			domainerror.ErrSharingNotFound,
		)
	}

	if err := uc.sharingRepo.UpdatePermission(ctx, input.TargetUserID, input.ProjectID, input.Permission); err != nil {
		return nil, fmt.Errorf("failed to update permission: %w", err)
	}

	record.Permission = input.Permission
	return &UpdatePermissionOutput{Record: record}, nil
}
