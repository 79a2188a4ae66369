package sharing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// DeleteRecordInput represents the input for revoking a sharing record. The
// owner uses it to remove a recipient; the recipient uses it to leave a
// project or decline a pending invitation.
type DeleteRecordInput struct {
	ActingUserID uuid.UUID
	ProjectID    uuid.UUID
	TargetUserID uuid.UUID
}

// DeleteRecordOutput represents the output of revoking a sharing record.
type DeleteRecordOutput struct {
	Deleted bool
}

// DeleteRecordUseCase handles sharing record revocation.
type DeleteRecordUseCase struct {
	projectRepo adapter.ProjectRepository
	sharingRepo adapter.SharingRepository
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(projectRepo adapter.ProjectRepository, sharingRepo adapter.SharingRepository) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{projectRepo: projectRepo, sharingRepo: sharingRepo}
}

// Execute performs the sharing record revocation.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) (*DeleteRecordOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	if project.OwnerID != input.ActingUserID && input.TargetUserID != input.ActingUserID {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeNotAuthorized,
			domainerror.MsgNotAuthorized,
			domainerror.ErrNotAuthorized,
		)
	}

	if _, err := uc.sharingRepo.FindByUserAndProject(ctx, input.TargetUserID, input.ProjectID); err != nil {
		return nil, domainerror.NewSharingError(
			domainerror.ErrCodeSharingNotFound,
			"sharing record not found",
			domainerror.ErrSharingNotFound,
		)
	}

	if err := uc.sharingRepo.Delete(ctx, input.TargetUserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to delete sharing record: %w", err)
	}

	return &DeleteRecordOutput{Deleted: true}, nil
}
