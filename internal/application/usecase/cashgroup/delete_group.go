package cashgroup

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// DeleteGroupInput represents the input for cash group deletion.
type DeleteGroupInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	GroupID   uuid.UUID
}

// DeleteGroupOutput represents the output of cash group deletion.
type DeleteGroupOutput struct {
	Deleted bool
}

// DeleteGroupUseCase handles cash group deletion. The repository compacts the
// remaining ranks in the group's scope and cascades to the group's entry
// rows and transactions in one database transaction.
type DeleteGroupUseCase struct {
	gate      *access.Gate
	groupRepo adapter.GroupRepository
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(gate *access.Gate, groupRepo adapter.GroupRepository) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{gate: gate, groupRepo: groupRepo}
}

// Execute performs the cash group deletion.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, input DeleteGroupInput) (*DeleteGroupOutput, error) {
	project, err := uc.gate.RequireEdit(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.groupRepo.FindByID(ctx, input.GroupID, project.OwnerID, project.ID); err != nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNotFound,
			"cash group not found",
			domainerror.ErrGroupNotFound,
		)
	}

	if err := uc.groupRepo.Delete(ctx, input.GroupID); err != nil {
		return nil, fmt.Errorf("failed to delete group: %w", err)
	}

	return &DeleteGroupOutput{Deleted: true}, nil
}
