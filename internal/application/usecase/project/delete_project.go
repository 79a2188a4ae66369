package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	OwnerID   uuid.UUID
	ProjectID uuid.UUID
}

// DeleteProjectOutput represents the output of project deletion.
type DeleteProjectOutput struct {
	Deleted bool
}

// DeleteProjectUseCase handles project deletion. Only the owner may delete a
// project; the repository cascades to groups, entry rows, transactions, and
// sharing records in one database transaction.
type DeleteProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(projectRepo adapter.ProjectRepository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: projectRepo}
}

// Execute performs the project deletion.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) (*DeleteProjectOutput, error) {
	if _, err := uc.projectRepo.FindByIDAndOwner(ctx, input.ProjectID, input.OwnerID); err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	if err := uc.projectRepo.Delete(ctx, input.ProjectID, input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	return &DeleteProjectOutput{Deleted: true}, nil
}
