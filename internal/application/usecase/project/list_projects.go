package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
)

// ListProjectsInput represents the input for listing projects.
type ListProjectsInput struct {
	UserID uuid.UUID
}

// ListProjectsOutput represents the output of listing projects. Own projects
// come first, ordered by initial cash flow date, followed by projects other
// owners shared with the user.
type ListProjectsOutput struct {
	Own    []*entity.CashProject
	Shared []*entity.CashProject
}

// ListProjectsUseCase handles project listing logic.
type ListProjectsUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projectRepo adapter.ProjectRepository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo}
}

// Execute performs the project listing.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	own, err := uc.projectRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	shared, err := uc.projectRepo.FindSharedWith(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared projects: %w", err)
	}

	return &ListProjectsOutput{Own: own, Shared: shared}, nil
}
