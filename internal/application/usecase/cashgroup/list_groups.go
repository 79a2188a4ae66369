package cashgroup

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
)

// ListGroupsInput represents the input for listing a project's groups. A
// non-empty GroupType restricts the listing to that type.
type ListGroupsInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	GroupType entity.GroupType
}

// ListGroupsOutput represents the output of listing groups, ordered by rank.
type ListGroupsOutput struct {
	Groups []*entity.CashGroup
}

// ListGroupsUseCase handles cash group listing logic.
type ListGroupsUseCase struct {
	gate      *access.Gate
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(gate *access.Gate, groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{gate: gate, groupRepo: groupRepo}
}

// Execute performs the group listing.
func (uc *ListGroupsUseCase) Execute(ctx context.Context, input ListGroupsInput) (*ListGroupsOutput, error) {
	project, err := uc.gate.RequireView(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	groups, err := uc.groupRepo.FindByProject(ctx, project.OwnerID, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	if input.GroupType == "" {
		return &ListGroupsOutput{Groups: groups}, nil
	}

	filtered := make([]*entity.CashGroup, 0, len(groups))
	for _, group := range groups {
		if group.GroupType == input.GroupType {
			filtered = append(filtered, group)
		}
	}
	return &ListGroupsOutput{Groups: filtered}, nil
}
