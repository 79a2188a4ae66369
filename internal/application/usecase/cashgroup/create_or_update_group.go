// Package cashgroup contains cash group use cases.
package cashgroup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/domain/plan"
	"github.com/cashgps/backend/internal/domain/ranking"
)

// CreateOrUpdateGroupInput represents the input for cash group creation or
// update. A nil ID creates a new group at the end of its scope; a non-nil ID
// updates an existing one, optionally swapping it one rank in Direction.
type CreateOrUpdateGroupInput struct {
	ID          *uuid.UUID
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	GroupType   entity.GroupType
	DisplayMode entity.DisplayMode
	Direction   ranking.Direction // optional, update only
}

// CreateOrUpdateGroupOutput represents the output of cash group creation or update.
type CreateOrUpdateGroupOutput struct {
	Group *entity.CashGroup
}

// CreateOrUpdateGroupUseCase handles cash group creation and update logic,
// including the permission gate, the subscription limit gate on create, and
// the name uniqueness check within the (project, group type) scope.
type CreateOrUpdateGroupUseCase struct {
	gate      *access.Gate
	groupRepo adapter.GroupRepository
	userRepo  adapter.UserRepository
}

// NewCreateOrUpdateGroupUseCase creates a new CreateOrUpdateGroupUseCase instance.
func NewCreateOrUpdateGroupUseCase(
	gate *access.Gate,
	groupRepo adapter.GroupRepository,
	userRepo adapter.UserRepository,
) *CreateOrUpdateGroupUseCase {
	return &CreateOrUpdateGroupUseCase{
		gate:      gate,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the cash group creation or update.
func (uc *CreateOrUpdateGroupUseCase) Execute(ctx context.Context, input CreateOrUpdateGroupInput) (*CreateOrUpdateGroupOutput, error) {
	project, err := uc.gate.RequireEdit(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if !entity.IsValidGroupType(input.GroupType) {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeInvalidGroupType,
			"group type must be 'IN' or 'OUT'",
			domainerror.ErrInvalidGroupType,
		)
	}

	if input.ID == nil {
		return uc.create(ctx, project, input)
	}
	return uc.update(ctx, project, input)
}

func (uc *CreateOrUpdateGroupUseCase) create(ctx context.Context, project *entity.CashProject, input CreateOrUpdateGroupInput) (*CreateOrUpdateGroupOutput, error) {
	// Limits always follow the project owner's plan, also when an invited
	// editor performs the insert.
	owner, err := uc.userRepo.FindByID(ctx, project.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project owner: %w", err)
	}

	count, err := uc.groupRepo.CountByType(ctx, project.OwnerID, project.ID, input.GroupType)
	if err != nil {
		return nil, fmt.Errorf("failed to count groups: %w", err)
	}
	if !plan.AllowsGroup(owner.ActiveSubscription, count) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeSubscriptionLimit,
			domainerror.MsgUpgradeSubscription,
			domainerror.ErrSubscriptionLimit,
		)
	}

	exists, err := uc.groupRepo.NameExists(ctx, project.OwnerID, project.ID, input.GroupType, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check group name: %w", err)
	}
	if exists {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNameExists,
			"a group with this name already exists",
			domainerror.ErrGroupNameExists,
		)
	}

	group := entity.NewCashGroup(project.ID, project.OwnerID, input.Name, input.GroupType, input.DisplayMode)

	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return &CreateOrUpdateGroupOutput{Group: group}, nil
}

func (uc *CreateOrUpdateGroupUseCase) update(ctx context.Context, project *entity.CashProject, input CreateOrUpdateGroupInput) (*CreateOrUpdateGroupOutput, error) {
	group, err := uc.groupRepo.FindByID(ctx, *input.ID, project.OwnerID, project.ID)
	if err != nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNotFound,
			"cash group not found",
			domainerror.ErrGroupNotFound,
		)
	}

	if input.Name != group.Name {
		exists, err := uc.groupRepo.NameExists(ctx, project.OwnerID, project.ID, group.GroupType, input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check group name: %w", err)
		}
		if exists {
			return nil, domainerror.NewGroupError(
				domainerror.ErrCodeGroupNameExists,
				"a group with this name already exists",
				domainerror.ErrGroupNameExists,
			)
		}
	}

	group.Name = input.Name
	if input.DisplayMode != "" {
		group.DisplayMode = input.DisplayMode
	}
	group.UpdatedAt = time.Now().UTC()

	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	if _, moved := ranking.SwapTarget(group.RankOrder, input.Direction); moved {
		if err := uc.groupRepo.Reorder(ctx, group, input.Direction); err != nil {
			return nil, fmt.Errorf("failed to reorder group: %w", err)
		}
	}

	return &CreateOrUpdateGroupOutput{Group: group}, nil
}
