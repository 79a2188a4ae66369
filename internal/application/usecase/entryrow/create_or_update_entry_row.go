// Package entryrow contains cash entry row use cases.
package entryrow

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

// CreateOrUpdateEntryRowInput represents the input for entry row creation or
// update. A nil ID creates a new row at the end of its group; a non-nil ID
// updates an existing one, optionally swapping it one rank in Direction.
type CreateOrUpdateEntryRowInput struct {
	ID          *uuid.UUID
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	CashGroupID uuid.UUID
	Name        string
	DisplayMode entity.DisplayMode
	Direction   ranking.Direction // optional, update only
}

// CreateOrUpdateEntryRowOutput represents the output of entry row creation or update.
type CreateOrUpdateEntryRowOutput struct {
	Row *entity.CashEntryRow
}

// CreateOrUpdateEntryRowUseCase handles entry row creation and update logic,
// including the permission gate, the subscription limit gate on create, the
// name uniqueness check within the group, and the display mode propagation
// onto the row's transactions.
type CreateOrUpdateEntryRowUseCase struct {
	gate            *access.Gate
	rowRepo         adapter.EntryRowRepository
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
}

// NewCreateOrUpdateEntryRowUseCase creates a new CreateOrUpdateEntryRowUseCase instance.
func NewCreateOrUpdateEntryRowUseCase(
	gate *access.Gate,
	rowRepo adapter.EntryRowRepository,
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
) *CreateOrUpdateEntryRowUseCase {
	return &CreateOrUpdateEntryRowUseCase{
		gate:            gate,
		rowRepo:         rowRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// Execute performs the entry row creation or update.
func (uc *CreateOrUpdateEntryRowUseCase) Execute(ctx context.Context, input CreateOrUpdateEntryRowInput) (*CreateOrUpdateEntryRowOutput, error) {
	project, err := uc.gate.RequireEdit(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if input.ID == nil {
		return uc.create(ctx, project, input)
	}
	return uc.update(ctx, project, input)
}

func (uc *CreateOrUpdateEntryRowUseCase) create(ctx context.Context, project *entity.CashProject, input CreateOrUpdateEntryRowInput) (*CreateOrUpdateEntryRowOutput, error) {
	owner, err := uc.userRepo.FindByID(ctx, project.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project owner: %w", err)
	}

	count, err := uc.rowRepo.CountByGroup(ctx, input.CashGroupID, project.OwnerID, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entry rows: %w", err)
	}
	if !plan.AllowsRow(owner.ActiveSubscription, count) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeSubscriptionLimit,
			domainerror.MsgUpgradeSubscription,
			domainerror.ErrSubscriptionLimit,
		)
	}

	exists, err := uc.rowRepo.NameExists(ctx, input.CashGroupID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check entry row name: %w", err)
	}
	if exists {
		return nil, domainerror.NewEntryRowError(
			domainerror.ErrCodeEntryRowNameExists,
			"an entry row with this name already exists",
			domainerror.ErrEntryRowNameExists,
		)
	}

	row := entity.NewCashEntryRow(project.ID, project.OwnerID, input.CashGroupID, input.Name, input.DisplayMode)

	if err := uc.rowRepo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create entry row: %w", err)
	}

	return &CreateOrUpdateEntryRowOutput{Row: row}, nil
}

func (uc *CreateOrUpdateEntryRowUseCase) update(ctx context.Context, project *entity.CashProject, input CreateOrUpdateEntryRowInput) (*CreateOrUpdateEntryRowOutput, error) {
	row, err := uc.rowRepo.FindByID(ctx, *input.ID, project.OwnerID, project.ID)
	if err != nil {
		return nil, domainerror.NewEntryRowError(
			domainerror.ErrCodeEntryRowNotFound,
			"entry row not found",
			domainerror.ErrEntryRowNotFound,
		)
	}

	if input.Name != row.Name {
		exists, err := uc.rowRepo.NameExists(ctx, row.CashGroupID, input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check entry row name: %w", err)
		}
		if exists {
			return nil, domainerror.NewEntryRowError(
				domainerror.ErrCodeEntryRowNameExists,
				"an entry row with this name already exists",
				domainerror.ErrEntryRowNameExists,
			)
		}
	}

	modeChanged := input.DisplayMode != "" && input.DisplayMode != row.DisplayMode

	row.Name = input.Name
	if input.DisplayMode != "" {
		row.DisplayMode = input.DisplayMode
	}
	row.UpdatedAt = time.Now().UTC()

	if err := uc.rowRepo.Update(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to update entry row: %w", err)
	}

	// Archiving or restoring a row carries its transactions along.
	if modeChanged {
		if err := uc.transactionRepo.UpdateDisplayModeByRow(ctx, row.ID, row.DisplayMode); err != nil {
			return nil, fmt.Errorf("failed to propagate display mode: %w", err)
		}
	}

	if _, moved := ranking.SwapTarget(row.RankOrder, input.Direction); moved {
		if err := uc.rowRepo.Reorder(ctx, row, input.Direction); err != nil {
			return nil, fmt.Errorf("failed to reorder entry row: %w", err)
		}
	}

	return &CreateOrUpdateEntryRowOutput{Row: row}, nil
}
