package entryrow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
)

// ListEntryRowsInput represents the input for listing a group's rows.
type ListEntryRowsInput struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	CashGroupID uuid.UUID
}

// ListEntryRowsOutput represents the output of listing rows, ordered by rank.
type ListEntryRowsOutput struct {
	Rows []*entity.CashEntryRow
}

// ListEntryRowsUseCase handles entry row listing logic.
type ListEntryRowsUseCase struct {
	gate    *access.Gate
	rowRepo adapter.EntryRowRepository
}

// NewListEntryRowsUseCase creates a new ListEntryRowsUseCase instance.
func NewListEntryRowsUseCase(gate *access.Gate, rowRepo adapter.EntryRowRepository) *ListEntryRowsUseCase {
	return &ListEntryRowsUseCase{gate: gate, rowRepo: rowRepo}
}

// Execute performs the entry row listing.
func (uc *ListEntryRowsUseCase) Execute(ctx context.Context, input ListEntryRowsInput) (*ListEntryRowsOutput, error) {
	project, err := uc.gate.RequireView(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.rowRepo.FindByGroup(ctx, input.CashGroupID, project.OwnerID, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry rows: %w", err)
	}

	return &ListEntryRowsOutput{Rows: rows}, nil
}
