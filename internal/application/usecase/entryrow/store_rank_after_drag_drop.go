package entryrow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/domain/ranking"
)

// StoreRankAfterDragDropInput represents the input for a drag-and-drop
// reorder. OrderedRowIDs is the full list of one group's row IDs in the
// order the user dropped them.
type StoreRankAfterDragDropInput struct {
	UserID        uuid.UUID
	ProjectID     uuid.UUID
	OrderedRowIDs []uuid.UUID
}

// StoreRankAfterDragDropOutput represents the output of a drag-and-drop reorder.
type StoreRankAfterDragDropOutput struct {
	Updated int
}

// StoreRankAfterDragDropUseCase persists the rank sequence produced by a
// drag-and-drop: position i in the dropped list becomes rank i+1.
type StoreRankAfterDragDropUseCase struct {
	gate    *access.Gate
	rowRepo adapter.EntryRowRepository
}

// NewStoreRankAfterDragDropUseCase creates a new StoreRankAfterDragDropUseCase instance.
func NewStoreRankAfterDragDropUseCase(gate *access.Gate, rowRepo adapter.EntryRowRepository) *StoreRankAfterDragDropUseCase {
	return &StoreRankAfterDragDropUseCase{gate: gate, rowRepo: rowRepo}
}

// Execute performs the drag-and-drop reorder.
func (uc *StoreRankAfterDragDropUseCase) Execute(ctx context.Context, input StoreRankAfterDragDropInput) (*StoreRankAfterDragDropOutput, error) {
	if _, err := uc.gate.RequireEdit(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, err
	}

	if len(input.OrderedRowIDs) == 0 {
		return nil, domainerror.NewEntryRowError(
			domainerror.ErrCodeEmptyRankList,
			"rank list cannot be empty",
			domainerror.ErrEmptyRankList,
		)
	}

	assignments := ranking.AssignSequential(input.OrderedRowIDs)
	if err := uc.rowRepo.UpdateRanks(ctx, assignments); err != nil {
		return nil, fmt.Errorf("failed to store ranks: %w", err)
	}

	return &StoreRankAfterDragDropOutput{Updated: len(assignments)}, nil
}
