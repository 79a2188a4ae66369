package entryrow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// DeleteEntryRowInput represents the input for entry row deletion.
type DeleteEntryRowInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	RowID     uuid.UUID
}

// DeleteEntryRowOutput represents the output of entry row deletion.
type DeleteEntryRowOutput struct {
	Deleted bool
}

// DeleteEntryRowUseCase handles entry row deletion. The repository compacts
// the remaining ranks in the group and cascades to the row's transactions in
// one database transaction.
type DeleteEntryRowUseCase struct {
	gate    *access.Gate
	rowRepo adapter.EntryRowRepository
}

// NewDeleteEntryRowUseCase creates a new DeleteEntryRowUseCase instance.
func NewDeleteEntryRowUseCase(gate *access.Gate, rowRepo adapter.EntryRowRepository) *DeleteEntryRowUseCase {
	return &DeleteEntryRowUseCase{gate: gate, rowRepo: rowRepo}
}

// Execute performs the entry row deletion.
func (uc *DeleteEntryRowUseCase) Execute(ctx context.Context, input DeleteEntryRowInput) (*DeleteEntryRowOutput, error) {
	project, err := uc.gate.RequireEdit(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.rowRepo.FindByID(ctx, input.RowID, project.OwnerID, project.ID); err != nil {
		return nil, domainerror.NewEntryRowError(
			domainerror.ErrCodeEntryRowNotFound,
			"entry row not found",
			domainerror.ErrEntryRowNotFound,
		)
	}

	if err := uc.rowRepo.Delete(ctx, input.RowID); err != nil {
		return nil, fmt.Errorf("failed to delete entry row: %w", err)
	}

	return &DeleteEntryRowOutput{Deleted: true}, nil
}
