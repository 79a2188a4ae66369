package cashentry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// MsgTransactionRemoved is returned after a successful deletion.
const MsgTransactionRemoved = "Cash transaction was removed"

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	ProjectID     uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Message string
}

// DeleteTransactionUseCase handles transaction deletion. Deleting a
// recurrence parent removes its instances as well; deleting an instance or
// standalone transaction removes only itself.
type DeleteTransactionUseCase struct {
	gate            *access.Gate
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(gate *access.Gate, transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{gate: gate, transactionRepo: transactionRepo}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	project, err := uc.gate.RequireEdit(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, project.OwnerID, project.ID); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"cash transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	return &DeleteTransactionOutput{Message: MsgTransactionRemoved}, nil
}
