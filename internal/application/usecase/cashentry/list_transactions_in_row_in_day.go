package cashentry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
)

// ListTransactionsInRowInDayInput represents the input for the per-day
// transaction listing of one entry row.
type ListTransactionsInRowInDayInput struct {
	UserID          uuid.UUID
	ProjectID       uuid.UUID
	CashEntryRowID  uuid.UUID
	TransactionDate time.Time
}

// ListTransactionsInRowInDayOutput represents the output of the listing.
type ListTransactionsInRowInDayOutput struct {
	Transactions []*entity.CashTransaction
}

// ListTransactionsInRowInDayUseCase handles the per-day transaction listing.
type ListTransactionsInRowInDayUseCase struct {
	gate            *access.Gate
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsInRowInDayUseCase creates a new ListTransactionsInRowInDayUseCase instance.
func NewListTransactionsInRowInDayUseCase(gate *access.Gate, transactionRepo adapter.TransactionRepository) *ListTransactionsInRowInDayUseCase {
	return &ListTransactionsInRowInDayUseCase{gate: gate, transactionRepo: transactionRepo}
}

// Execute performs the per-day transaction listing.
func (uc *ListTransactionsInRowInDayUseCase) Execute(ctx context.Context, input ListTransactionsInRowInDayInput) (*ListTransactionsInRowInDayOutput, error) {
	if _, err := uc.gate.RequireView(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByRowInDay(ctx, input.CashEntryRowID, input.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsInRowInDayOutput{Transactions: transactions}, nil
}
