package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/domain/entity"
)

// TransactionFields carries the mutable fields of a cash transaction upsert.
type TransactionFields struct {
	Description     string
	DisplayMode     entity.DisplayMode
	TransactionDate time.Time
	Value           decimal.Decimal
	EstimatedValue  decimal.Decimal
	Frequency       *entity.Frequency
	FrequencyStopAt *time.Time
}

// TransactionRepository defines the interface for cash transaction
// persistence operations used by the recurring-transaction engine.
type TransactionRepository interface {
	// Create inserts a single transaction.
	Create(ctx context.Context, transaction *entity.CashTransaction) error

	// CreateBatch inserts several transactions in one transaction.
	CreateBatch(ctx context.Context, transactions []*entity.CashTransaction) error

	// FindByID retrieves a transaction scoped to its owner and project.
	FindByID(ctx context.Context, id, ownerID, projectID uuid.UUID) (*entity.CashTransaction, error)

	// FindChildren lists the recurrence instances linked to a parent.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.CashTransaction, error)

	// FindByRow lists a row's transactions ordered by date then creation time.
	FindByRow(ctx context.Context, cashEntryRowID, cashGroupID, ownerID, projectID uuid.UUID) ([]*entity.CashTransaction, error)

	// FindByRowInDay lists a row's transactions on one date.
	FindByRowInDay(ctx context.Context, cashEntryRowID uuid.UUID, date time.Time) ([]*entity.CashTransaction, error)

	// Update overwrites the mutable fields of a transaction.
	Update(ctx context.Context, id uuid.UUID, fields TransactionFields) error

	// DetachAndUpdate overwrites the mutable fields and clears the parent
	// link, making a former recurrence instance independent.
	DetachAndUpdate(ctx context.Context, id uuid.UUID, fields TransactionFields) error

	// PropagateToChildren copies the non-date fields onto every child of the
	// parent, clearing the children's recurrence fields.
	PropagateToChildren(ctx context.Context, parentID uuid.UUID, fields TransactionFields) error

	// ReplaceChildren atomically deletes the parent's children, updates the
	// parent, and inserts the replacement rows.
	ReplaceChildren(ctx context.Context, parentID uuid.UUID, parentFields TransactionFields, children []*entity.CashTransaction) error

	// Delete removes a transaction and, when it is a recurrence parent,
	// all of its children, atomically.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateDisplayModeByRow propagates a row's display mode to its transactions.
	UpdateDisplayModeByRow(ctx context.Context, cashEntryRowID uuid.UUID, mode entity.DisplayMode) error

	// ScaleValues multiplies value and estimated value of every transaction
	// in the project by the rate, as one bulk statement per column.
	ScaleValues(ctx context.Context, ownerID, projectID uuid.UUID, rate decimal.Decimal) error
}
