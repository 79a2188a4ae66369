// Package cashentry contains the cash transaction use cases, including the
// recurring-transaction engine that resolves upserts of recurrence parents
// and their generated instances.
package cashentry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// Upsert result messages.
const (
	MsgTransactionInserted = "Transaction was inserted"
	MsgTransactionUpdated  = "Transaction was updated"
)

// EntryPayload is one element of an upsert request. The first payload targets
// the existing transaction (update) or becomes the head row (insert); the
// tail payloads describe recurrence instances or exceptions.
type EntryPayload struct {
	ID              *uuid.UUID
	CashGroupID     uuid.UUID
	CashEntryRowID  uuid.UUID
	Description     string
	DisplayMode     entity.DisplayMode
	TransactionDate time.Time
	Value           decimal.Decimal
	EstimatedValue  decimal.Decimal
	Frequency       *entity.Frequency
	FrequencyStopAt *time.Time
}

// UpsertCashEntryInput represents the input of a cash entry upsert.
type UpsertCashEntryInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	Entries   []EntryPayload
}

// UpsertCashEntryOutput represents the output of a cash entry upsert.
type UpsertCashEntryOutput struct {
	Message string
	Head    *entity.CashTransaction
}

// UpsertCashEntryUseCase resolves an upsert request into a consistent set of
// persisted rows given the existing state of the target transaction.
//
// The existing transaction's role is classified once, and the transition is
// picked from it:
//   - a recurrence instance updated alone is detached from its parent and
//     becomes standalone;
//   - a standalone transaction gets a plain field update;
//   - a recurrence parent whose frequency is unchanged but whose value
//     changed propagates the non-date fields to its instances (fast path);
//   - any other parent update re-expands: the instances are deleted, the
//     parent is updated, and the payload tail is inserted as the new
//     instance set, all in one database transaction.
type UpsertCashEntryUseCase struct {
	gate            *access.Gate
	transactionRepo adapter.TransactionRepository
	rowRepo         adapter.EntryRowRepository
}

// NewUpsertCashEntryUseCase creates a new UpsertCashEntryUseCase instance.
func NewUpsertCashEntryUseCase(
	gate *access.Gate,
	transactionRepo adapter.TransactionRepository,
	rowRepo adapter.EntryRowRepository,
) *UpsertCashEntryUseCase {
	return &UpsertCashEntryUseCase{
		gate:            gate,
		transactionRepo: transactionRepo,
		rowRepo:         rowRepo,
	}
}

// Execute performs the cash entry upsert.
func (uc *UpsertCashEntryUseCase) Execute(ctx context.Context, input UpsertCashEntryInput) (*UpsertCashEntryOutput, error) {
	project, err := uc.gate.RequireEdit(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := validatePayload(input.Entries); err != nil {
		return nil, err
	}

	head := input.Entries[0]

	if head.ID != nil {
		existing, err := uc.transactionRepo.FindByID(ctx, *head.ID, project.OwnerID, project.ID)
		if err == nil {
			return uc.update(ctx, project, existing, input.Entries)
		}
	}

	return uc.insert(ctx, project, input.Entries)
}

func validatePayload(entries []EntryPayload) error {
	if len(entries) == 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyUpsertPayload,
			"upsert payload cannot be empty",
			domainerror.ErrEmptyUpsertPayload,
		)
	}
	for _, entry := range entries {
		if entry.Frequency != nil && !entity.IsValidFrequency(*entry.Frequency) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be DAILY, WEEKLY, MONTHLY or ANNUALLY",
				domainerror.ErrInvalidFrequency,
			)
		}
	}
	// Tail payloads are recurrence instances of the head; without a
	// recurrence rule on the head they would be both linked and unruled.
	if len(entries) > 1 && entries[0].Frequency == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInconsistentRecurrence,
			"instance payloads require a recurrence rule on the first entry",
			domainerror.ErrInconsistentRecurrence,
		)
	}
	return nil
}

func (uc *UpsertCashEntryUseCase) update(
	ctx context.Context,
	project *entity.CashProject,
	existing *entity.CashTransaction,
	entries []EntryPayload,
) (*UpsertCashEntryOutput, error) {
	head := entries[0]
	fields := payloadFields(head)

	if len(entries) == 1 {
		switch existing.Role() {
		case entity.RoleRecurrenceInstance:
			// Editing an instance on its own detaches it from its
			// former parent.
			if err := uc.transactionRepo.DetachAndUpdate(ctx, existing.ID, fields); err != nil {
				return nil, fmt.Errorf("failed to detach transaction: %w", err)
			}
			return uc.updated(ctx, project, existing.ID)

		case entity.RoleStandalone:
			if err := uc.transactionRepo.Update(ctx, existing.ID, fields); err != nil {
				return nil, fmt.Errorf("failed to update transaction: %w", err)
			}
			return uc.updated(ctx, project, existing.ID)
		}

		if uc.valueOnlyChange(ctx, existing, head) {
			if err := uc.transactionRepo.PropagateToChildren(ctx, existing.ID, fields); err != nil {
				return nil, fmt.Errorf("failed to propagate to instances: %w", err)
			}
			if err := uc.transactionRepo.Update(ctx, existing.ID, fields); err != nil {
				return nil, fmt.Errorf("failed to update transaction: %w", err)
			}
			return uc.updated(ctx, project, existing.ID)
		}
	}

	// General re-expansion: drop the old instance set, update the parent,
	// insert the payload tail as the new instances.
	children, err := uc.buildTail(ctx, project, existing.ID, existing, entries[1:])
	if err != nil {
		return nil, err
	}
	if err := uc.transactionRepo.ReplaceChildren(ctx, existing.ID, fields, children); err != nil {
		return nil, fmt.Errorf("failed to re-expand recurrence: %w", err)
	}
	return uc.updated(ctx, project, existing.ID)
}

// valueOnlyChange reports whether the fast path applies: the parent has
// instances, the incoming frequency matches the stored one, and the value
// changed.
func (uc *UpsertCashEntryUseCase) valueOnlyChange(ctx context.Context, existing *entity.CashTransaction, head EntryPayload) bool {
	if head.Frequency == nil || existing.Frequency == nil || *head.Frequency != *existing.Frequency {
		return false
	}
	if head.Value.Equal(existing.Value) {
		return false
	}
	children, err := uc.transactionRepo.FindChildren(ctx, existing.ID)
	return err == nil && len(children) > 0
}

func (uc *UpsertCashEntryUseCase) insert(
	ctx context.Context,
	project *entity.CashProject,
	entries []EntryPayload,
) (*UpsertCashEntryOutput, error) {
	head := entries[0]

	parent, err := uc.buildTransaction(ctx, project, head, nil)
	if err != nil {
		return nil, err
	}
	if head.ID != nil {
		parent.ID = *head.ID
	}

	tail, err := uc.buildTail(ctx, project, parent.ID, parent, entries[1:])
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.CreateBatch(ctx, append([]*entity.CashTransaction{parent}, tail...)); err != nil {
		return nil, fmt.Errorf("failed to insert transactions: %w", err)
	}

	return &UpsertCashEntryOutput{Message: MsgTransactionInserted, Head: parent}, nil
}

// buildTail turns the payload tail into instance rows. Each row links back to
// the parent unless it carries its own recurrence rule, in which case it is a
// parent in its own right.
func (uc *UpsertCashEntryUseCase) buildTail(
	ctx context.Context,
	project *entity.CashProject,
	parentID uuid.UUID,
	parent *entity.CashTransaction,
	tail []EntryPayload,
) ([]*entity.CashTransaction, error) {
	rows := make([]*entity.CashTransaction, 0, len(tail))
	for _, payload := range tail {
		if payload.CashEntryRowID == uuid.Nil {
			payload.CashEntryRowID = parent.CashEntryRowID
		}
		transaction, err := uc.buildTransaction(ctx, project, payload, &parentID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, transaction)
	}
	return rows, nil
}

// buildTransaction materializes one payload. The owning cash group is
// resolved through the payload's entry row so a payload can never place a
// transaction in a group its row does not belong to.
func (uc *UpsertCashEntryUseCase) buildTransaction(
	ctx context.Context,
	project *entity.CashProject,
	payload EntryPayload,
	parentID *uuid.UUID,
) (*entity.CashTransaction, error) {
	row, err := uc.rowRepo.FindByID(ctx, payload.CashEntryRowID, project.OwnerID, project.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionRowNotFound,
			"entry row of the transaction not found",
			domainerror.ErrEntryRowNotFound,
		)
	}

	displayMode := payload.DisplayMode
	if displayMode == "" {
		displayMode = entity.DisplayModeUsed
	}

	now := time.Now().UTC()
	transaction := &entity.CashTransaction{
		ID:              uuid.New(),
		ProjectID:       project.ID,
		OwnerID:         project.OwnerID,
		CashGroupID:     row.CashGroupID,
		CashEntryRowID:  row.ID,
		Description:     payload.Description,
		DisplayMode:     displayMode,
		TransactionDate: payload.TransactionDate,
		Value:           payload.Value,
		EstimatedValue:  payload.EstimatedValue,
		Frequency:       payload.Frequency,
		FrequencyStopAt: payload.FrequencyStopAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// A payload carrying its own recurrence rule is a parent in its own
	// right and never links back.
	if parentID != nil && payload.Frequency == nil {
		transaction.ParentID = parentID
	}

	if !transaction.IsConsistent() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInconsistentRecurrence,
			"transaction cannot be parent and instance at once",
			domainerror.ErrInconsistentRecurrence,
		)
	}

	return transaction, nil
}

func (uc *UpsertCashEntryUseCase) updated(ctx context.Context, project *entity.CashProject, id uuid.UUID) (*UpsertCashEntryOutput, error) {
	head, err := uc.transactionRepo.FindByID(ctx, id, project.OwnerID, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction: %w", err)
	}
	return &UpsertCashEntryOutput{Message: MsgTransactionUpdated, Head: head}, nil
}

func payloadFields(payload EntryPayload) adapter.TransactionFields {
	displayMode := payload.DisplayMode
	if displayMode == "" {
		displayMode = entity.DisplayModeUsed
	}
	return adapter.TransactionFields{
		Description:     payload.Description,
		DisplayMode:     displayMode,
		TransactionDate: payload.TransactionDate,
		Value:           payload.Value,
		EstimatedValue:  payload.EstimatedValue,
		Frequency:       payload.Frequency,
		FrequencyStopAt: payload.FrequencyStopAt,
	}
}
