package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new cash transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a single transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.CashTransaction) error {
	transactionModel := model.CashTransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch inserts several transactions in one transaction.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.CashTransaction) error {
	if len(transactions) == 0 {
		return nil
	}

	transactionModels := make([]*model.CashTransactionModel, len(transactions))
	for i, transaction := range transactions {
		transactionModels[i] = model.CashTransactionFromEntity(transaction)
	}
	return r.db.WithContext(ctx).Create(&transactionModels).Error
}

// FindByID retrieves a transaction scoped to its owner and project.
func (r *transactionRepository) FindByID(ctx context.Context, id, ownerID, projectID uuid.UUID) (*entity.CashTransaction, error) {
	var transactionModel model.CashTransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ? AND project_id = ?", id, ownerID, projectID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindChildren lists the recurrence instances linked to a parent.
func (r *transactionRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.CashTransaction, error) {
	var transactionModels []model.CashTransactionModel
	result := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("transaction_date ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// FindByRow lists a row's transactions ordered by date then creation time.
func (r *transactionRepository) FindByRow(ctx context.Context, cashEntryRowID, cashGroupID, ownerID, projectID uuid.UUID) ([]*entity.CashTransaction, error) {
	var transactionModels []model.CashTransactionModel
	result := r.db.WithContext(ctx).
		Where("cash_entry_row_id = ? AND cash_group_id = ? AND owner_id = ? AND project_id = ?",
			cashEntryRowID, cashGroupID, ownerID, projectID).
		Order("transaction_date ASC, created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// FindByRowInDay lists a row's transactions on one date.
func (r *transactionRepository) FindByRowInDay(ctx context.Context, cashEntryRowID uuid.UUID, date time.Time) ([]*entity.CashTransaction, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var transactionModels []model.CashTransactionModel
	result := r.db.WithContext(ctx).
		Where("cash_entry_row_id = ? AND transaction_date >= ? AND transaction_date < ?",
			cashEntryRowID, dayStart, dayEnd).
		Order("created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// Update overwrites the mutable fields of a transaction.
func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, fields adapter.TransactionFields) error {
	result := r.db.WithContext(ctx).
		Model(&model.CashTransactionModel{}).
		Where("id = ?", id).
		Updates(fieldUpdates(fields))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// DetachAndUpdate overwrites the mutable fields and clears the parent link,
// making a former recurrence instance independent.
func (r *transactionRepository) DetachAndUpdate(ctx context.Context, id uuid.UUID, fields adapter.TransactionFields) error {
	updates := fieldUpdates(fields)
	updates["parent_id"] = nil

	result := r.db.WithContext(ctx).
		Model(&model.CashTransactionModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// PropagateToChildren copies the non-date fields onto every child of the
// parent. Children keep their own transaction dates and never carry a
// recurrence rule.
func (r *transactionRepository) PropagateToChildren(ctx context.Context, parentID uuid.UUID, fields adapter.TransactionFields) error {
	updates := fieldUpdates(fields)
	delete(updates, "transaction_date")
	updates["frequency"] = nil
	updates["frequency_stop_at"] = nil

	return r.db.WithContext(ctx).
		Model(&model.CashTransactionModel{}).
		Where("parent_id = ?", parentID).
		Updates(updates).Error
}

// ReplaceChildren atomically deletes the parent's children, updates the
// parent, and inserts the replacement rows.
func (r *transactionRepository) ReplaceChildren(ctx context.Context, parentID uuid.UUID, parentFields adapter.TransactionFields, children []*entity.CashTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", parentID).Delete(&model.CashTransactionModel{}).Error; err != nil {
			return err
		}

		// A recurrence parent never keeps a parent link of its own.
		updates := fieldUpdates(parentFields)
		updates["parent_id"] = nil

		result := tx.Model(&model.CashTransactionModel{}).
			Where("id = ?", parentID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}

		if len(children) == 0 {
			return nil
		}
		childModels := make([]*model.CashTransactionModel, len(children))
		for i, child := range children {
			childModels[i] = model.CashTransactionFromEntity(child)
		}
		return tx.Create(&childModels).Error
	})
}

// Delete removes a transaction and, when it is a recurrence parent, all of
// its children, atomically.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&model.CashTransactionModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.CashTransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return nil
	})
}

// UpdateDisplayModeByRow propagates a row's display mode to its transactions.
func (r *transactionRepository) UpdateDisplayModeByRow(ctx context.Context, cashEntryRowID uuid.UUID, mode entity.DisplayMode) error {
	return r.db.WithContext(ctx).
		Model(&model.CashTransactionModel{}).
		Where("cash_entry_row_id = ?", cashEntryRowID).
		Updates(map[string]interface{}{
			"display_mode": string(mode),
			"updated_at":   time.Now().UTC(),
		}).Error
}

// ScaleValues multiplies value and estimated value of every transaction in
// the project by the rate, as one bulk statement.
func (r *transactionRepository) ScaleValues(ctx context.Context, ownerID, projectID uuid.UUID, rate decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&model.CashTransactionModel{}).
		Where("owner_id = ? AND project_id = ?", ownerID, projectID).
		Updates(map[string]interface{}{
			"value":           gorm.Expr("value * ?", rate),
			"estimated_value": gorm.Expr("estimated_value * ?", rate),
		}).Error
}

func toEntities(transactionModels []model.CashTransactionModel) []*entity.CashTransaction {
	transactions := make([]*entity.CashTransaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}

func fieldUpdates(fields adapter.TransactionFields) map[string]interface{} {
	var frequency *string
	if fields.Frequency != nil {
		f := string(*fields.Frequency)
		frequency = &f
	}

	return map[string]interface{}{
		"description":       fields.Description,
		"display_mode":      string(fields.DisplayMode),
		"transaction_date":  fields.TransactionDate,
		"value":             fields.Value,
		"estimated_value":   fields.EstimatedValue,
		"frequency":         frequency,
		"frequency_stop_at": fields.FrequencyStopAt,
		"updated_at":        time.Now().UTC(),
	}
}
