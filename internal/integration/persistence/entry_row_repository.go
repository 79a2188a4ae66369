package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/domain/ranking"
	"github.com/cashgps/backend/internal/integration/persistence/model"
)

// entryRowRepository implements the adapter.EntryRowRepository interface.
// Rank handling follows the same transactional contract as the group
// repository, scoped to the owning group.
type entryRowRepository struct {
	db *gorm.DB
}

// NewEntryRowRepository creates a new entry row repository instance.
func NewEntryRowRepository(db *gorm.DB) adapter.EntryRowRepository {
	return &entryRowRepository{
		db: db,
	}
}

// Create inserts a row at the end of its group, assigning rank max+1
// atomically with the insert.
func (r *entryRowRepository) Create(ctx context.Context, row *entity.CashEntryRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxRank int
		result := tx.Model(&model.CashEntryRowModel{}).
			Select("COALESCE(MAX(rank_order), 0)").
			Where("cash_group_id = ?", row.CashGroupID).
			Row()
		if err := result.Scan(&maxRank); err != nil {
			return err
		}

		row.RankOrder = ranking.NextRank(maxRank)
		return tx.Create(model.CashEntryRowFromEntity(row)).Error
	})
}

// FindByID retrieves a row scoped to its owner and project.
func (r *entryRowRepository) FindByID(ctx context.Context, id, ownerID, projectID uuid.UUID) (*entity.CashEntryRow, error) {
	var rowModel model.CashEntryRowModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ? AND project_id = ?", id, ownerID, projectID).
		First(&rowModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryRowNotFound
		}
		return nil, result.Error
	}
	return rowModel.ToEntity(), nil
}

// FindByGroup lists a group's rows ordered by rank.
func (r *entryRowRepository) FindByGroup(ctx context.Context, cashGroupID, ownerID, projectID uuid.UUID) ([]*entity.CashEntryRow, error) {
	var rowModels []model.CashEntryRowModel
	result := r.db.WithContext(ctx).
		Where("cash_group_id = ? AND owner_id = ? AND project_id = ?", cashGroupID, ownerID, projectID).
		Order("rank_order ASC").
		Find(&rowModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rows := make([]*entity.CashEntryRow, len(rowModels))
	for i, rm := range rowModels {
		rows[i] = rm.ToEntity()
	}
	return rows, nil
}

// CountByGroup counts the rows in a group.
func (r *entryRowRepository) CountByGroup(ctx context.Context, cashGroupID, ownerID, projectID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CashEntryRowModel{}).
		Where("cash_group_id = ? AND owner_id = ? AND project_id = ?", cashGroupID, ownerID, projectID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// NameExists checks name uniqueness within the group.
func (r *entryRowRepository) NameExists(ctx context.Context, cashGroupID uuid.UUID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CashEntryRowModel{}).
		Where("cash_group_id = ? AND name = ?", cashGroupID, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates a row's fields without touching its rank.
func (r *entryRowRepository) Update(ctx context.Context, row *entity.CashEntryRow) error {
	result := r.db.WithContext(ctx).
		Model(&model.CashEntryRowModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]interface{}{
			"name":         row.Name,
			"display_mode": string(row.DisplayMode),
			"updated_at":   row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryRowNotFound
	}
	return nil
}

// Reorder swaps the row with the sibling one rank away in the given
// direction, clamped to a no-op at the scope boundary.
func (r *entryRowRepository) Reorder(ctx context.Context, row *entity.CashEntryRow, direction ranking.Direction) error {
	target, moved := ranking.SwapTarget(row.RankOrder, direction)
	if !moved {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sibling model.CashEntryRowModel
		err := tx.Where("cash_group_id = ? AND rank_order = ?", row.CashGroupID, target).
			First(&sibling).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Model(&model.CashEntryRowModel{}).
			Where("id = ?", sibling.ID).
			Update("rank_order", row.RankOrder).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.CashEntryRowModel{}).
			Where("id = ?", row.ID).
			Update("rank_order", target).Error; err != nil {
			return err
		}

		row.RankOrder = target
		return nil
	})
}

// UpdateRanks applies a drag-and-drop assignment, one rank per ID, in a
// single transaction.
func (r *entryRowRepository) UpdateRanks(ctx context.Context, assignments []ranking.Assignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, assignment := range assignments {
			result := tx.Model(&model.CashEntryRowModel{}).
				Where("id = ?", assignment.ID).
				Update("rank_order", assignment.Rank)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerror.ErrEntryRowNotFound
			}
		}
		return nil
	})
}

// Delete removes the row, compacts the remaining ranks in its group, and
// cascades to the row's transactions.
func (r *entryRowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rowModel model.CashEntryRowModel
		if err := tx.Where("id = ?", id).First(&rowModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrEntryRowNotFound
			}
			return err
		}

		if err := tx.Where("cash_entry_row_id = ?", id).Delete(&model.CashTransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&model.CashEntryRowModel{}).Error; err != nil {
			return err
		}

		return tx.Model(&model.CashEntryRowModel{}).
			Where("cash_group_id = ? AND rank_order > ?", rowModel.CashGroupID, rowModel.RankOrder).
			Update("rank_order", gorm.Expr("rank_order - 1")).Error
	})
}
