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

// groupRepository implements the adapter.GroupRepository interface. All rank
// mutations run inside one database transaction so the dense 1-based
// sequence per (project, group type) scope survives concurrent requests.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new cash group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// Create inserts a group at the end of its scope, assigning rank max+1
// atomically with the insert.
func (r *groupRepository) Create(ctx context.Context, group *entity.CashGroup) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxRank int
		row := tx.Model(&model.CashGroupModel{}).
			Select("COALESCE(MAX(rank_order), 0)").
			Where("project_id = ? AND group_type = ?", group.ProjectID, string(group.GroupType)).
			Row()
		if err := row.Scan(&maxRank); err != nil {
			return err
		}

		group.RankOrder = ranking.NextRank(maxRank)
		return tx.Create(model.CashGroupFromEntity(group)).Error
	})
}

// FindByID retrieves a group scoped to its owner and project.
func (r *groupRepository) FindByID(ctx context.Context, id, ownerID, projectID uuid.UUID) (*entity.CashGroup, error) {
	var groupModel model.CashGroupModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ? AND project_id = ?", id, ownerID, projectID).
		First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGroupNotFound
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindByProject lists a project's groups ordered by rank.
func (r *groupRepository) FindByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*entity.CashGroup, error) {
	var groupModels []model.CashGroupModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND project_id = ?", ownerID, projectID).
		Order("group_type ASC, rank_order ASC").
		Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]*entity.CashGroup, len(groupModels))
	for i, gm := range groupModels {
		groups[i] = gm.ToEntity()
	}
	return groups, nil
}

// CountByType counts the groups of one type in a project.
func (r *groupRepository) CountByType(ctx context.Context, ownerID, projectID uuid.UUID, groupType entity.GroupType) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CashGroupModel{}).
		Where("owner_id = ? AND project_id = ? AND group_type = ?", ownerID, projectID, string(groupType)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// NameExists checks name uniqueness within the (project, group type) scope.
func (r *groupRepository) NameExists(ctx context.Context, ownerID, projectID uuid.UUID, groupType entity.GroupType, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CashGroupModel{}).
		Where("owner_id = ? AND project_id = ? AND group_type = ? AND name = ?", ownerID, projectID, string(groupType), name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates a group's fields without touching its rank.
func (r *groupRepository) Update(ctx context.Context, group *entity.CashGroup) error {
	result := r.db.WithContext(ctx).
		Model(&model.CashGroupModel{}).
		Where("id = ?", group.ID).
		Updates(map[string]interface{}{
			"name":         group.Name,
			"display_mode": string(group.DisplayMode),
			"updated_at":   group.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGroupNotFound
	}
	return nil
}

// Reorder swaps the group with the sibling one rank away in the given
// direction. When no sibling occupies the target rank the move is clamped to
// a no-op, which keeps the sequence dense at the boundaries.
func (r *groupRepository) Reorder(ctx context.Context, group *entity.CashGroup, direction ranking.Direction) error {
	target, moved := ranking.SwapTarget(group.RankOrder, direction)
	if !moved {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sibling model.CashGroupModel
		err := tx.Where("project_id = ? AND group_type = ? AND rank_order = ?",
			group.ProjectID, string(group.GroupType), target).
			First(&sibling).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Model(&model.CashGroupModel{}).
			Where("id = ?", sibling.ID).
			Update("rank_order", group.RankOrder).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.CashGroupModel{}).
			Where("id = ?", group.ID).
			Update("rank_order", target).Error; err != nil {
			return err
		}

		group.RankOrder = target
		return nil
	})
}

// Delete removes the group, compacts the remaining ranks in its scope, and
// cascades to the group's entry rows and their transactions.
func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var groupModel model.CashGroupModel
		if err := tx.Where("id = ?", id).First(&groupModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrGroupNotFound
			}
			return err
		}

		if err := tx.Where("cash_group_id = ?", id).Delete(&model.CashTransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cash_group_id = ?", id).Delete(&model.CashEntryRowModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&model.CashGroupModel{}).Error; err != nil {
			return err
		}

		return tx.Model(&model.CashGroupModel{}).
			Where("project_id = ? AND group_type = ? AND rank_order > ?",
				groupModel.ProjectID, groupModel.GroupType, groupModel.RankOrder).
			Update("rank_order", gorm.Expr("rank_order - 1")).Error
	})
}
