package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/integration/persistence/model"
)

// projectRepository implements the adapter.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(db *gorm.DB) adapter.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create creates a new project in the database.
func (r *projectRepository) Create(ctx context.Context, project *entity.CashProject) error {
	projectModel := model.CashProjectFromEntity(project)
	result := r.db.WithContext(ctx).Create(projectModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a project by ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CashProject, error) {
	var projectModel model.CashProjectModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProjectNotFound
		}
		return nil, result.Error
	}
	return projectModel.ToEntity(), nil
}

// FindByIDAndOwner retrieves a project scoped to its owner.
func (r *projectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.CashProject, error) {
	var projectModel model.CashProjectModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProjectNotFound
		}
		return nil, result.Error
	}
	return projectModel.ToEntity(), nil
}

// FindByOwner lists an owner's projects ordered by initial cash flow date.
func (r *projectRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CashProject, error) {
	var projectModels []model.CashProjectModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("initial_cash_flow ASC").
		Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.CashProject, len(projectModels))
	for i, pm := range projectModels {
		projects[i] = pm.ToEntity()
	}
	return projects, nil
}

// CountByOwner counts the projects an owner holds.
func (r *projectRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CashProjectModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// Update updates an existing project.
func (r *projectRepository) Update(ctx context.Context, project *entity.CashProject) error {
	projectModel := model.CashProjectFromEntity(project)
	result := r.db.WithContext(ctx).Save(projectModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ScaleStartingBalance multiplies the starting balance by the given rate.
func (r *projectRepository) ScaleStartingBalance(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.CashProjectModel{}).
		Where("id = ?", id).
		Update("starting_balance", gorm.Expr("starting_balance * ?", rate))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project together with its groups, entry rows,
// transactions, and sharing records, atomically.
func (r *projectRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.CashProjectModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrProjectNotFound
		}

		if err := tx.Where("project_id = ?", id).Delete(&model.CashTransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.CashEntryRowModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.CashGroupModel{}).Error; err != nil {
			return err
		}
		return tx.Where("project_id = ?", id).Delete(&model.SharingModel{}).Error
	})
}

// FindSharedWith lists the projects other owners shared with the user.
func (r *projectRepository) FindSharedWith(ctx context.Context, userID uuid.UUID) ([]*entity.CashProject, error) {
	var projectModels []model.CashProjectModel
	result := r.db.WithContext(ctx).
		Joins("JOIN sharings ON sharings.project_id = cash_projects.id").
		Where("sharings.user_id = ? AND sharings.permission <> ?", userID, string(entity.PermissionPending)).
		Order("cash_projects.initial_cash_flow ASC").
		Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.CashProject, len(projectModels))
	for i, pm := range projectModels {
		projects[i] = pm.ToEntity()
	}
	return projects, nil
}
