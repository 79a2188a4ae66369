package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/integration/persistence/model"
)

// sharingRepository implements the adapter.SharingRepository interface.
type sharingRepository struct {
	db *gorm.DB
}

// NewSharingRepository creates a new sharing repository instance.
func NewSharingRepository(db *gorm.DB) adapter.SharingRepository {
	return &sharingRepository{
		db: db,
	}
}

// Create inserts a sharing record unless one already ties the user to the project.
func (r *sharingRepository) Create(ctx context.Context, record *entity.Sharing) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.SharingModel{}).
		Where("user_id = ? AND project_id = ?", record.UserID, record.ProjectID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(model.SharingFromEntity(record)).Error
}

// FindByUserAndProject retrieves the record tying a user to a project.
func (r *sharingRepository) FindByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (*entity.Sharing, error) {
	var sharingModel model.SharingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&sharingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSharingNotFound
		}
		return nil, result.Error
	}
	return sharingModel.ToEntity(), nil
}

// FindByProject lists all records of one project.
func (r *sharingRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Sharing, error) {
	var sharingModels []model.SharingModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&sharingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.Sharing, len(sharingModels))
	for i, sm := range sharingModels {
		records[i] = sm.ToEntity()
	}
	return records, nil
}

// CountByProject counts the recipients of one project.
func (r *sharingRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SharingModel{}).
		Where("project_id = ?", projectID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// UpdatePermission sets the permission of an existing record.
func (r *sharingRepository) UpdatePermission(ctx context.Context, userID, projectID uuid.UUID, permission entity.Permission) error {
	result := r.db.WithContext(ctx).
		Model(&model.SharingModel{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Updates(map[string]interface{}{
			"permission": string(permission),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSharingNotFound
	}
	return nil
}

// Delete revokes a user's access to a project.
func (r *sharingRepository) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&model.SharingModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSharingNotFound
	}
	return nil
}

// FindProjectIDsSharedWith lists the project IDs shared with a user.
func (r *sharingRepository) FindProjectIDsSharedWith(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.SharingModel{}).
		Where("user_id = ?", userID).
		Pluck("project_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}
