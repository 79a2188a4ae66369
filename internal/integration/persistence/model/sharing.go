package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
)

// SharingModel represents the sharings table in the database.
type SharingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index:idx_sharings_user_project"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_sharings_user_project"`
	Permission string    `gorm:"type:varchar(10);not null;default:PENDING"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Project *CashProjectModel `gorm:"foreignKey:ProjectID;references:ID"`
	User    *UserModel        `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the SharingModel.
func (SharingModel) TableName() string {
	return "sharings"
}

// ToEntity converts a SharingModel to a domain Sharing entity.
func (m *SharingModel) ToEntity() *entity.Sharing {
	return &entity.Sharing{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		UserID:     m.UserID,
		Permission: entity.Permission(m.Permission),
	}
}

// SharingFromEntity creates a SharingModel from a domain Sharing entity.
func SharingFromEntity(record *entity.Sharing) *SharingModel {
	now := time.Now().UTC()
	return &SharingModel{
		ID:         record.ID,
		ProjectID:  record.ProjectID,
		UserID:     record.UserID,
		Permission: string(record.Permission),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
