package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
)

// CashGroupModel represents the cash_groups table in the database.
type CashGroupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index:idx_cash_groups_scope"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	GroupType   string    `gorm:"type:varchar(3);not null;index:idx_cash_groups_scope"`
	RankOrder   int       `gorm:"not null"`
	DisplayMode string    `gorm:"type:varchar(10);not null;default:USED"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Project *CashProjectModel `gorm:"foreignKey:ProjectID;references:ID"`
}

// TableName returns the table name for the CashGroupModel.
func (CashGroupModel) TableName() string {
	return "cash_groups"
}

// ToEntity converts a CashGroupModel to a domain CashGroup entity.
func (m *CashGroupModel) ToEntity() *entity.CashGroup {
	return &entity.CashGroup{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		GroupType:   entity.GroupType(m.GroupType),
		RankOrder:   m.RankOrder,
		DisplayMode: entity.DisplayMode(m.DisplayMode),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CashGroupFromEntity creates a CashGroupModel from a domain CashGroup entity.
func CashGroupFromEntity(group *entity.CashGroup) *CashGroupModel {
	return &CashGroupModel{
		ID:          group.ID,
		ProjectID:   group.ProjectID,
		OwnerID:     group.OwnerID,
		Name:        group.Name,
		GroupType:   string(group.GroupType),
		RankOrder:   group.RankOrder,
		DisplayMode: string(group.DisplayMode),
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}
