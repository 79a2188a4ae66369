package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
)

// CashEntryRowModel represents the cash_entry_rows table in the database.
type CashEntryRowModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CashGroupID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	RankOrder   int       `gorm:"not null"`
	DisplayMode string    `gorm:"type:varchar(10);not null;default:USED"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	CashGroup *CashGroupModel `gorm:"foreignKey:CashGroupID;references:ID"`
}

// TableName returns the table name for the CashEntryRowModel.
func (CashEntryRowModel) TableName() string {
	return "cash_entry_rows"
}

// ToEntity converts a CashEntryRowModel to a domain CashEntryRow entity.
func (m *CashEntryRowModel) ToEntity() *entity.CashEntryRow {
	return &entity.CashEntryRow{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		OwnerID:     m.OwnerID,
		CashGroupID: m.CashGroupID,
		Name:        m.Name,
		RankOrder:   m.RankOrder,
		DisplayMode: entity.DisplayMode(m.DisplayMode),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CashEntryRowFromEntity creates a CashEntryRowModel from a domain CashEntryRow entity.
func CashEntryRowFromEntity(row *entity.CashEntryRow) *CashEntryRowModel {
	return &CashEntryRowModel{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		OwnerID:     row.OwnerID,
		CashGroupID: row.CashGroupID,
		Name:        row.Name,
		RankOrder:   row.RankOrder,
		DisplayMode: string(row.DisplayMode),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
