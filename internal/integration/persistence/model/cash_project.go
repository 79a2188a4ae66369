package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/domain/entity"
)

// CashProjectModel represents the cash_projects table in the database.
type CashProjectModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(100);not null"`
	StartingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	Timezone        string          `gorm:"type:varchar(64);not null;default:UTC"`
	StartDate       time.Time       `gorm:"type:date;not null"`
	InitialCashFlow time.Time       `gorm:"type:date;not null"`
	WeekSchedule    int             `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	Owner *UserModel `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName returns the table name for the CashProjectModel.
func (CashProjectModel) TableName() string {
	return "cash_projects"
}

// ToEntity converts a CashProjectModel to a domain CashProject entity.
func (m *CashProjectModel) ToEntity() *entity.CashProject {
	return &entity.CashProject{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Name:            m.Name,
		StartingBalance: m.StartingBalance,
		Currency:        m.Currency,
		Timezone:        m.Timezone,
		StartDate:       m.StartDate,
		InitialCashFlow: m.InitialCashFlow,
		WeekSchedule:    m.WeekSchedule,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CashProjectFromEntity creates a CashProjectModel from a domain CashProject entity.
func CashProjectFromEntity(project *entity.CashProject) *CashProjectModel {
	return &CashProjectModel{
		ID:              project.ID,
		OwnerID:         project.OwnerID,
		Name:            project.Name,
		StartingBalance: project.StartingBalance,
		Currency:        project.Currency,
		Timezone:        project.Timezone,
		StartDate:       project.StartDate,
		InitialCashFlow: project.InitialCashFlow,
		WeekSchedule:    project.WeekSchedule,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}
}
