package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/domain/entity"
)

// CashTransactionModel represents the cash_transactions table in the database.
type CashTransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProjectID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	CashGroupID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CashEntryRowID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description     string          `gorm:"type:varchar(255)"`
	DisplayMode     string          `gorm:"type:varchar(10);not null;default:USED"`
	TransactionDate time.Time       `gorm:"type:date;not null;index"`
	Value           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	EstimatedValue  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency       *string         `gorm:"type:varchar(10)"`
	FrequencyStopAt *time.Time      `gorm:"type:date"`
	ParentID        *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	CashEntryRow *CashEntryRowModel    `gorm:"foreignKey:CashEntryRowID;references:ID"`
	Parent       *CashTransactionModel `gorm:"foreignKey:ParentID;references:ID"`
}

// TableName returns the table name for the CashTransactionModel.
func (CashTransactionModel) TableName() string {
	return "cash_transactions"
}

// ToEntity converts a CashTransactionModel to a domain CashTransaction entity.
func (m *CashTransactionModel) ToEntity() *entity.CashTransaction {
	var frequency *entity.Frequency
	if m.Frequency != nil {
		f := entity.Frequency(*m.Frequency)
		frequency = &f
	}

	return &entity.CashTransaction{
		ID:              m.ID,
		ProjectID:       m.ProjectID,
		OwnerID:         m.OwnerID,
		CashGroupID:     m.CashGroupID,
		CashEntryRowID:  m.CashEntryRowID,
		Description:     m.Description,
		DisplayMode:     entity.DisplayMode(m.DisplayMode),
		TransactionDate: m.TransactionDate,
		Value:           m.Value,
		EstimatedValue:  m.EstimatedValue,
		Frequency:       frequency,
		FrequencyStopAt: m.FrequencyStopAt,
		ParentID:        m.ParentID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CashTransactionFromEntity creates a CashTransactionModel from a domain CashTransaction entity.
func CashTransactionFromEntity(transaction *entity.CashTransaction) *CashTransactionModel {
	var frequency *string
	if transaction.Frequency != nil {
		f := string(*transaction.Frequency)
		frequency = &f
	}

	return &CashTransactionModel{
		ID:              transaction.ID,
		ProjectID:       transaction.ProjectID,
		OwnerID:         transaction.OwnerID,
		CashGroupID:     transaction.CashGroupID,
		CashEntryRowID:  transaction.CashEntryRowID,
		Description:     transaction.Description,
		DisplayMode:     string(transaction.DisplayMode),
		TransactionDate: transaction.TransactionDate,
		Value:           transaction.Value,
		EstimatedValue:  transaction.EstimatedValue,
		Frequency:       frequency,
		FrequencyStopAt: transaction.FrequencyStopAt,
		ParentID:        transaction.ParentID,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
