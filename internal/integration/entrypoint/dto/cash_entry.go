package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/domain/entity"
)

// CashEntryPayload is one transaction in an upsert request. The first payload
// is the head; any following payloads describe recurrence instances.
type CashEntryPayload struct {
	ID              *string         `json:"id"`
	CashGroupID     string          `json:"cashGroupId"`
	CashEntryRowID  string          `json:"cashEntryRowId" binding:"required"`
	Description     string          `json:"description"`
	DisplayMode     string          `json:"displayMode"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	Value           decimal.Decimal `json:"value"`
	EstimatedValue  decimal.Decimal `json:"estimatedValue"`
	Frequency       *string         `json:"frequency"`
	FrequencyStopAt *time.Time      `json:"frequencyStopAt"`
}

// UpsertCashEntryRequest represents the request body for transaction upsert.
type UpsertCashEntryRequest struct {
	Entries []CashEntryPayload `json:"entries" binding:"required"`
}

// TransactionResponse represents a cash transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"projectId"`
	CashGroupID     string          `json:"cashGroupId"`
	CashEntryRowID  string          `json:"cashEntryRowId"`
	Description     string          `json:"description"`
	DisplayMode     string          `json:"displayMode"`
	TransactionDate time.Time       `json:"transactionDate"`
	Value           decimal.Decimal `json:"value"`
	EstimatedValue  decimal.Decimal `json:"estimatedValue"`
	Frequency       *string         `json:"frequency"`
	FrequencyStopAt *time.Time      `json:"frequencyStopAt"`
	ParentID        *string         `json:"parentId"`
}

// UpsertCashEntryResponse carries the outcome message and the stored head.
type UpsertCashEntryResponse struct {
	Message     string               `json:"message"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain CashTransaction entity to its DTO.
func ToTransactionResponse(transaction *entity.CashTransaction) TransactionResponse {
	response := TransactionResponse{
		ID:              transaction.ID.String(),
		ProjectID:       transaction.ProjectID.String(),
		CashGroupID:     transaction.CashGroupID.String(),
		CashEntryRowID:  transaction.CashEntryRowID.String(),
		Description:     transaction.Description,
		DisplayMode:     string(transaction.DisplayMode),
		TransactionDate: transaction.TransactionDate,
		Value:           transaction.Value,
		EstimatedValue:  transaction.EstimatedValue,
		FrequencyStopAt: transaction.FrequencyStopAt,
	}
	if transaction.Frequency != nil {
		frequency := string(*transaction.Frequency)
		response.Frequency = &frequency
	}
	if transaction.ParentID != nil {
		parentID := transaction.ParentID.String()
		response.ParentID = &parentID
	}
	return response
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(transactions []*entity.CashTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, ToTransactionResponse(transaction))
	}
	return responses
}
