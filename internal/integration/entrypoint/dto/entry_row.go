package dto

import (
	"github.com/cashgps/backend/internal/domain/entity"
)

// CreateOrUpdateEntryRowRequest represents the request body for row upsert.
type CreateOrUpdateEntryRowRequest struct {
	ID          *string `json:"id"`
	CashGroupID string  `json:"cashGroupId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	DisplayMode string  `json:"displayMode"`
	Direction   string  `json:"direction"`
}

// StoreRankRequest carries the full drag-and-drop ordering of a group's rows.
type StoreRankRequest struct {
	OrderedRowIDs []string `json:"orderedRowIds" binding:"required"`
}

// EntryRowResponse represents a cash entry row in API responses.
type EntryRowResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	CashGroupID string `json:"cashGroupId"`
	Name        string `json:"name"`
	DisplayMode string `json:"displayMode"`
	RankOrder   int    `json:"rankOrder"`
}

// ListEntryRowsResponse wraps a list of entry rows.
type ListEntryRowsResponse struct {
	Rows []EntryRowResponse `json:"rows"`
}

// ToEntryRowResponse converts a domain CashEntryRow entity to its DTO.
func ToEntryRowResponse(row *entity.CashEntryRow) EntryRowResponse {
	return EntryRowResponse{
		ID:          row.ID.String(),
		ProjectID:   row.ProjectID.String(),
		CashGroupID: row.CashGroupID.String(),
		Name:        row.Name,
		DisplayMode: string(row.DisplayMode),
		RankOrder:   row.RankOrder,
	}
}

// ToEntryRowResponses converts a slice of entry rows.
func ToEntryRowResponses(rows []*entity.CashEntryRow) []EntryRowResponse {
	responses := make([]EntryRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, ToEntryRowResponse(row))
	}
	return responses
}
