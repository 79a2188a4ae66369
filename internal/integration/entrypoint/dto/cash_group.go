package dto

import (
	"github.com/cashgps/backend/internal/domain/entity"
)

// CreateOrUpdateGroupRequest represents the request body for group upsert.
// Direction is only honored on updates and triggers a single-step reorder.
type CreateOrUpdateGroupRequest struct {
	ID          *string `json:"id"`
	Name        string  `json:"name" binding:"required"`
	GroupType   string  `json:"groupType" binding:"required"`
	DisplayMode string  `json:"displayMode"`
	Direction   string  `json:"direction"`
}

// GroupResponse represents a cash group in API responses.
type GroupResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	GroupType   string `json:"groupType"`
	DisplayMode string `json:"displayMode"`
	RankOrder   int    `json:"rankOrder"`
}

// ListGroupsResponse wraps a list of groups.
type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToGroupResponse converts a domain CashGroup entity to its DTO.
func ToGroupResponse(group *entity.CashGroup) GroupResponse {
	return GroupResponse{
		ID:          group.ID.String(),
		ProjectID:   group.ProjectID.String(),
		Name:        group.Name,
		GroupType:   string(group.GroupType),
		DisplayMode: string(group.DisplayMode),
		RankOrder:   group.RankOrder,
	}
}

// ToGroupResponses converts a slice of groups.
func ToGroupResponses(groups []*entity.CashGroup) []GroupResponse {
	responses := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, ToGroupResponse(group))
	}
	return responses
}
