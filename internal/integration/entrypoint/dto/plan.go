package dto

import (
	"github.com/cashgps/backend/internal/domain/plan"
)

// PlanResponse represents a subscription plan and its limits. A value of -1
// means the axis is unlimited.
type PlanResponse struct {
	Tier          string `json:"tier"`
	Projects      int    `json:"projects"`
	GroupsPerType int    `json:"groupsPerType"`
	RowsPerGroup  int    `json:"rowsPerGroup"`
	SharedUsers   int    `json:"sharedUsers"`
	Sharing       bool   `json:"sharing"`
}

// ListPlansResponse wraps the plan table.
type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// ToPlanResponses converts the domain plan table.
func ToPlanResponses(limits []plan.Limits) []PlanResponse {
	responses := make([]PlanResponse, 0, len(limits))
	for _, l := range limits {
		responses = append(responses, PlanResponse{
			Tier:          string(l.Tier),
			Projects:      l.Projects,
			GroupsPerType: l.GroupsPerType,
			RowsPerGroup:  l.RowsPerGroup,
			SharedUsers:   l.SharedUsers,
			Sharing:       l.Sharing,
		})
	}
	return responses
}
