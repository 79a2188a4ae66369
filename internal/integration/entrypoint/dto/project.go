package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/domain/entity"
)

// CreateOrUpdateProjectRequest represents the request body for project upsert.
// A present ID means update; absent means create.
type CreateOrUpdateProjectRequest struct {
	ID              *string         `json:"id"`
	Name            string          `json:"name" binding:"required"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	Currency        string          `json:"currency" binding:"required"`
	Timezone        string          `json:"timezone"`
	StartDate       time.Time       `json:"startDate" binding:"required"`
	Saturday        bool            `json:"saturday"`
	Sunday          bool            `json:"sunday"`
}

// ProjectResponse represents a cash project in API responses.
type ProjectResponse struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"ownerId"`
	Name            string          `json:"name"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	Currency        string          `json:"currency"`
	Timezone        string          `json:"timezone"`
	StartDate       time.Time       `json:"startDate"`
	InitialCashFlow time.Time       `json:"initialCashFlow"`
}

// ProjectInfoResponse carries the project together with its decoded week
// schedule and the caller's relation to it.
type ProjectInfoResponse struct {
	Project  ProjectResponse `json:"project"`
	Saturday bool            `json:"saturday"`
	Sunday   bool            `json:"sunday"`
	IsOwner  bool            `json:"isOwner"`
}

// ListProjectsResponse splits projects into owned and shared.
type ListProjectsResponse struct {
	Own    []ProjectResponse `json:"own"`
	Shared []ProjectResponse `json:"shared"`
}

// ToProjectResponse converts a domain CashProject entity to its DTO.
func ToProjectResponse(project *entity.CashProject) ProjectResponse {
	return ProjectResponse{
		ID:              project.ID.String(),
		OwnerID:         project.OwnerID.String(),
		Name:            project.Name,
		StartingBalance: project.StartingBalance,
		Currency:        project.Currency,
		Timezone:        project.Timezone,
		StartDate:       project.StartDate,
		InitialCashFlow: project.InitialCashFlow,
	}
}

// ToProjectResponses converts a slice of projects.
func ToProjectResponses(projects []*entity.CashProject) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, ToProjectResponse(project))
	}
	return responses
}
