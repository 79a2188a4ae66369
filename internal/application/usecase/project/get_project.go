package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
)

// GetProjectInput represents the input for fetching a single project.
type GetProjectInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// GetProjectOutput represents the output of fetching a single project.
type GetProjectOutput struct {
	Project *entity.CashProject
}

// GetProjectUseCase handles single project retrieval. Any user with at least
// view access may fetch the project.
type GetProjectUseCase struct {
	gate *access.Gate
}

// NewGetProjectUseCase creates a new GetProjectUseCase instance.
func NewGetProjectUseCase(gate *access.Gate) *GetProjectUseCase {
	return &GetProjectUseCase{gate: gate}
}

// Execute performs the project retrieval.
func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	project, err := uc.gate.RequireView(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}
	return &GetProjectOutput{Project: project}, nil
}
