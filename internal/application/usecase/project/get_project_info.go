package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
)

// GetProjectInfoInput represents the input for the project info query.
type GetProjectInfoInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// GetProjectInfoOutput carries the project together with the decoded week
// schedule toggles and whether the requesting user owns the project.
type GetProjectInfoOutput struct {
	Project  *entity.CashProject
	Saturday bool
	Sunday   bool
	IsOwner  bool
}

// GetProjectInfoUseCase handles the project info query.
type GetProjectInfoUseCase struct {
	gate *access.Gate
}

// NewGetProjectInfoUseCase creates a new GetProjectInfoUseCase instance.
func NewGetProjectInfoUseCase(gate *access.Gate) *GetProjectInfoUseCase {
	return &GetProjectInfoUseCase{gate: gate}
}

// Execute performs the project info query.
func (uc *GetProjectInfoUseCase) Execute(ctx context.Context, input GetProjectInfoInput) (*GetProjectInfoOutput, error) {
	project, err := uc.gate.RequireView(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	return &GetProjectInfoOutput{
		Project:  project,
		Saturday: project.WeekSchedule&entity.WeekScheduleSaturday != 0,
		Sunday:   project.WeekSchedule&entity.WeekScheduleSunday != 0,
		IsOwner:  project.OwnerID == input.UserID,
	}, nil
}
