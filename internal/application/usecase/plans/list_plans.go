// Package plans contains the subscription plan use cases.
package plans

import (
	"context"

	"github.com/cashgps/backend/internal/domain/plan"
)

// ListPlansOutput represents the output of the plan listing.
type ListPlansOutput struct {
	Plans []plan.Limits
}

// ListPlansUseCase lists the subscription plan catalog.
type ListPlansUseCase struct{}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase() *ListPlansUseCase {
	return &ListPlansUseCase{}
}

// Execute performs the plan listing.
func (uc *ListPlansUseCase) Execute(ctx context.Context) (*ListPlansOutput, error) {
	return &ListPlansOutput{Plans: plan.All()}, nil
}
