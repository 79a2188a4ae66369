package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashgps/backend/internal/application/usecase/plans"
	"github.com/cashgps/backend/internal/integration/entrypoint/dto"
)

// PlanController handles subscription plan endpoints.
type PlanController struct {
	listUseCase *plans.ListPlansUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(listUseCase *plans.ListPlansUseCase) *PlanController {
	return &PlanController{listUseCase: listUseCase}
}

// List handles GET /plans requests.
func (c *PlanController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListPlansResponse{
		Plans: dto.ToPlanResponses(output.Plans),
	})
}
