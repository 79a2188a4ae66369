package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/usecase/project"
	"github.com/cashgps/backend/internal/integration/entrypoint/dto"
	"github.com/cashgps/backend/internal/integration/entrypoint/middleware"
)

// ProjectController handles cash project endpoints.
type ProjectController struct {
	createOrUpdateUseCase *project.CreateOrUpdateProjectUseCase
	listUseCase           *project.ListProjectsUseCase
	getUseCase            *project.GetProjectUseCase
	getInfoUseCase        *project.GetProjectInfoUseCase
	deleteUseCase         *project.DeleteProjectUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	createOrUpdateUseCase *project.CreateOrUpdateProjectUseCase,
	listUseCase *project.ListProjectsUseCase,
	getUseCase *project.GetProjectUseCase,
	getInfoUseCase *project.GetProjectInfoUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
) *ProjectController {
	return &ProjectController{
		createOrUpdateUseCase: createOrUpdateUseCase,
		listUseCase:           listUseCase,
		getUseCase:            getUseCase,
		getInfoUseCase:        getInfoUseCase,
		deleteUseCase:         deleteUseCase,
	}
}

// CreateOrUpdate handles POST /projects requests.
func (c *ProjectController) CreateOrUpdate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateOrUpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	input := project.CreateOrUpdateProjectInput{
		OwnerID:         userID,
		Name:            req.Name,
		StartingBalance: req.StartingBalance,
		Currency:        req.Currency,
		Timezone:        req.Timezone,
		StartDate:       req.StartDate,
		Saturday:        req.Saturday,
		Sunday:          req.Sunday,
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			badRequest(ctx, "Invalid project ID")
			return
		}
		input.ID = &id
	}

	output, err := c.createOrUpdateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToProjectResponse(output.Project))
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), project.ListProjectsInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListProjectsResponse{
		Own:    dto.ToProjectResponses(output.Own),
		Shared: dto.ToProjectResponses(output.Shared),
	})
}

// Get handles GET /projects/:projectId requests.
func (c *ProjectController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}
	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		badRequest(ctx, "Invalid project ID")
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), project.GetProjectInput{
		UserID:    userID,
		ProjectID: projectID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// GetInfo handles GET /projects/:projectId/info requests.
func (c *ProjectController) GetInfo(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}
	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		badRequest(ctx, "Invalid project ID")
		return
	}

	output, err := c.getInfoUseCase.Execute(ctx.Request.Context(), project.GetProjectInfoInput{
		UserID:    userID,
		ProjectID: projectID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProjectInfoResponse{
		Project:  dto.ToProjectResponse(output.Project),
		Saturday: output.Saturday,
		Sunday:   output.Sunday,
		IsOwner:  output.IsOwner,
	})
}

// Delete handles DELETE /projects/:projectId requests.
func (c *ProjectController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}
	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		badRequest(ctx, "Invalid project ID")
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{
		OwnerID:   userID,
		ProjectID: projectID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Project deleted",
	})
}
