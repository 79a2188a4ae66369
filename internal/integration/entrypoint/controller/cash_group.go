package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/usecase/cashgroup"
	"github.com/cashgps/backend/internal/domain/entity"
	"github.com/cashgps/backend/internal/domain/ranking"
	"github.com/cashgps/backend/internal/integration/entrypoint/dto"
	"github.com/cashgps/backend/internal/integration/entrypoint/middleware"
)

// GroupController handles cash group endpoints.
type GroupController struct {
	createOrUpdateUseCase *cashgroup.CreateOrUpdateGroupUseCase
	listUseCase           *cashgroup.ListGroupsUseCase
	deleteUseCase         *cashgroup.DeleteGroupUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createOrUpdateUseCase *cashgroup.CreateOrUpdateGroupUseCase,
	listUseCase *cashgroup.ListGroupsUseCase,
	deleteUseCase *cashgroup.DeleteGroupUseCase,
) *GroupController {
	return &GroupController{
		createOrUpdateUseCase: createOrUpdateUseCase,
		listUseCase:           listUseCase,
		deleteUseCase:         deleteUseCase,
	}
}

// CreateOrUpdate handles POST /projects/:projectId/groups requests.
func (c *GroupController) CreateOrUpdate(ctx *gin.Context) {
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

	var req dto.CreateOrUpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	input := cashgroup.CreateOrUpdateGroupInput{
		UserID:      userID,
		ProjectID:   projectID,
		Name:        req.Name,
		GroupType:   entity.GroupType(req.GroupType),
		DisplayMode: entity.DisplayMode(req.DisplayMode),
		Direction:   ranking.Direction(req.Direction),
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			badRequest(ctx, "Invalid group ID")
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
	ctx.JSON(status, dto.ToGroupResponse(output.Group))
}

// List handles GET /projects/:projectId/groups requests. The optional
// groupType query parameter narrows the listing to IN or OUT groups.
func (c *GroupController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), cashgroup.ListGroupsInput{
		UserID:    userID,
		ProjectID: projectID,
		GroupType: entity.GroupType(ctx.Query("groupType")),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListGroupsResponse{
		Groups: dto.ToGroupResponses(output.Groups),
	})
}

// Delete handles DELETE /projects/:projectId/groups/:groupId requests.
func (c *GroupController) Delete(ctx *gin.Context) {
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
	groupID, err := uuid.Parse(ctx.Param("groupId"))
	if err != nil {
		badRequest(ctx, "Invalid group ID")
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), cashgroup.DeleteGroupInput{
		UserID:    userID,
		ProjectID: projectID,
		GroupID:   groupID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Group deleted",
	})
}
