package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/usecase/sharing"
	"github.com/cashgps/backend/internal/domain/entity"
	"github.com/cashgps/backend/internal/integration/entrypoint/dto"
	"github.com/cashgps/backend/internal/integration/entrypoint/middleware"
)

// SharingController handles project sharing endpoints.
type SharingController struct {
	inviteUseCase           *sharing.InviteUseCase
	updatePermissionUseCase *sharing.UpdatePermissionUseCase
	deleteRecordUseCase     *sharing.DeleteRecordUseCase
	listUsersUseCase        *sharing.ListAuthorizedUsersUseCase
}

// NewSharingController creates a new sharing controller instance.
func NewSharingController(
	inviteUseCase *sharing.InviteUseCase,
	updatePermissionUseCase *sharing.UpdatePermissionUseCase,
	deleteRecordUseCase *sharing.DeleteRecordUseCase,
	listUsersUseCase *sharing.ListAuthorizedUsersUseCase,
) *SharingController {
	return &SharingController{
		inviteUseCase:           inviteUseCase,
		updatePermissionUseCase: updatePermissionUseCase,
		deleteRecordUseCase:     deleteRecordUseCase,
		listUsersUseCase:        listUsersUseCase,
	}
}

// Invite handles POST /projects/:projectId/sharing requests.
func (c *SharingController) Invite(ctx *gin.Context) {
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

	var req dto.InviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.inviteUseCase.Execute(ctx.Request.Context(), sharing.InviteInput{
		OwnerID:   userID,
		ProjectID: projectID,
		Email:     req.Email,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSharingResponse(output.Record))
}

// UpdatePermission handles PUT /projects/:projectId/sharing requests.
func (c *SharingController) UpdatePermission(ctx *gin.Context) {
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

	var req dto.UpdatePermissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	targetUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		badRequest(ctx, "Invalid user ID")
		return
	}

	output, err := c.updatePermissionUseCase.Execute(ctx.Request.Context(), sharing.UpdatePermissionInput{
		ActingUserID: userID,
		ProjectID:    projectID,
		TargetUserID: targetUserID,
		Permission:   entity.Permission(req.Permission),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSharingResponse(output.Record))
}

// Delete handles DELETE /projects/:projectId/sharing/:userId requests.
func (c *SharingController) Delete(ctx *gin.Context) {
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
	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		badRequest(ctx, "Invalid user ID")
		return
	}

	if _, err := c.deleteRecordUseCase.Execute(ctx.Request.Context(), sharing.DeleteRecordInput{
		ActingUserID: userID,
		ProjectID:    projectID,
		TargetUserID: targetUserID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Sharing record removed",
	})
}

// ListAuthorizedUsers handles GET /projects/:projectId/sharing requests.
func (c *SharingController) ListAuthorizedUsers(ctx *gin.Context) {
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

	output, err := c.listUsersUseCase.Execute(ctx.Request.Context(), sharing.ListAuthorizedUsersInput{
		UserID:    userID,
		ProjectID: projectID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListAuthorizedUsersResponse{
		Users: dto.ToAuthorizedUserResponses(output.Users),
	})
}
