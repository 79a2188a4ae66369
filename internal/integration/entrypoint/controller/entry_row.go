package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/usecase/entryrow"
	"github.com/cashgps/backend/internal/domain/entity"
	"github.com/cashgps/backend/internal/domain/ranking"
	"github.com/cashgps/backend/internal/integration/entrypoint/dto"
	"github.com/cashgps/backend/internal/integration/entrypoint/middleware"
)

// EntryRowController handles cash entry row endpoints.
type EntryRowController struct {
	createOrUpdateUseCase *entryrow.CreateOrUpdateEntryRowUseCase
	listUseCase           *entryrow.ListEntryRowsUseCase
	storeRankUseCase      *entryrow.StoreRankAfterDragDropUseCase
	deleteUseCase         *entryrow.DeleteEntryRowUseCase
}

// NewEntryRowController creates a new entry row controller instance.
func NewEntryRowController(
	createOrUpdateUseCase *entryrow.CreateOrUpdateEntryRowUseCase,
	listUseCase *entryrow.ListEntryRowsUseCase,
	storeRankUseCase *entryrow.StoreRankAfterDragDropUseCase,
	deleteUseCase *entryrow.DeleteEntryRowUseCase,
) *EntryRowController {
	return &EntryRowController{
		createOrUpdateUseCase: createOrUpdateUseCase,
		listUseCase:           listUseCase,
		storeRankUseCase:      storeRankUseCase,
		deleteUseCase:         deleteUseCase,
	}
}

// CreateOrUpdate handles POST /projects/:projectId/rows requests.
func (c *EntryRowController) CreateOrUpdate(ctx *gin.Context) {
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

	var req dto.CreateOrUpdateEntryRowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	cashGroupID, err := uuid.Parse(req.CashGroupID)
	if err != nil {
		badRequest(ctx, "Invalid group ID")
		return
	}

	input := entryrow.CreateOrUpdateEntryRowInput{
		UserID:      userID,
		ProjectID:   projectID,
		CashGroupID: cashGroupID,
		Name:        req.Name,
		DisplayMode: entity.DisplayMode(req.DisplayMode),
		Direction:   ranking.Direction(req.Direction),
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			badRequest(ctx, "Invalid row ID")
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
	ctx.JSON(status, dto.ToEntryRowResponse(output.Row))
}

// List handles GET /projects/:projectId/groups/:groupId/rows requests.
func (c *EntryRowController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), entryrow.ListEntryRowsInput{
		UserID:      userID,
		ProjectID:   projectID,
		CashGroupID: groupID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListEntryRowsResponse{
		Rows: dto.ToEntryRowResponses(output.Rows),
	})
}

// StoreRank handles PUT /projects/:projectId/rows/rank requests.
func (c *EntryRowController) StoreRank(ctx *gin.Context) {
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

	var req dto.StoreRankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	orderedRowIDs := make([]uuid.UUID, 0, len(req.OrderedRowIDs))
	for _, raw := range req.OrderedRowIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(ctx, "Invalid row ID")
			return
		}
		orderedRowIDs = append(orderedRowIDs, id)
	}

	output, err := c.storeRankUseCase.Execute(ctx.Request.Context(), entryrow.StoreRankAfterDragDropInput{
		UserID:        userID,
		ProjectID:     projectID,
		OrderedRowIDs: orderedRowIDs,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"updated": output.Updated})
}

// Delete handles DELETE /projects/:projectId/rows/:rowId requests.
func (c *EntryRowController) Delete(ctx *gin.Context) {
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
	rowID, err := uuid.Parse(ctx.Param("rowId"))
	if err != nil {
		badRequest(ctx, "Invalid row ID")
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), entryrow.DeleteEntryRowInput{
		UserID:    userID,
		ProjectID: projectID,
		RowID:     rowID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Row deleted",
	})
}
