package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/usecase/cashentry"
	"github.com/cashgps/backend/internal/domain/entity"
	"github.com/cashgps/backend/internal/integration/entrypoint/dto"
	"github.com/cashgps/backend/internal/integration/entrypoint/middleware"
)

var (
	errInvalidEntryID      = errors.New("Invalid entry ID")
	errInvalidEntryGroupID = errors.New("Invalid group ID")
	errInvalidEntryRowID   = errors.New("Invalid row ID")
)

// CashEntryController handles cash transaction endpoints.
type CashEntryController struct {
	upsertUseCase *cashentry.UpsertCashEntryUseCase
	listUseCase   *cashentry.ListTransactionsInRowInDayUseCase
	deleteUseCase *cashentry.DeleteTransactionUseCase
}

// NewCashEntryController creates a new cash entry controller instance.
func NewCashEntryController(
	upsertUseCase *cashentry.UpsertCashEntryUseCase,
	listUseCase *cashentry.ListTransactionsInRowInDayUseCase,
	deleteUseCase *cashentry.DeleteTransactionUseCase,
) *CashEntryController {
	return &CashEntryController{
		upsertUseCase: upsertUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Upsert handles POST /projects/:projectId/entries requests.
func (c *CashEntryController) Upsert(ctx *gin.Context) {
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

	var req dto.UpsertCashEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	entries := make([]cashentry.EntryPayload, 0, len(req.Entries))
	for _, raw := range req.Entries {
		payload, err := toEntryPayload(raw)
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		entries = append(entries, payload)
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), cashentry.UpsertCashEntryInput{
		UserID:    userID,
		ProjectID: projectID,
		Entries:   entries,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	response := dto.UpsertCashEntryResponse{Message: output.Message}
	if output.Head != nil {
		head := dto.ToTransactionResponse(output.Head)
		response.Transaction = &head
	}
	ctx.JSON(http.StatusOK, response)
}

// ListInDay handles GET /projects/:projectId/rows/:rowId/entries requests.
// The date query parameter selects the day, formatted 2006-01-02.
func (c *CashEntryController) ListInDay(ctx *gin.Context) {
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
	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), cashentry.ListTransactionsInRowInDayInput{
		UserID:          userID,
		ProjectID:       projectID,
		CashEntryRowID:  rowID,
		TransactionDate: date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(output.Transactions),
	})
}

// Delete handles DELETE /projects/:projectId/entries/:transactionId requests.
func (c *CashEntryController) Delete(ctx *gin.Context) {
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
	transactionID, err := uuid.Parse(ctx.Param("transactionId"))
	if err != nil {
		badRequest(ctx, "Invalid transaction ID")
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), cashentry.DeleteTransactionInput{
		UserID:        userID,
		ProjectID:     projectID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// toEntryPayload converts a wire payload into the usecase form.
func toEntryPayload(raw dto.CashEntryPayload) (cashentry.EntryPayload, error) {
	payload := cashentry.EntryPayload{
		Description:     raw.Description,
		DisplayMode:     entity.DisplayMode(raw.DisplayMode),
		TransactionDate: raw.TransactionDate,
		Value:           raw.Value,
		EstimatedValue:  raw.EstimatedValue,
		FrequencyStopAt: raw.FrequencyStopAt,
	}

	if raw.ID != nil {
		id, err := uuid.Parse(*raw.ID)
		if err != nil {
			return payload, errInvalidEntryID
		}
		payload.ID = &id
	}
	if raw.CashGroupID != "" {
		groupID, err := uuid.Parse(raw.CashGroupID)
		if err != nil {
			return payload, errInvalidEntryGroupID
		}
		payload.CashGroupID = groupID
	}
	rowID, err := uuid.Parse(raw.CashEntryRowID)
	if err != nil {
		return payload, errInvalidEntryRowID
	}
	payload.CashEntryRowID = rowID

	if raw.Frequency != nil {
		frequency := entity.Frequency(*raw.Frequency)
		payload.Frequency = &frequency
	}
	return payload, nil
}
