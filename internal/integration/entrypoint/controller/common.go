// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps any typed domain error to its HTTP response. Every
// mutation can surface a project error (the permission gate runs first), so
// all controllers share this mapping.
func handleDomainError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(authErrorStatus(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var projectErr *domainerror.ProjectError
	if errors.As(err, &projectErr) {
		ctx.JSON(projectErrorStatus(projectErr.Code), dto.ErrorResponse{
			Error: projectErr.Message,
			Code:  string(projectErr.Code),
		})
		return
	}

	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		ctx.JSON(groupErrorStatus(groupErr.Code), dto.ErrorResponse{
			Error: groupErr.Message,
			Code:  string(groupErr.Code),
		})
		return
	}

	var rowErr *domainerror.EntryRowError
	if errors.As(err, &rowErr) {
		ctx.JSON(entryRowErrorStatus(rowErr.Code), dto.ErrorResponse{
			Error: rowErr.Message,
			Code:  string(rowErr.Code),
		})
		return
	}

	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(transactionErrorStatus(transactionErr.Code), dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	var sharingErr *domainerror.SharingError
	if errors.As(err, &sharingErr) {
		ctx.JSON(sharingErrorStatus(sharingErr.Code), dto.ErrorResponse{
			Error: sharingErr.Message,
			Code:  string(sharingErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func authErrorStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeInvalidPassword,
		domainerror.ErrCodeInvalidName,
		domainerror.ErrCodeResetTokenInvalid:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func projectErrorStatus(code domainerror.ProjectErrorCode) int {
	switch code {
	case domainerror.ErrCodeProjectNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorized:
		return http.StatusForbidden
	case domainerror.ErrCodeSubscriptionLimit:
		return http.StatusPaymentRequired
	case domainerror.ErrCodeCurrencyConversion:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func groupErrorStatus(code domainerror.GroupErrorCode) int {
	switch code {
	case domainerror.ErrCodeGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGroupNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidGroupType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func entryRowErrorStatus(code domainerror.EntryRowErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryRowNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEntryRowNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeEmptyRankList:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func transactionErrorStatus(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTransactionRowNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeEmptyUpsertPayload,
		domainerror.ErrCodeInconsistentRecurrence:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sharingErrorStatus(code domainerror.SharingErrorCode) int {
	switch code {
	case domainerror.ErrCodeSharingNotFound,
		domainerror.ErrCodeRecipientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvitationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a generic malformed-body response.
func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
	})
}

// unauthorized writes the response for a request with no authenticated user.
func unauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
