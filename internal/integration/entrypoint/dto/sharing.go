package dto

import (
	"github.com/cashgps/backend/internal/application/usecase/sharing"
	"github.com/cashgps/backend/internal/domain/entity"
)

// InviteRequest represents the request body for inviting a user by email.
type InviteRequest struct {
	Email string `json:"email" binding:"required"`
}

// UpdatePermissionRequest represents the request body for a permission change.
type UpdatePermissionRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Permission string `json:"permission" binding:"required"`
}

// DeleteSharingRequest identifies the sharing record to remove.
type DeleteSharingRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// SharingResponse represents a sharing record in API responses.
type SharingResponse struct {
	ID         string `json:"id"`
	ProjectID  string `json:"projectId"`
	UserID     string `json:"userId"`
	Permission string `json:"permission"`
}

// AuthorizedUserResponse is one row of the project's access list.
type AuthorizedUserResponse struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Permission string `json:"permission"`
}

// ListAuthorizedUsersResponse wraps the project's access list.
type ListAuthorizedUsersResponse struct {
	Users []AuthorizedUserResponse `json:"users"`
}

// ToSharingResponse converts a domain Sharing entity to its DTO.
func ToSharingResponse(record *entity.Sharing) SharingResponse {
	return SharingResponse{
		ID:         record.ID.String(),
		ProjectID:  record.ProjectID.String(),
		UserID:     record.UserID.String(),
		Permission: string(record.Permission),
	}
}

// ToAuthorizedUserResponses converts the usecase access list.
func ToAuthorizedUserResponses(users []sharing.AuthorizedUser) []AuthorizedUserResponse {
	responses := make([]AuthorizedUserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, AuthorizedUserResponse{
			UserID:     user.UserID.String(),
			Name:       user.Name,
			Email:      user.Email,
			Permission: user.Permission,
		})
	}
	return responses
}
