package sharing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
)

// PermissionOwner is the display text for the project owner's slot in the
// authorized users listing.
const PermissionOwner = "Owner"

// AuthorizedUser is one entry of the authorized users listing.
type AuthorizedUser struct {
	UserID     uuid.UUID
	Name       string
	Email      string
	Permission string
}

// ListAuthorizedUsersInput represents the input for the authorized users listing.
type ListAuthorizedUsersInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// ListAuthorizedUsersOutput lists everyone with access to a project, the
// owner first, each with a user-facing permission text.
type ListAuthorizedUsersOutput struct {
	Users []AuthorizedUser
}

// ListAuthorizedUsersUseCase handles the authorized users listing.
type ListAuthorizedUsersUseCase struct {
	gate        *access.Gate
	sharingRepo adapter.SharingRepository
	userRepo    adapter.UserRepository
}

// NewListAuthorizedUsersUseCase creates a new ListAuthorizedUsersUseCase instance.
func NewListAuthorizedUsersUseCase(
	gate *access.Gate,
	sharingRepo adapter.SharingRepository,
	userRepo adapter.UserRepository,
) *ListAuthorizedUsersUseCase {
	return &ListAuthorizedUsersUseCase{
		gate:        gate,
		sharingRepo: sharingRepo,
		userRepo:    userRepo,
	}
}

// Execute performs the authorized users listing.
func (uc *ListAuthorizedUsersUseCase) Execute(ctx context.Context, input ListAuthorizedUsersInput) (*ListAuthorizedUsersOutput, error) {
	project, err := uc.gate.RequireView(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.FindByID(ctx, project.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	records, err := uc.sharingRepo.FindByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sharing records: %w", err)
	}

	users := make([]AuthorizedUser, 0, len(records)+1)
	users = append(users, AuthorizedUser{
		UserID:     owner.ID,
		Name:       owner.FullName(),
		Email:      owner.Email,
		Permission: PermissionOwner,
	})

	for _, record := range records {
		recipient, err := uc.userRepo.FindByID(ctx, record.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipient: %w", err)
		}
		users = append(users, AuthorizedUser{
			UserID:     recipient.ID,
			Name:       recipient.FullName(),
			Email:      recipient.Email,
			Permission: entity.FormatPermission(record.Permission),
		})
	}

	return &ListAuthorizedUsersOutput{Users: users}, nil
}
