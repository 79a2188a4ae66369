// Package sharing contains project sharing use cases.
package sharing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/domain/plan"
)

// InvitationEmailBuilder renders the invitation email for a recipient, with
// approve and decline links back into the web client.
type InvitationEmailBuilder interface {
	BuildInvitation(recipientName, recipientEmail, ownerName, projectName string, sharingID uuid.UUID) adapter.SendEmailInput
}

// InviteInput represents the input for a sharing invitation.
type InviteInput struct {
	OwnerID   uuid.UUID
	ProjectID uuid.UUID
	Email     string
}

// InviteOutput represents the output of a sharing invitation.
type InviteOutput struct {
	Record *entity.Sharing
}

// InviteUseCase handles sharing invitations. Only the project owner may
// invite, the owner's plan must permit sharing, and the recipient must
// already have an account. The record starts PENDING; the recipient resolves
// it through the links in the invitation email.
type InviteUseCase struct {
	projectRepo  adapter.ProjectRepository
	sharingRepo  adapter.SharingRepository
	userRepo     adapter.UserRepository
	emailSender  adapter.EmailSender
	emailBuilder InvitationEmailBuilder
}

// NewInviteUseCase creates a new InviteUseCase instance.
func NewInviteUseCase(
	projectRepo adapter.ProjectRepository,
	sharingRepo adapter.SharingRepository,
	userRepo adapter.UserRepository,
	emailSender adapter.EmailSender,
	emailBuilder InvitationEmailBuilder,
) *InviteUseCase {
	return &InviteUseCase{
		projectRepo:  projectRepo,
		sharingRepo:  sharingRepo,
		userRepo:     userRepo,
		emailSender:  emailSender,
		emailBuilder: emailBuilder,
	}
}

// Execute performs the sharing invitation.
func (uc *InviteUseCase) Execute(ctx context.Context, input InviteInput) (*InviteOutput, error) {
	project, err := uc.projectRepo.FindByIDAndOwner(ctx, input.ProjectID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeNotAuthorized,
			domainerror.MsgNotAuthorized,
			domainerror.ErrNotAuthorized,
		)
	}

	owner, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	count, err := uc.sharingRepo.CountByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count recipients: %w", err)
	}
	if !plan.AllowsSharing(owner.ActiveSubscription, count) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeSubscriptionLimit,
			domainerror.MsgUpgradeSubscription,
			domainerror.ErrSubscriptionLimit,
		)
	}

	recipient, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.NewSharingError(
			domainerror.ErrCodeRecipientNotFound,
			"no account exists for this email",
			domainerror.ErrRecipientNotFound,
		)
	}

	record := entity.NewSharing(project.ID, recipient.ID)
	if err := uc.sharingRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create sharing record: %w", err)
	}

	email := uc.emailBuilder.BuildInvitation(recipient.FullName(), recipient.Email, owner.FullName(), project.Name, record.ID)
	if err := uc.emailSender.Send(ctx, email); err != nil {
		// The record is kept; the owner can re-invite to resend.
		return nil, domainerror.NewSharingError(
			domainerror.ErrCodeInvitationFailed,
			"Something was wrong",
			domainerror.ErrInvitationFailed,
		)
	}

	return &InviteOutput{Record: record}, nil
}
