package email

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/auth"
	"github.com/cashgps/backend/internal/application/usecase/sharing"
	"github.com/cashgps/backend/internal/integration/email/templates"
)

// Service renders the application's transactional emails.
type Service struct {
	renderer   *templates.Renderer
	appBaseURL string
}

// NewService creates a new email template service.
func NewService(appBaseURL string) (*Service, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Service{
		renderer:   renderer,
		appBaseURL: appBaseURL,
	}, nil
}

// BuildWelcome renders the signup confirmation email.
func (s *Service) BuildWelcome(recipientName, recipientEmail string) adapter.SendEmailInput {
	html := s.render("welcome", templates.WelcomeData{
		UserName: recipientName,
		AppURL:   s.appBaseURL,
	})

	return adapter.SendEmailInput{
		To:      recipientEmail,
		Subject: "Welcome to CashGPS",
		HTML:    html,
	}
}

// BuildPasswordReset renders the password reset email with the token link.
func (s *Service) BuildPasswordReset(recipientName, recipientEmail, token string) adapter.SendEmailInput {
	html := s.render("password_reset", templates.PasswordResetData{
		UserName:  recipientName,
		ResetURL:  fmt.Sprintf("%s/reset-password?token=%s", s.appBaseURL, token),
		ExpiresIn: "1 hour",
	})

	return adapter.SendEmailInput{
		To:      recipientEmail,
		Subject: "Reset your CashGPS password",
		HTML:    html,
	}
}

// BuildInvitation renders the project invitation email with approve and
// decline links for the sharing record.
func (s *Service) BuildInvitation(recipientName, recipientEmail, ownerName, projectName string, sharingID uuid.UUID) adapter.SendEmailInput {
	html := s.render("invitation", templates.InvitationData{
		RecipientName: recipientName,
		OwnerName:     ownerName,
		ProjectName:   projectName,
		ApproveURL:    fmt.Sprintf("%s/sharing/%s/approve", s.appBaseURL, sharingID),
		DeclineURL:    fmt.Sprintf("%s/sharing/%s/decline", s.appBaseURL, sharingID),
	})

	return adapter.SendEmailInput{
		To:      recipientEmail,
		Subject: fmt.Sprintf("%s invited you to %s on CashGPS", ownerName, projectName),
		HTML:    html,
	}
}

// render falls back to an unstyled body when a template fails to execute, so
// a broken template never blocks the flow that triggered the email.
func (s *Service) render(name string, data interface{}) string {
	html, err := s.renderer.Render(name, data)
	if err != nil {
		return fmt.Sprintf("<p>Please visit %s for details.</p>", s.appBaseURL)
	}
	return html
}

// Ensure the service satisfies every builder contract.
var (
	_ auth.WelcomeEmailBuilder       = (*Service)(nil)
	_ auth.ResetEmailBuilder         = (*Service)(nil)
	_ sharing.InvitationEmailBuilder = (*Service)(nil)
)
