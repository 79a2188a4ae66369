// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html
var templateFS embed.FS

// Renderer handles email template rendering.
type Renderer struct {
	templates *template.Template
}

// NewRenderer creates a new template renderer.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render renders the named template with the given data.
func (r *Renderer) Render(templateName string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, templateName+".html", data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

// WelcomeData contains data for the signup confirmation email template.
type WelcomeData struct {
	UserName string
	AppURL   string
}

// PasswordResetData contains data for the password reset email template.
type PasswordResetData struct {
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// InvitationData contains data for the project invitation email template.
type InvitationData struct {
	RecipientName string
	OwnerName     string
	ProjectName   string
	ApproveURL    string
	DeclineURL    string
}
