// Package auth contains authentication-related use cases.
package auth

import (
	"regexp"
	"unicode"

	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// MinNameLength is the minimum length of a first or last name.
const MinNameLength = 3

// MinPasswordLength is the minimum password length.
const MinPasswordLength = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// isValidPassword validates the password policy: at least 8 characters with
// at least one letter and one digit.
func isValidPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// isValidName validates a first or last name.
func isValidName(name string) bool {
	return len(name) >= MinNameLength
}

// validateRegistration checks all signup fields and returns the first
// violation as a typed domain error.
func validateRegistration(email, password, firstName, lastName string) error {
	if !isValidEmail(email) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"please enter a valid email",
			domainerror.ErrInvalidEmail,
		)
	}
	if !isValidPassword(password) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPassword,
			"at least 8 chars password with letters and numbers",
			domainerror.ErrInvalidPassword,
		)
	}
	if !isValidName(firstName) || !isValidName(lastName) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidName,
			"name must contain at least 3 characters",
			domainerror.ErrInvalidName,
		)
	}
	return nil
}
