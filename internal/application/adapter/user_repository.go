// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateSubscriptionByCustomer sets the tier and expiry for the user
	// owning the payment-provider customer reference.
	UpdateSubscriptionByCustomer(ctx context.Context, customerID, tier string, expiresAt time.Time) error

	// SetPasswordResetToken stores a reset token and its expiry.
	SetPasswordResetToken(ctx context.Context, id uuid.UUID, token *string, expiresAt *time.Time) error

	// FindByResetToken retrieves a user by a non-expired reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// Delete removes a user. Used as the compensating action when signup
	// cannot be completed.
	Delete(ctx context.Context, id uuid.UUID) error
}
