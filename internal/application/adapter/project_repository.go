package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/domain/entity"
)

// ProjectRepository defines the interface for cash project persistence operations.
type ProjectRepository interface {
	// Create creates a new project.
	Create(ctx context.Context, project *entity.CashProject) error

	// FindByID retrieves a project by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CashProject, error)

	// FindByIDAndOwner retrieves a project scoped to its owner.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.CashProject, error)

	// FindByOwner lists an owner's projects ordered by initial cash flow date.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CashProject, error)

	// CountByOwner counts the projects an owner holds.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)

	// Update updates an existing project.
	Update(ctx context.Context, project *entity.CashProject) error

	// ScaleStartingBalance multiplies the starting balance by the given rate.
	ScaleStartingBalance(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error

	// Delete removes a project together with its groups, entry rows,
	// transactions, and sharing records, atomically.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// FindSharedWith lists the projects other owners shared with the user.
	FindSharedWith(ctx context.Context, userID uuid.UUID) ([]*entity.CashProject, error)
}
