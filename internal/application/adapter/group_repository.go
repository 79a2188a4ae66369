package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
	"github.com/cashgps/backend/internal/domain/ranking"
)

// GroupRepository defines the interface for cash group persistence operations.
// Rank orders within a (project, group type) scope are dense and 1-based;
// every method that touches them runs its statements in one database
// transaction so concurrent mutations cannot produce duplicate ranks.
type GroupRepository interface {
	// Create inserts a group at the end of its scope, assigning
	// rank max+1 (1 for an empty scope) atomically with the insert.
	Create(ctx context.Context, group *entity.CashGroup) error

	// FindByID retrieves a group scoped to its owner and project.
	FindByID(ctx context.Context, id, ownerID, projectID uuid.UUID) (*entity.CashGroup, error)

	// FindByProject lists a project's groups ordered by rank.
	FindByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*entity.CashGroup, error)

	// CountByType counts the groups of one type in a project.
	CountByType(ctx context.Context, ownerID, projectID uuid.UUID, groupType entity.GroupType) (int, error)

	// NameExists checks name uniqueness within the (project, group type) scope.
	NameExists(ctx context.Context, ownerID, projectID uuid.UUID, groupType entity.GroupType, name string) (bool, error)

	// Update updates a group's fields without touching its rank.
	Update(ctx context.Context, group *entity.CashGroup) error

	// Reorder swaps the group with the sibling one rank away in the given
	// direction. When no sibling occupies the target rank the move is
	// clamped to a no-op.
	Reorder(ctx context.Context, group *entity.CashGroup, direction ranking.Direction) error

	// Delete removes the group, compacts the remaining ranks in its scope,
	// and cascades to the group's entry rows and their transactions.
	Delete(ctx context.Context, id uuid.UUID) error
}
