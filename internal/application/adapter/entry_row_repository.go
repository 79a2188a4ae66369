package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
	"github.com/cashgps/backend/internal/domain/ranking"
)

// EntryRowRepository defines the interface for cash entry row persistence
// operations. Rank handling follows the same transactional contract as
// GroupRepository, scoped to the owning group.
type EntryRowRepository interface {
	// Create inserts a row at the end of its group, assigning rank max+1
	// atomically with the insert.
	Create(ctx context.Context, row *entity.CashEntryRow) error

	// FindByID retrieves a row scoped to its owner and project.
	FindByID(ctx context.Context, id, ownerID, projectID uuid.UUID) (*entity.CashEntryRow, error)

	// FindByGroup lists a group's rows ordered by rank.
	FindByGroup(ctx context.Context, cashGroupID, ownerID, projectID uuid.UUID) ([]*entity.CashEntryRow, error)

	// CountByGroup counts the rows in a group.
	CountByGroup(ctx context.Context, cashGroupID, ownerID, projectID uuid.UUID) (int, error)

	// NameExists checks name uniqueness within the group.
	NameExists(ctx context.Context, cashGroupID uuid.UUID, name string) (bool, error)

	// Update updates a row's fields without touching its rank.
	Update(ctx context.Context, row *entity.CashEntryRow) error

	// Reorder swaps the row with the sibling one rank away in the given
	// direction, clamped to a no-op at the scope boundary.
	Reorder(ctx context.Context, row *entity.CashEntryRow, direction ranking.Direction) error

	// UpdateRanks applies a drag-and-drop assignment, one rank per ID,
	// in a single transaction.
	UpdateRanks(ctx context.Context, assignments []ranking.Assignment) error

	// Delete removes the row, compacts the remaining ranks in its group,
	// and cascades to the row's transactions.
	Delete(ctx context.Context, id uuid.UUID) error
}
