package entity

import (
	"time"

	"github.com/google/uuid"
)

// CashEntryRow represents a named line item within a cash group. Rank orders
// are dense and 1-based within the owning group.
type CashEntryRow struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	OwnerID     uuid.UUID
	CashGroupID uuid.UUID
	Name        string
	RankOrder   int
	DisplayMode DisplayMode
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCashEntryRow creates a new CashEntryRow entity. The rank order is
// assigned by the persistence layer on insert.
func NewCashEntryRow(projectID, ownerID, cashGroupID uuid.UUID, name string, displayMode DisplayMode) *CashEntryRow {
	now := time.Now().UTC()

	if displayMode == "" {
		displayMode = DisplayModeUsed
	}

	return &CashEntryRow{
		ID:          uuid.New(),
		ProjectID:   projectID,
		OwnerID:     ownerID,
		CashGroupID: cashGroupID,
		Name:        name,
		DisplayMode: displayMode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
