package entity

import (
	"time"

	"github.com/google/uuid"
)

// GroupType classifies a cash group as income or expense.
type GroupType string

const (
	GroupTypeIn  GroupType = "IN"
	GroupTypeOut GroupType = "OUT"
)

// DisplayMode controls whether an item is shown or archived.
type DisplayMode string

const (
	DisplayModeUsed     DisplayMode = "USED"
	DisplayModeArchived DisplayMode = "ARCHIVED"
)

// CashGroup represents a named cash-flow category within a project.
// Rank orders are dense and 1-based within the (project, group type) scope.
type CashGroup struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	GroupType   GroupType
	RankOrder   int
	DisplayMode DisplayMode
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCashGroup creates a new CashGroup entity. The rank order is assigned by
// the persistence layer on insert.
func NewCashGroup(projectID, ownerID uuid.UUID, name string, groupType GroupType, displayMode DisplayMode) *CashGroup {
	now := time.Now().UTC()

	if displayMode == "" {
		displayMode = DisplayModeUsed
	}

	return &CashGroup{
		ID:          uuid.New(),
		ProjectID:   projectID,
		OwnerID:     ownerID,
		Name:        name,
		GroupType:   groupType,
		DisplayMode: displayMode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidGroupType reports whether the value is a known group type.
func IsValidGroupType(t GroupType) bool {
	return t == GroupTypeIn || t == GroupTypeOut
}
