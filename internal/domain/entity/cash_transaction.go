package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is the recurrence rule carried by a recurrence parent.
type Frequency string

const (
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyAnnually Frequency = "ANNUALLY"
)

// IsValidFrequency reports whether the value is a known frequency.
func IsValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyAnnually:
		return true
	}
	return false
}

// CashTransaction represents a one-off or recurring money movement inside an
// entry row. A transaction with a non-nil Frequency is a recurrence parent;
// a transaction with a non-nil ParentID is a generated instance of a parent.
// A transaction never carries both.
type CashTransaction struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	OwnerID         uuid.UUID
	CashGroupID     uuid.UUID
	CashEntryRowID  uuid.UUID
	Description     string
	DisplayMode     DisplayMode
	TransactionDate time.Time
	Value           decimal.Decimal
	EstimatedValue  decimal.Decimal
	Frequency       *Frequency
	FrequencyStopAt *time.Time
	ParentID        *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransactionRole is the explicit recurrence role of a stored transaction.
type TransactionRole int

const (
	// RoleStandalone is a one-off transaction with no recurrence links.
	RoleStandalone TransactionRole = iota
	// RoleRecurrenceInstance is a generated or exception row linked to a parent.
	RoleRecurrenceInstance
	// RoleRecurrenceParent carries a recurrence rule; it may or may not have
	// generated instances yet.
	RoleRecurrenceParent
)

// String returns a readable name for the role.
func (r TransactionRole) String() string {
	switch r {
	case RoleRecurrenceInstance:
		return "recurrence-instance"
	case RoleRecurrenceParent:
		return "recurrence-parent"
	default:
		return "standalone"
	}
}

// Role classifies the transaction into its recurrence role. The role is
// derived once per operation so the upsert engine branches on a tagged value
// instead of repeated nil checks.
func (t *CashTransaction) Role() TransactionRole {
	if t.Frequency != nil {
		return RoleRecurrenceParent
	}
	if t.ParentID != nil {
		return RoleRecurrenceInstance
	}
	return RoleStandalone
}

// IsConsistent reports whether the recurrence invariant holds: a transaction
// cannot be a parent and an instance at the same time.
func (t *CashTransaction) IsConsistent() bool {
	return t.Frequency == nil || t.ParentID == nil
}
