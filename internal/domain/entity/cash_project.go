package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Week schedule bitmask. Monday through Friday occupy the five low bits and
// are always active; Saturday and Sunday are toggled individually.
const (
	WeekScheduleWeekdays = 31
	WeekScheduleSaturday = 32
	WeekScheduleSunday   = 64
)

// CashProject represents a budgeting project owned by a single user.
type CashProject struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	StartingBalance decimal.Decimal
	Currency        string
	Timezone        string
	StartDate       time.Time
	InitialCashFlow time.Time // day before StartDate, fixed at creation
	WeekSchedule    int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCashProject creates a new CashProject entity. The initial cash flow date
// is derived from the start date.
func NewCashProject(
	ownerID uuid.UUID,
	name string,
	startingBalance decimal.Decimal,
	currency string,
	timezone string,
	startDate time.Time,
	weekSchedule int,
) *CashProject {
	now := time.Now().UTC()

	return &CashProject{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            name,
		StartingBalance: startingBalance,
		Currency:        currency,
		Timezone:        timezone,
		StartDate:       startDate,
		InitialCashFlow: startDate.AddDate(0, 0, -1),
		WeekSchedule:    weekSchedule,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// EncodeWeekSchedule encodes the weekend toggles into the schedule bitmask.
func EncodeWeekSchedule(saturday, sunday bool) int {
	schedule := WeekScheduleWeekdays
	if saturday {
		schedule += WeekScheduleSaturday
	}
	if sunday {
		schedule += WeekScheduleSunday
	}
	return schedule
}
