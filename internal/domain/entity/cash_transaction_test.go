package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestCashTransactionRole(t *testing.T) {
	monthly := FrequencyMonthly
	parentID := uuid.New()

	tests := []struct {
		name        string
		transaction CashTransaction
		want        TransactionRole
	}{
		{
			name:        "no frequency and no parent is standalone",
			transaction: CashTransaction{},
			want:        RoleStandalone,
		},
		{
			name:        "parent link without frequency is an instance",
			transaction: CashTransaction{ParentID: &parentID},
			want:        RoleRecurrenceInstance,
		},
		{
			name:        "frequency makes a recurrence parent",
			transaction: CashTransaction{Frequency: &monthly},
			want:        RoleRecurrenceParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transaction.Role(); got != tt.want {
				t.Errorf("Role() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCashTransactionIsConsistent(t *testing.T) {
	monthly := FrequencyMonthly
	parentID := uuid.New()

	ok := CashTransaction{Frequency: &monthly}
	if !ok.IsConsistent() {
		t.Error("parent without parent link must be consistent")
	}

	broken := CashTransaction{Frequency: &monthly, ParentID: &parentID}
	if broken.IsConsistent() {
		t.Error("a transaction cannot be parent and instance at once")
	}
}

func TestIsValidFrequency(t *testing.T) {
	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyAnnually} {
		if !IsValidFrequency(f) {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if IsValidFrequency("HOURLY") {
		t.Error("HOURLY is not a supported frequency")
	}
}

func TestEncodeWeekSchedule(t *testing.T) {
	tests := []struct {
		name     string
		saturday bool
		sunday   bool
		want     int
	}{
		{"weekdays only", false, false, 31},
		{"with saturday", true, false, 63},
		{"with sunday", false, true, 95},
		{"full week", true, true, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeWeekSchedule(tt.saturday, tt.sunday); got != tt.want {
				t.Errorf("EncodeWeekSchedule(%v, %v) = %d, want %d", tt.saturday, tt.sunday, got, tt.want)
			}
		})
	}
}
