package ranking

import (
	"testing"

	"github.com/google/uuid"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		want      int
	}{
		{"up decrements", DirectionUp, -1},
		{"down increments", DirectionDown, 1},
		{"empty is a no-op", Direction(""), 0},
		{"unknown is a no-op", Direction("SIDEWAYS"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Delta(tt.direction); got != tt.want {
				t.Errorf("Delta(%q) = %d, want %d", tt.direction, got, tt.want)
			}
		})
	}
}

func TestNextRank(t *testing.T) {
	if got := NextRank(0); got != 1 {
		t.Errorf("NextRank(0) = %d, want 1 for an empty scope", got)
	}
	if got := NextRank(4); got != 5 {
		t.Errorf("NextRank(4) = %d, want 5", got)
	}
}

func TestSwapTarget(t *testing.T) {
	if target, moved := SwapTarget(3, DirectionUp); !moved || target != 2 {
		t.Errorf("SwapTarget(3, UP) = (%d, %v), want (2, true)", target, moved)
	}
	if target, moved := SwapTarget(3, DirectionDown); !moved || target != 4 {
		t.Errorf("SwapTarget(3, DOWN) = (%d, %v), want (4, true)", target, moved)
	}
	if _, moved := SwapTarget(3, ""); moved {
		t.Error("SwapTarget with no direction must not move")
	}
}

func TestAssignSequential(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	assignments := AssignSequential(ids)
	if len(assignments) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(assignments))
	}
	for i, a := range assignments {
		if a.ID != ids[i] {
			t.Errorf("assignment %d has ID %s, want %s", i, a.ID, ids[i])
		}
		if a.Rank != i+1 {
			t.Errorf("assignment %d has rank %d, want %d", i, a.Rank, i+1)
		}
	}

	if got := AssignSequential(nil); len(got) != 0 {
		t.Errorf("expected empty assignment list, got %d entries", len(got))
	}
}
