// Package ranking holds the pure pieces of dense rank-order maintenance.
// Groups and entry rows keep a 1-based, gap-free rank sequence within their
// scope; the persistence layer applies these computations inside a single
// database transaction per operation.
package ranking

import "github.com/google/uuid"

// Direction is a single-step reorder request.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// Delta maps a direction onto a rank offset. An unknown or empty direction
// maps to zero, leaving the rank untouched.
func Delta(d Direction) int {
	switch d {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	default:
		return 0
	}
}

// NextRank returns the rank for a new item given the current maximum rank in
// the scope. An empty scope has maximum 0 and yields rank 1.
func NextRank(maxRank int) int {
	return maxRank + 1
}

// SwapTarget computes the rank the moving item wants to occupy. The move is
// valid only when a sibling currently holds that rank; out-of-range moves
// are clamped to a no-op, which keeps the sequence dense at the boundaries.
func SwapTarget(current int, d Direction) (target int, moved bool) {
	delta := Delta(d)
	if delta == 0 {
		return current, false
	}
	return current + delta, true
}

// Assignment pairs an item with its new rank after a drag-and-drop.
type Assignment struct {
	ID   uuid.UUID
	Rank int
}

// AssignSequential maps an ordered ID list onto ranks 1..n. The caller is
// responsible for passing IDs that all belong to one scope.
func AssignSequential(ids []uuid.UUID) []Assignment {
	assignments := make([]Assignment, len(ids))
	for i, id := range ids {
		assignments[i] = Assignment{ID: id, Rank: i + 1}
	}
	return assignments
}
