package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/domain/entity"
	"github.com/cashgps/backend/internal/domain/ranking"
)

func createGroup(t *testing.T, f *fixture, name string, groupType entity.GroupType) *entity.CashGroup {
	t.Helper()
	group := entity.NewCashGroup(f.project.ID, f.owner.ID, name, groupType, entity.DisplayModeUsed)
	if err := NewGroupRepository(f.db).Create(context.Background(), group); err != nil {
		t.Fatal(err)
	}
	return group
}

func groupRanks(t *testing.T, f *fixture, groupType entity.GroupType) map[string]int {
	t.Helper()
	groups, err := NewGroupRepository(f.db).FindByProject(context.Background(), f.owner.ID, f.project.ID)
	if err != nil {
		t.Fatal(err)
	}
	ranks := map[string]int{}
	for _, group := range groups {
		if group.GroupType == groupType {
			ranks[group.Name] = group.RankOrder
		}
	}
	return ranks
}

func assertDense(t *testing.T, ranks map[string]int) {
	t.Helper()
	seen := map[int]bool{}
	for name, rank := range ranks {
		if rank < 1 || rank > len(ranks) {
			t.Errorf("rank of %q out of range: %d", name, rank)
		}
		if seen[rank] {
			t.Errorf("duplicate rank %d", rank)
		}
		seen[rank] = true
	}
}

func TestGroupRankAssignment(t *testing.T) {
	f := newFixture(t)

	a := createGroup(t, f, "Salary", entity.GroupTypeIn)
	b := createGroup(t, f, "Bonus", entity.GroupTypeIn)
	if a.RankOrder != 1 || b.RankOrder != 2 {
		t.Errorf("expected ranks 1 and 2, got %d and %d", a.RankOrder, b.RankOrder)
	}

	// Each group type keeps its own rank partition.
	c := createGroup(t, f, "Rent", entity.GroupTypeOut)
	if c.RankOrder != 1 {
		t.Errorf("OUT scope must start at rank 1, got %d", c.RankOrder)
	}
}

func TestGroupDeleteCompactsRanks(t *testing.T) {
	f := newFixture(t)
	repo := NewGroupRepository(f.db)

	a := createGroup(t, f, "Salary", entity.GroupTypeIn)
	b := createGroup(t, f, "Bonus", entity.GroupTypeIn)

	if err := repo.Delete(context.Background(), a.ID); err != nil {
		t.Fatal(err)
	}

	ranks := groupRanks(t, f, entity.GroupTypeIn)
	if ranks["Bonus"] != 1 {
		t.Errorf("expected Bonus compacted to rank 1, got %d", ranks["Bonus"])
	}

	c := createGroup(t, f, "Dividends", entity.GroupTypeIn)
	if c.RankOrder != 2 {
		t.Errorf("expected new group at rank 2, got %d", c.RankOrder)
	}

	assertDense(t, groupRanks(t, f, entity.GroupTypeIn))
	_ = b
}

func TestGroupReorder(t *testing.T) {
	f := newFixture(t)
	repo := NewGroupRepository(f.db)
	ctx := context.Background()

	createGroup(t, f, "Salary", entity.GroupTypeIn)
	b := createGroup(t, f, "Bonus", entity.GroupTypeIn)
	createGroup(t, f, "Dividends", entity.GroupTypeIn)

	t.Run("swap moves the sibling into the vacated rank", func(t *testing.T) {
		if err := repo.Reorder(ctx, b, ranking.DirectionUp); err != nil {
			t.Fatal(err)
		}
		ranks := groupRanks(t, f, entity.GroupTypeIn)
		if ranks["Bonus"] != 1 || ranks["Salary"] != 2 {
			t.Errorf("expected Bonus=1 Salary=2, got %v", ranks)
		}
		assertDense(t, ranks)
	})

	t.Run("up then down restores the original assignment", func(t *testing.T) {
		if err := repo.Reorder(ctx, b, ranking.DirectionDown); err != nil {
			t.Fatal(err)
		}
		ranks := groupRanks(t, f, entity.GroupTypeIn)
		if ranks["Salary"] != 1 || ranks["Bonus"] != 2 || ranks["Dividends"] != 3 {
			t.Errorf("expected original ranks back, got %v", ranks)
		}
	})

	t.Run("moving the first item up is clamped to a no-op", func(t *testing.T) {
		first, err := repo.FindByID(ctx, groupIDByName(t, f, "Salary"), f.owner.ID, f.project.ID)
		if err != nil {
			t.Fatal(err)
		}
		if err := repo.Reorder(ctx, first, ranking.DirectionUp); err != nil {
			t.Fatal(err)
		}
		ranks := groupRanks(t, f, entity.GroupTypeIn)
		if ranks["Salary"] != 1 || ranks["Bonus"] != 2 || ranks["Dividends"] != 3 {
			t.Errorf("boundary move must change nothing, got %v", ranks)
		}
		assertDense(t, ranks)
	})
}

func groupIDByName(t *testing.T, f *fixture, name string) uuid.UUID {
	t.Helper()
	groups, err := NewGroupRepository(f.db).FindByProject(context.Background(), f.owner.ID, f.project.ID)
	if err != nil {
		t.Fatal(err)
	}
	for _, group := range groups {
		if group.Name == name {
			return group.ID
		}
	}
	t.Fatalf("no group named %q", name)
	return uuid.Nil
}

func createRow(t *testing.T, f *fixture, group *entity.CashGroup, name string) *entity.CashEntryRow {
	t.Helper()
	row := entity.NewCashEntryRow(f.project.ID, f.owner.ID, group.ID, name, entity.DisplayModeUsed)
	if err := NewEntryRowRepository(f.db).Create(context.Background(), row); err != nil {
		t.Fatal(err)
	}
	return row
}

func TestEntryRowRankLifecycle(t *testing.T) {
	f := newFixture(t)
	repo := NewEntryRowRepository(f.db)
	ctx := context.Background()

	group := createGroup(t, f, "Housing", entity.GroupTypeOut)
	rent := createRow(t, f, group, "Rent")
	power := createRow(t, f, group, "Power")
	water := createRow(t, f, group, "Water")

	if rent.RankOrder != 1 || power.RankOrder != 2 || water.RankOrder != 3 {
		t.Fatalf("expected ranks 1..3, got %d %d %d", rent.RankOrder, power.RankOrder, water.RankOrder)
	}

	t.Run("delete compacts the group", func(t *testing.T) {
		if err := repo.Delete(ctx, power.ID); err != nil {
			t.Fatal(err)
		}
		rows, err := repo.FindByGroup(ctx, group.ID, f.owner.ID, f.project.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 || rows[0].Name != "Rent" || rows[1].Name != "Water" || rows[1].RankOrder != 2 {
			t.Errorf("expected Rent=1 Water=2, got %+v", rows)
		}
	})

	t.Run("drag and drop stores index+1 as rank", func(t *testing.T) {
		if err := repo.UpdateRanks(ctx, ranking.AssignSequential([]uuid.UUID{water.ID, rent.ID})); err != nil {
			t.Fatal(err)
		}
		rows, err := repo.FindByGroup(ctx, group.ID, f.owner.ID, f.project.ID)
		if err != nil {
			t.Fatal(err)
		}
		if rows[0].Name != "Water" || rows[1].Name != "Rent" {
			t.Errorf("expected Water first after drag and drop, got %+v", rows)
		}
	})
}
