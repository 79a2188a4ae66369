package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

func seedTransaction(t *testing.T, f *fixture, row *entity.CashEntryRow, value int64, parentID *uuid.UUID) *entity.CashTransaction {
	t.Helper()
	transaction := &entity.CashTransaction{
		ID:              uuid.New(),
		ProjectID:       f.project.ID,
		OwnerID:         f.owner.ID,
		CashGroupID:     row.CashGroupID,
		CashEntryRowID:  row.ID,
		Description:     "Seeded",
		DisplayMode:     entity.DisplayModeUsed,
		TransactionDate: mustDate(t, "2026-02-01"),
		Value:           decimal.NewFromInt(value),
		EstimatedValue:  decimal.NewFromInt(value),
		ParentID:        parentID,
	}
	if err := NewTransactionRepository(f.db).Create(context.Background(), transaction); err != nil {
		t.Fatal(err)
	}
	return transaction
}

func countRows(t *testing.T, f *fixture, table string, where string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	if err := f.db.Table(table).Where(where, args...).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	return count
}

func TestTransactionDeleteCascadesToChildren(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewTransactionRepository(f.db)

	group := createGroup(t, f, "Housing", entity.GroupTypeOut)
	row := createRow(t, f, group, "Rent")
	parent := seedTransaction(t, f, row, 900, nil)
	seedTransaction(t, f, row, 900, &parent.ID)
	seedTransaction(t, f, row, 900, &parent.ID)
	other := seedTransaction(t, f, row, 50, nil)

	if err := repo.Delete(ctx, parent.ID); err != nil {
		t.Fatal(err)
	}

	if got := countRows(t, f, "cash_transactions", "cash_entry_row_id = ?", row.ID); got != 1 {
		t.Errorf("expected only the unrelated transaction to survive, found %d", got)
	}
	if _, err := repo.FindByID(ctx, other.ID, f.owner.ID, f.project.ID); err != nil {
		t.Errorf("unrelated transaction must survive: %v", err)
	}
}

func TestEntryRowDeleteCascades(t *testing.T) {
	f := newFixture(t)

	group := createGroup(t, f, "Housing", entity.GroupTypeOut)
	row := createRow(t, f, group, "Rent")
	keep := createRow(t, f, group, "Power")
	seedTransaction(t, f, row, 900, nil)
	seedTransaction(t, f, keep, 80, nil)

	if err := NewEntryRowRepository(f.db).Delete(context.Background(), row.ID); err != nil {
		t.Fatal(err)
	}

	if got := countRows(t, f, "cash_transactions", "cash_entry_row_id = ?", row.ID); got != 0 {
		t.Errorf("expected row transactions removed, found %d", got)
	}
	if got := countRows(t, f, "cash_transactions", "cash_entry_row_id = ?", keep.ID); got != 1 {
		t.Errorf("sibling row transactions must survive, found %d", got)
	}
}

func TestGroupDeleteCascades(t *testing.T) {
	f := newFixture(t)

	group := createGroup(t, f, "Housing", entity.GroupTypeOut)
	row := createRow(t, f, group, "Rent")
	seedTransaction(t, f, row, 900, nil)

	if err := NewGroupRepository(f.db).Delete(context.Background(), group.ID); err != nil {
		t.Fatal(err)
	}

	if got := countRows(t, f, "cash_entry_rows", "cash_group_id = ?", group.ID); got != 0 {
		t.Errorf("expected rows removed with the group, found %d", got)
	}
	if got := countRows(t, f, "cash_transactions", "cash_group_id = ?", group.ID); got != 0 {
		t.Errorf("expected transactions removed with the group, found %d", got)
	}
}

func TestProjectDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	group := createGroup(t, f, "Housing", entity.GroupTypeOut)
	row := createRow(t, f, group, "Rent")
	seedTransaction(t, f, row, 900, nil)

	guest := entity.NewUser("guest@example.com", "hash", "Sam", "Lee", "UTC", "USD")
	if err := NewUserRepository(f.db).Create(ctx, guest); err != nil {
		t.Fatal(err)
	}
	if err := NewSharingRepository(f.db).Create(ctx, entity.NewSharing(f.project.ID, guest.ID)); err != nil {
		t.Fatal(err)
	}

	if err := NewProjectRepository(f.db).Delete(ctx, f.project.ID, f.owner.ID); err != nil {
		t.Fatal(err)
	}

	for _, table := range []string{"cash_groups", "cash_entry_rows", "cash_transactions", "sharings"} {
		if got := countRows(t, f, table, "project_id = ?", f.project.ID); got != 0 {
			t.Errorf("expected %s emptied for the project, found %d", table, got)
		}
	}
}

func TestCurrencyScaling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rate := decimal.RequireFromString("0.92")

	group := createGroup(t, f, "Housing", entity.GroupTypeOut)
	row := createRow(t, f, group, "Rent")
	transaction := seedTransaction(t, f, row, 100, nil)

	if err := NewTransactionRepository(f.db).ScaleValues(ctx, f.owner.ID, f.project.ID, rate); err != nil {
		t.Fatal(err)
	}
	if err := NewProjectRepository(f.db).ScaleStartingBalance(ctx, f.project.ID, rate); err != nil {
		t.Fatal(err)
	}

	scaled, err := NewTransactionRepository(f.db).FindByID(ctx, transaction.ID, f.owner.ID, f.project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !scaled.Value.Equal(decimal.RequireFromString("92")) {
		t.Errorf("expected value 92, got %s", scaled.Value)
	}
	if !scaled.EstimatedValue.Equal(decimal.RequireFromString("92")) {
		t.Errorf("expected estimated value 92, got %s", scaled.EstimatedValue)
	}

	project, err := NewProjectRepository(f.db).FindByID(ctx, f.project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !project.StartingBalance.Equal(decimal.RequireFromString("920")) {
		t.Errorf("expected starting balance 920, got %s", project.StartingBalance)
	}
}

func TestSharingCreateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewSharingRepository(f.db)

	guest := entity.NewUser("guest@example.com", "hash", "Sam", "Lee", "UTC", "USD")
	if err := NewUserRepository(f.db).Create(ctx, guest); err != nil {
		t.Fatal(err)
	}

	if err := repo.Create(ctx, entity.NewSharing(f.project.ID, guest.ID)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, entity.NewSharing(f.project.ID, guest.ID)); err != nil {
		t.Fatal(err)
	}

	if got := countRows(t, f, "sharings", "project_id = ? AND user_id = ?", f.project.ID, guest.ID); got != 1 {
		t.Errorf("expected a single sharing record, found %d", got)
	}
}

func TestFindSharedWithExcludesPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	guest := entity.NewUser("guest@example.com", "hash", "Sam", "Lee", "UTC", "USD")
	if err := NewUserRepository(f.db).Create(ctx, guest); err != nil {
		t.Fatal(err)
	}
	if err := NewSharingRepository(f.db).Create(ctx, entity.NewSharing(f.project.ID, guest.ID)); err != nil {
		t.Fatal(err)
	}

	shared, err := NewProjectRepository(f.db).FindSharedWith(ctx, guest.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(shared) != 0 {
		t.Fatalf("pending invitations must not expose the project, got %d", len(shared))
	}

	if err := NewSharingRepository(f.db).UpdatePermission(ctx, guest.ID, f.project.ID, entity.PermissionView); err != nil {
		t.Fatal(err)
	}

	shared, err = NewProjectRepository(f.db).FindSharedWith(ctx, guest.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(shared) != 1 || shared[0].ID != f.project.ID {
		t.Fatalf("expected the shared project after approval, got %d records", len(shared))
	}
}

func TestFindByResetTokenHonorsExpiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewUserRepository(f.db)

	token := "deadbeef"
	future := mustDate(t, "2099-01-01")
	if err := repo.SetPasswordResetToken(ctx, f.owner.ID, &token, &future); err != nil {
		t.Fatal(err)
	}

	found, err := repo.FindByResetToken(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if found.ID != f.owner.ID {
		t.Errorf("expected the owner back, got %s", found.ID)
	}

	past := mustDate(t, "2020-01-01")
	if err := repo.SetPasswordResetToken(ctx, f.owner.ID, &token, &past); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.FindByResetToken(ctx, token); err == nil {
		t.Error("expected expired tokens to be rejected")
	}
}

func TestSubscriptionLookupByCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewSubscriptionRepository(f.db)

	if err := repo.Create(ctx, entity.NewSubscription("cus_1", "sub_old", "cs_1", "Medium plan")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, entity.NewSubscription("cus_1", "sub_new", "cs_2", "Premium plan")); err != nil {
		t.Fatal(err)
	}

	providerSubscription, err := repo.FindProviderSubscriptionByCustomer(ctx, "cus_1")
	if err != nil {
		t.Fatal(err)
	}
	if providerSubscription != "sub_new" {
		t.Errorf("expected the most recent subscription, got %s", providerSubscription)
	}

	if err := repo.UpdateStatus(ctx, "sub_new", entity.SubscriptionStatusComplete); err != nil {
		t.Fatal(err)
	}
	record, err := repo.FindByProviderSubscription(ctx, "sub_new")
	if err != nil {
		t.Fatal(err)
	}
	if record.Status != entity.SubscriptionStatusComplete {
		t.Errorf("expected complete status, got %s", record.Status)
	}

	if _, err := repo.FindByProviderSubscription(ctx, "sub_missing"); !errors.Is(err, domainerror.ErrSubscriptionNotFound) {
		t.Errorf("expected ErrSubscriptionNotFound for an unknown subscription, got %v", err)
	}
}

func TestReplaceChildrenClearsParentLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewTransactionRepository(f.db)

	group := createGroup(t, f, "Housing", entity.GroupTypeOut)
	row := createRow(t, f, group, "Rent")
	parent := seedTransaction(t, f, row, 900, nil)
	instance := seedTransaction(t, f, row, 900, &parent.ID)

	// The former instance becomes a recurrence parent of its own: the
	// stored row must drop its parent link along with gaining the rule.
	frequency := entity.FrequencyMonthly
	fields := adapter.TransactionFields{
		Description:     "Rent",
		DisplayMode:     entity.DisplayModeUsed,
		TransactionDate: mustDate(t, "2026-03-01"),
		Value:           decimal.NewFromInt(950),
		EstimatedValue:  decimal.NewFromInt(950),
		Frequency:       &frequency,
	}
	children := []*entity.CashTransaction{
		childFor(t, f, row, instance.ID, "2026-04-01"),
		childFor(t, f, row, instance.ID, "2026-05-01"),
	}

	if err := repo.ReplaceChildren(ctx, instance.ID, fields, children); err != nil {
		t.Fatal(err)
	}

	promoted, err := repo.FindByID(ctx, instance.ID, f.owner.ID, f.project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if promoted.ParentID != nil {
		t.Error("a promoted recurrence parent must not keep a parent link")
	}
	if promoted.Frequency == nil || *promoted.Frequency != entity.FrequencyMonthly {
		t.Errorf("expected MONTHLY frequency on the promoted parent, got %v", promoted.Frequency)
	}
	if !promoted.IsConsistent() {
		t.Error("stored transaction violates the parent-or-instance rule")
	}
	if got := countRows(t, f, "cash_transactions", "parent_id = ?", instance.ID); got != 2 {
		t.Errorf("expected 2 replacement children, found %d", got)
	}
}

func childFor(t *testing.T, f *fixture, row *entity.CashEntryRow, parentID uuid.UUID, date string) *entity.CashTransaction {
	t.Helper()
	return &entity.CashTransaction{
		ID:              uuid.New(),
		ProjectID:       f.project.ID,
		OwnerID:         f.owner.ID,
		CashGroupID:     row.CashGroupID,
		CashEntryRowID:  row.ID,
		Description:     "Rent",
		DisplayMode:     entity.DisplayModeUsed,
		TransactionDate: mustDate(t, date),
		Value:           decimal.NewFromInt(950),
		EstimatedValue:  decimal.NewFromInt(950),
		ParentID:        &parentID,
	}
}
