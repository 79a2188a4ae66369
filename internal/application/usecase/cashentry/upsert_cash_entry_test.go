package cashentry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/domain/ranking"
)

// memTransactionRepo is an in-memory TransactionRepository used to observe
// how the engine resolves each transition.
type memTransactionRepo struct {
	store map[uuid.UUID]*entity.CashTransaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{store: map[uuid.UUID]*entity.CashTransaction{}}
}

func (m *memTransactionRepo) Create(ctx context.Context, t *entity.CashTransaction) error {
	copied := *t
	m.store[t.ID] = &copied
	return nil
}

func (m *memTransactionRepo) CreateBatch(ctx context.Context, ts []*entity.CashTransaction) error {
	for _, t := range ts {
		if err := m.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (m *memTransactionRepo) FindByID(ctx context.Context, id, ownerID, projectID uuid.UUID) (*entity.CashTransaction, error) {
	t, ok := m.store[id]
	if !ok || t.OwnerID != ownerID || t.ProjectID != projectID {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *memTransactionRepo) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.CashTransaction, error) {
	var children []*entity.CashTransaction
	for _, t := range m.store {
		if t.ParentID != nil && *t.ParentID == parentID {
			copied := *t
			children = append(children, &copied)
		}
	}
	return children, nil
}

func (m *memTransactionRepo) FindByRow(ctx context.Context, rowID, groupID, ownerID, projectID uuid.UUID) ([]*entity.CashTransaction, error) {
	var out []*entity.CashTransaction
	for _, t := range m.store {
		if t.CashEntryRowID == rowID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memTransactionRepo) FindByRowInDay(ctx context.Context, rowID uuid.UUID, date time.Time) ([]*entity.CashTransaction, error) {
	var out []*entity.CashTransaction
	for _, t := range m.store {
		if t.CashEntryRowID == rowID && sameDay(t.TransactionDate, date) {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func applyFields(t *entity.CashTransaction, fields adapter.TransactionFields) {
	t.Description = fields.Description
	t.DisplayMode = fields.DisplayMode
	t.TransactionDate = fields.TransactionDate
	t.Value = fields.Value
	t.EstimatedValue = fields.EstimatedValue
	t.Frequency = fields.Frequency
	t.FrequencyStopAt = fields.FrequencyStopAt
	t.UpdatedAt = time.Now().UTC()
}

func (m *memTransactionRepo) Update(ctx context.Context, id uuid.UUID, fields adapter.TransactionFields) error {
	t, ok := m.store[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	applyFields(t, fields)
	return nil
}

func (m *memTransactionRepo) DetachAndUpdate(ctx context.Context, id uuid.UUID, fields adapter.TransactionFields) error {
	t, ok := m.store[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	applyFields(t, fields)
	t.ParentID = nil
	return nil
}

func (m *memTransactionRepo) PropagateToChildren(ctx context.Context, parentID uuid.UUID, fields adapter.TransactionFields) error {
	for _, t := range m.store {
		if t.ParentID != nil && *t.ParentID == parentID {
			date := t.TransactionDate
			applyFields(t, fields)
			t.TransactionDate = date
			t.Frequency = nil
			t.FrequencyStopAt = nil
		}
	}
	return nil
}

func (m *memTransactionRepo) ReplaceChildren(ctx context.Context, parentID uuid.UUID, parentFields adapter.TransactionFields, children []*entity.CashTransaction) error {
	for id, t := range m.store {
		if t.ParentID != nil && *t.ParentID == parentID {
			delete(m.store, id)
		}
	}
	if err := m.Update(ctx, parentID, parentFields); err != nil {
		return err
	}
	return m.CreateBatch(ctx, children)
}

func (m *memTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for childID, t := range m.store {
		if t.ParentID != nil && *t.ParentID == id {
			delete(m.store, childID)
		}
	}
	delete(m.store, id)
	return nil
}

func (m *memTransactionRepo) UpdateDisplayModeByRow(ctx context.Context, rowID uuid.UUID, mode entity.DisplayMode) error {
	for _, t := range m.store {
		if t.CashEntryRowID == rowID {
			t.DisplayMode = mode
		}
	}
	return nil
}

func (m *memTransactionRepo) ScaleValues(ctx context.Context, ownerID, projectID uuid.UUID, rate decimal.Decimal) error {
	for _, t := range m.store {
		if t.OwnerID == ownerID && t.ProjectID == projectID {
			t.Value = t.Value.Mul(rate)
			t.EstimatedValue = t.EstimatedValue.Mul(rate)
		}
	}
	return nil
}

// memRowRepo serves only the row lookups the engine performs.
type memRowRepo struct {
	rows map[uuid.UUID]*entity.CashEntryRow
}

func (m *memRowRepo) Create(ctx context.Context, row *entity.CashEntryRow) error { return nil }

func (m *memRowRepo) FindByID(ctx context.Context, id, ownerID, projectID uuid.UUID) (*entity.CashEntryRow, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, domainerror.ErrEntryRowNotFound
	}
	return row, nil
}

func (m *memRowRepo) FindByGroup(ctx context.Context, groupID, ownerID, projectID uuid.UUID) ([]*entity.CashEntryRow, error) {
	return nil, nil
}

func (m *memRowRepo) CountByGroup(ctx context.Context, groupID, ownerID, projectID uuid.UUID) (int, error) {
	return 0, nil
}

func (m *memRowRepo) NameExists(ctx context.Context, groupID uuid.UUID, name string) (bool, error) {
	return false, nil
}

func (m *memRowRepo) Update(ctx context.Context, row *entity.CashEntryRow) error { return nil }

func (m *memRowRepo) Reorder(ctx context.Context, row *entity.CashEntryRow, d ranking.Direction) error {
	return nil
}

func (m *memRowRepo) UpdateRanks(ctx context.Context, assignments []ranking.Assignment) error {
	return nil
}

func (m *memRowRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// memProjectRepo and memSharingRepo back the permission gate.
type memProjectRepo struct {
	project *entity.CashProject
}

func (m *memProjectRepo) Create(ctx context.Context, p *entity.CashProject) error { return nil }

func (m *memProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CashProject, error) {
	if m.project != nil && m.project.ID == id {
		return m.project, nil
	}
	return nil, domainerror.ErrProjectNotFound
}

func (m *memProjectRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.CashProject, error) {
	return nil, domainerror.ErrProjectNotFound
}

func (m *memProjectRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CashProject, error) {
	return nil, nil
}

func (m *memProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return 0, nil
}

func (m *memProjectRepo) Update(ctx context.Context, p *entity.CashProject) error { return nil }

func (m *memProjectRepo) ScaleStartingBalance(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error {
	return nil
}

func (m *memProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error { return nil }

func (m *memProjectRepo) FindSharedWith(ctx context.Context, userID uuid.UUID) ([]*entity.CashProject, error) {
	return nil, nil
}

type memSharingRepo struct{}

func (memSharingRepo) Create(ctx context.Context, r *entity.Sharing) error { return nil }

func (memSharingRepo) FindByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (*entity.Sharing, error) {
	return nil, domainerror.ErrSharingNotFound
}

func (memSharingRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Sharing, error) {
	return nil, nil
}

func (memSharingRepo) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	return 0, nil
}

func (memSharingRepo) UpdatePermission(ctx context.Context, userID, projectID uuid.UUID, p entity.Permission) error {
	return nil
}

func (memSharingRepo) Delete(ctx context.Context, userID, projectID uuid.UUID) error { return nil }

func (memSharingRepo) FindProjectIDsSharedWith(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

type engineFixture struct {
	uc      *UpsertCashEntryUseCase
	txRepo  *memTransactionRepo
	project *entity.CashProject
	row     *entity.CashEntryRow
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	owner := uuid.New()
	project := &entity.CashProject{ID: uuid.New(), OwnerID: owner}
	row := &entity.CashEntryRow{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		OwnerID:     owner,
		CashGroupID: uuid.New(),
		Name:        "Rent",
	}

	txRepo := newMemTransactionRepo()
	rowRepo := &memRowRepo{rows: map[uuid.UUID]*entity.CashEntryRow{row.ID: row}}
	gate := access.NewGate(&memProjectRepo{project: project}, memSharingRepo{})

	return &engineFixture{
		uc:      NewUpsertCashEntryUseCase(gate, txRepo, rowRepo),
		txRepo:  txRepo,
		project: project,
		row:     row,
	}
}

func (f *engineFixture) payload(value int64) EntryPayload {
	return EntryPayload{
		CashEntryRowID:  f.row.ID,
		Description:     "rent payment",
		TransactionDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Value:           decimal.NewFromInt(value),
		EstimatedValue:  decimal.NewFromInt(value),
	}
}

func (f *engineFixture) seedParent(t *testing.T, freq entity.Frequency, value int64, childDates ...time.Time) *entity.CashTransaction {
	t.Helper()

	parent := &entity.CashTransaction{
		ID:              uuid.New(),
		ProjectID:       f.project.ID,
		OwnerID:         f.project.OwnerID,
		CashGroupID:     f.row.CashGroupID,
		CashEntryRowID:  f.row.ID,
		Description:     "rent payment",
		DisplayMode:     entity.DisplayModeUsed,
		TransactionDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Value:           decimal.NewFromInt(value),
		EstimatedValue:  decimal.NewFromInt(value),
		Frequency:       &freq,
	}
	if err := f.txRepo.Create(context.Background(), parent); err != nil {
		t.Fatal(err)
	}

	for _, date := range childDates {
		parentID := parent.ID
		child := &entity.CashTransaction{
			ID:              uuid.New(),
			ProjectID:       f.project.ID,
			OwnerID:         f.project.OwnerID,
			CashGroupID:     f.row.CashGroupID,
			CashEntryRowID:  f.row.ID,
			Description:     "rent payment",
			DisplayMode:     entity.DisplayModeUsed,
			TransactionDate: date,
			Value:           decimal.NewFromInt(value),
			EstimatedValue:  decimal.NewFromInt(value),
			ParentID:        &parentID,
		}
		if err := f.txRepo.Create(context.Background(), child); err != nil {
			t.Fatal(err)
		}
	}

	return parent
}

func TestUpsertInsertPath(t *testing.T) {
	t.Run("single payload inserts one standalone transaction", func(t *testing.T) {
		f := newEngineFixture(t)

		out, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{f.payload(100)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != MsgTransactionInserted {
			t.Errorf("expected %q, got %q", MsgTransactionInserted, out.Message)
		}
		if out.Head.Role() != entity.RoleStandalone {
			t.Errorf("expected standalone role, got %s", out.Head.Role())
		}
		if out.Head.CashGroupID != f.row.CashGroupID {
			t.Error("group must be resolved through the entry row")
		}
	})

	t.Run("recurring payload links tail instances to the head", func(t *testing.T) {
		f := newEngineFixture(t)

		monthly := entity.FrequencyMonthly
		head := f.payload(100)
		head.Frequency = &monthly

		second := f.payload(100)
		second.TransactionDate = head.TransactionDate.AddDate(0, 1, 0)
		third := f.payload(100)
		third.TransactionDate = head.TransactionDate.AddDate(0, 2, 0)

		out, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{head, second, third},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		children, _ := f.txRepo.FindChildren(context.Background(), out.Head.ID)
		if len(children) != 2 {
			t.Fatalf("expected 2 instances, got %d", len(children))
		}
		for _, child := range children {
			if child.Frequency != nil {
				t.Error("instances must not carry a recurrence rule")
			}
			if child.ParentID == nil || *child.ParentID != out.Head.ID {
				t.Error("instances must link to the head")
			}
		}
	})

	t.Run("tail payload with its own rule becomes a parent itself", func(t *testing.T) {
		f := newEngineFixture(t)

		monthly := entity.FrequencyMonthly
		weekly := entity.FrequencyWeekly
		head := f.payload(100)
		head.Frequency = &monthly
		tail := f.payload(50)
		tail.Frequency = &weekly

		out, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{head, tail},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		children, _ := f.txRepo.FindChildren(context.Background(), out.Head.ID)
		if len(children) != 0 {
			t.Errorf("a ruled tail payload must not link back, got %d children", len(children))
		}
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		f := newEngineFixture(t)

		_, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
		})
		if err == nil {
			t.Fatal("expected an error for an empty payload")
		}
	})
}

func TestUpsertUpdateTransitions(t *testing.T) {
	t.Run("instance updated alone detaches from its parent", func(t *testing.T) {
		f := newEngineFixture(t)
		parent := f.seedParent(t, entity.FrequencyMonthly, 100,
			time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))

		children, _ := f.txRepo.FindChildren(context.Background(), parent.ID)
		child := children[0]

		childID := child.ID
		payload := f.payload(75)
		payload.ID = &childID

		out, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{payload},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != MsgTransactionUpdated {
			t.Errorf("expected %q, got %q", MsgTransactionUpdated, out.Message)
		}
		if out.Head.ParentID != nil {
			t.Error("updated instance must become independent")
		}
		if !out.Head.Value.Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected value 75, got %s", out.Head.Value)
		}
	})

	t.Run("standalone transaction gets a plain update", func(t *testing.T) {
		f := newEngineFixture(t)

		insertOut, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{f.payload(100)},
		})
		if err != nil {
			t.Fatal(err)
		}

		id := insertOut.Head.ID
		payload := f.payload(120)
		payload.ID = &id

		out, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{payload},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Head.Value.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected value 120, got %s", out.Head.Value)
		}
		if out.Head.Role() != entity.RoleStandalone {
			t.Errorf("expected standalone role, got %s", out.Head.Role())
		}
	})

	t.Run("same frequency with changed value propagates to all instances", func(t *testing.T) {
		f := newEngineFixture(t)
		parent := f.seedParent(t, entity.FrequencyMonthly, 100,
			time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))

		monthly := entity.FrequencyMonthly
		parentID := parent.ID
		payload := f.payload(250)
		payload.ID = &parentID
		payload.Frequency = &monthly
		payload.Description = "raised rent"

		if _, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{payload},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		children, _ := f.txRepo.FindChildren(context.Background(), parent.ID)
		if len(children) != 3 {
			t.Fatalf("expected the 3 instances to survive, got %d", len(children))
		}
		dates := map[int]bool{}
		for _, child := range children {
			if !child.Value.Equal(decimal.NewFromInt(250)) {
				t.Errorf("expected propagated value 250, got %s", child.Value)
			}
			if child.Description != "raised rent" {
				t.Errorf("expected propagated description, got %q", child.Description)
			}
			if child.Frequency != nil || child.FrequencyStopAt != nil {
				t.Error("propagation must clear instance recurrence fields")
			}
			dates[int(child.TransactionDate.Month())] = true
		}
		if len(dates) != 3 {
			t.Error("instance dates must not be overwritten by propagation")
		}
	})

	t.Run("changed frequency re-expands the instance set", func(t *testing.T) {
		f := newEngineFixture(t)
		parent := f.seedParent(t, entity.FrequencyMonthly, 100,
			time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))

		weekly := entity.FrequencyWeekly
		parentID := parent.ID
		head := f.payload(100)
		head.ID = &parentID
		head.Frequency = &weekly

		first := f.payload(100)
		first.TransactionDate = head.TransactionDate.AddDate(0, 0, 7)

		out, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{head, first},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Head.Frequency == nil || *out.Head.Frequency != entity.FrequencyWeekly {
			t.Error("parent must carry the new frequency")
		}
		children, _ := f.txRepo.FindChildren(context.Background(), parent.ID)
		if len(children) != 1 {
			t.Fatalf("expected old instances replaced by 1 new one, got %d", len(children))
		}
		if !children[0].TransactionDate.Equal(first.TransactionDate) {
			t.Error("surviving instance must come from the new payload")
		}
	})

	t.Run("same frequency with same value also re-expands", func(t *testing.T) {
		f := newEngineFixture(t)
		parent := f.seedParent(t, entity.FrequencyMonthly, 100,
			time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))

		monthly := entity.FrequencyMonthly
		parentID := parent.ID
		head := f.payload(100)
		head.ID = &parentID
		head.Frequency = &monthly

		if _, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
			UserID:    f.project.OwnerID,
			ProjectID: f.project.ID,
			Entries:   []EntryPayload{head},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		children, _ := f.txRepo.FindChildren(context.Background(), parent.ID)
		if len(children) != 0 {
			t.Errorf("redefinition without tail must drop the old instances, got %d", len(children))
		}
	})
}

func TestDeleteTransactionCascades(t *testing.T) {
	f := newEngineFixture(t)
	parent := f.seedParent(t, entity.FrequencyMonthly, 100,
		time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))

	other, err := f.uc.Execute(context.Background(), UpsertCashEntryInput{
		UserID:    f.project.OwnerID,
		ProjectID: f.project.ID,
		Entries:   []EntryPayload{f.payload(40)},
	})
	if err != nil {
		t.Fatal(err)
	}

	gate := access.NewGate(&memProjectRepo{project: f.project}, memSharingRepo{})
	deleteUC := NewDeleteTransactionUseCase(gate, f.txRepo)

	out, err := deleteUC.Execute(context.Background(), DeleteTransactionInput{
		UserID:        f.project.OwnerID,
		ProjectID:     f.project.ID,
		TransactionID: parent.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != MsgTransactionRemoved {
		t.Errorf("expected %q, got %q", MsgTransactionRemoved, out.Message)
	}

	if len(f.txRepo.store) != 1 {
		t.Fatalf("expected only the unrelated transaction to survive, got %d rows", len(f.txRepo.store))
	}
	if _, ok := f.txRepo.store[other.Head.ID]; !ok {
		t.Error("unrelated transaction must not be deleted")
	}
}
