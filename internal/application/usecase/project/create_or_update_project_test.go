package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

type memProjectRepo struct {
	adapter.ProjectRepository

	projects          map[uuid.UUID]*entity.CashProject
	scaleBalanceCalls int
	updateCalls       int
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: map[uuid.UUID]*entity.CashProject{}}
}

func (m *memProjectRepo) Create(ctx context.Context, project *entity.CashProject) error {
	m.projects[project.ID] = project
	return nil
}

func (m *memProjectRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.CashProject, error) {
	project, ok := m.projects[id]
	if !ok || project.OwnerID != ownerID {
		return nil, domainerror.ErrProjectNotFound
	}
	copied := *project
	return &copied, nil
}

func (m *memProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	count := 0
	for _, project := range m.projects {
		if project.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (m *memProjectRepo) Update(ctx context.Context, project *entity.CashProject) error {
	m.updateCalls++
	m.projects[project.ID] = project
	return nil
}

func (m *memProjectRepo) ScaleStartingBalance(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error {
	m.scaleBalanceCalls++
	project, ok := m.projects[id]
	if !ok {
		return domainerror.ErrProjectNotFound
	}
	project.StartingBalance = project.StartingBalance.Mul(rate)
	return nil
}

type scalingTransactionRepo struct {
	adapter.TransactionRepository

	scaleCalls int
	scaleErr   error
}

func (r *scalingTransactionRepo) ScaleValues(ctx context.Context, ownerID, projectID uuid.UUID, rate decimal.Decimal) error {
	r.scaleCalls++
	return r.scaleErr
}

type singleUserRepo struct {
	adapter.UserRepository

	user *entity.User
}

func (r *singleUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}

type fixedRateService struct {
	rate decimal.Decimal
	err  error
}

func (s fixedRateService) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.rate, nil
}

func seedProject(t *testing.T, repo *memProjectRepo, ownerID uuid.UUID) *entity.CashProject {
	t.Helper()
	project := entity.NewCashProject(
		ownerID,
		"Household",
		decimal.NewFromInt(1000),
		"EUR",
		"Europe/Paris",
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		entity.EncodeWeekSchedule(false, false),
	)
	if err := repo.Create(context.Background(), project); err != nil {
		t.Fatal(err)
	}
	return project
}

func TestCurrencyConversion(t *testing.T) {
	ownerID := uuid.New()
	rate := decimal.RequireFromString("0.92")

	updateInput := func(project *entity.CashProject) CreateOrUpdateProjectInput {
		return CreateOrUpdateProjectInput{
			ID:              &project.ID,
			OwnerID:         ownerID,
			Name:            project.Name,
			StartingBalance: project.StartingBalance,
			Currency:        "USD",
			Timezone:        project.Timezone,
			StartDate:       project.StartDate,
		}
	}

	t.Run("currency change scales transactions and balance", func(t *testing.T) {
		projectRepo := newMemProjectRepo()
		transactionRepo := &scalingTransactionRepo{}
		project := seedProject(t, projectRepo, ownerID)
		uc := NewCreateOrUpdateProjectUseCase(projectRepo, transactionRepo, &singleUserRepo{}, fixedRateService{rate: rate})

		out, err := uc.Execute(context.Background(), updateInput(project))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Project.Currency != "USD" {
			t.Errorf("expected currency USD, got %s", out.Project.Currency)
		}
		if !out.Project.StartingBalance.Equal(decimal.NewFromInt(920)) {
			t.Errorf("expected balance 920, got %s", out.Project.StartingBalance)
		}
		if transactionRepo.scaleCalls != 1 || projectRepo.scaleBalanceCalls != 1 {
			t.Errorf("expected one scale of each, got transactions=%d balance=%d",
				transactionRepo.scaleCalls, projectRepo.scaleBalanceCalls)
		}
	})

	t.Run("bulk scale failure leaves the balance in the old currency", func(t *testing.T) {
		projectRepo := newMemProjectRepo()
		transactionRepo := &scalingTransactionRepo{scaleErr: errors.New("statement timeout")}
		project := seedProject(t, projectRepo, ownerID)
		uc := NewCreateOrUpdateProjectUseCase(projectRepo, transactionRepo, &singleUserRepo{}, fixedRateService{rate: rate})

		_, err := uc.Execute(context.Background(), updateInput(project))
		var projectErr *domainerror.ProjectError
		if !errors.As(err, &projectErr) || projectErr.Code != domainerror.ErrCodeCurrencyConversion {
			t.Fatalf("expected currency conversion error, got %v", err)
		}
		if projectRepo.scaleBalanceCalls != 0 {
			t.Error("balance must not be scaled when the transaction scale fails")
		}
		stored := projectRepo.projects[project.ID]
		if stored.Currency != "EUR" || !stored.StartingBalance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("stored project must be untouched, got %s %s", stored.Currency, stored.StartingBalance)
		}
		if projectRepo.updateCalls != 0 {
			t.Error("the project row must not be updated on a failed conversion")
		}
	})

	t.Run("rate lookup failure applies no writes", func(t *testing.T) {
		projectRepo := newMemProjectRepo()
		transactionRepo := &scalingTransactionRepo{}
		project := seedProject(t, projectRepo, ownerID)
		uc := NewCreateOrUpdateProjectUseCase(projectRepo, transactionRepo, &singleUserRepo{}, fixedRateService{err: errors.New("upstream down")})

		_, err := uc.Execute(context.Background(), updateInput(project))
		var projectErr *domainerror.ProjectError
		if !errors.As(err, &projectErr) || projectErr.Code != domainerror.ErrCodeCurrencyConversion {
			t.Fatalf("expected currency conversion error, got %v", err)
		}
		if transactionRepo.scaleCalls != 0 || projectRepo.scaleBalanceCalls != 0 {
			t.Error("no scaling may run when the rate cannot be resolved")
		}
	})
}
