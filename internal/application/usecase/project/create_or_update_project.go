// Package project contains cash project use cases.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/domain/plan"
)

// CreateOrUpdateProjectInput represents the input for project creation or update.
// A nil ID creates a new project; a non-nil ID updates an existing one.
type CreateOrUpdateProjectInput struct {
	ID              *uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	StartingBalance decimal.Decimal
	Currency        string
	Timezone        string
	StartDate       time.Time
	Saturday        bool
	Sunday          bool
}

// CreateOrUpdateProjectOutput represents the output of project creation or update.
type CreateOrUpdateProjectOutput struct {
	Project *entity.CashProject
}

// CreateOrUpdateProjectUseCase handles project creation and update logic,
// including the subscription limit gate on create and the bulk currency
// conversion on a currency change.
type CreateOrUpdateProjectUseCase struct {
	projectRepo     adapter.ProjectRepository
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	exchangeRates   adapter.ExchangeRateService
}

// NewCreateOrUpdateProjectUseCase creates a new CreateOrUpdateProjectUseCase instance.
func NewCreateOrUpdateProjectUseCase(
	projectRepo adapter.ProjectRepository,
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	exchangeRates adapter.ExchangeRateService,
) *CreateOrUpdateProjectUseCase {
	return &CreateOrUpdateProjectUseCase{
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		exchangeRates:   exchangeRates,
	}
}

// Execute performs the project creation or update.
func (uc *CreateOrUpdateProjectUseCase) Execute(ctx context.Context, input CreateOrUpdateProjectInput) (*CreateOrUpdateProjectOutput, error) {
	if input.ID == nil {
		return uc.create(ctx, input)
	}
	return uc.update(ctx, input)
}

func (uc *CreateOrUpdateProjectUseCase) create(ctx context.Context, input CreateOrUpdateProjectInput) (*CreateOrUpdateProjectOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	count, err := uc.projectRepo.CountByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if !plan.AllowsProject(user.ActiveSubscription, count) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeSubscriptionLimit,
			domainerror.MsgUpgradeSubscription,
			domainerror.ErrSubscriptionLimit,
		)
	}

	project := entity.NewCashProject(
		input.OwnerID,
		input.Name,
		input.StartingBalance,
		input.Currency,
		input.Timezone,
		input.StartDate,
		entity.EncodeWeekSchedule(input.Saturday, input.Sunday),
	)

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateOrUpdateProjectOutput{Project: project}, nil
}

func (uc *CreateOrUpdateProjectUseCase) update(ctx context.Context, input CreateOrUpdateProjectInput) (*CreateOrUpdateProjectOutput, error) {
	project, err := uc.projectRepo.FindByIDAndOwner(ctx, *input.ID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	previousCurrency := project.Currency

	project.Name = input.Name
	project.Timezone = input.Timezone
	project.WeekSchedule = entity.EncodeWeekSchedule(input.Saturday, input.Sunday)
	project.UpdatedAt = time.Now().UTC()

	// The start date and the derived initial cash flow are fixed at
	// creation; updates do not move them.

	if input.Currency != "" && input.Currency != previousCurrency {
		if err := uc.convertCurrency(ctx, project, input.Currency); err != nil {
			return nil, err
		}
		project.Currency = input.Currency
	} else {
		project.StartingBalance = input.StartingBalance
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &CreateOrUpdateProjectOutput{Project: project}, nil
}

// convertCurrency scales the starting balance and every transaction value of
// the project by the exchange rate. The rate is resolved before anything is
// written, so a rate lookup failure applies no partial conversion.
func (uc *CreateOrUpdateProjectUseCase) convertCurrency(ctx context.Context, project *entity.CashProject, toCurrency string) error {
	rate, err := uc.exchangeRates.Rate(ctx, project.Currency, toCurrency)
	if err != nil {
		return domainerror.NewProjectError(
			domainerror.ErrCodeCurrencyConversion,
			"Something was wrong, please update later.",
			domainerror.ErrCurrencyConversion,
		)
	}

	// Transactions are scaled before the starting balance: if the bulk
	// scale fails, the balance still matches the transaction currency.
	if err := uc.transactionRepo.ScaleValues(ctx, project.OwnerID, project.ID, rate); err != nil {
		return domainerror.NewProjectError(
			domainerror.ErrCodeCurrencyConversion,
			"Something was wrong, please update later.",
			err,
		)
	}
	if err := uc.projectRepo.ScaleStartingBalance(ctx, project.ID, rate); err != nil {
		return domainerror.NewProjectError(
			domainerror.ErrCodeCurrencyConversion,
			"Something was wrong, please update later.",
			err,
		)
	}

	project.StartingBalance = project.StartingBalance.Mul(rate)
	return nil
}
