// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cashgps/backend/config"
	"github.com/cashgps/backend/internal/application/usecase/access"
	"github.com/cashgps/backend/internal/application/usecase/auth"
	"github.com/cashgps/backend/internal/application/usecase/billing"
	"github.com/cashgps/backend/internal/application/usecase/cashentry"
	"github.com/cashgps/backend/internal/application/usecase/cashgroup"
	"github.com/cashgps/backend/internal/application/usecase/entryrow"
	"github.com/cashgps/backend/internal/application/usecase/plans"
	"github.com/cashgps/backend/internal/application/usecase/project"
	"github.com/cashgps/backend/internal/application/usecase/sharing"
	"github.com/cashgps/backend/internal/infra/server/router"
	"github.com/cashgps/backend/internal/integration/adapters"
	"github.com/cashgps/backend/internal/integration/email"
	"github.com/cashgps/backend/internal/integration/entrypoint/controller"
	"github.com/cashgps/backend/internal/integration/entrypoint/middleware"
	"github.com/cashgps/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	projectRepo := persistence.NewProjectRepository(db)
	groupRepo := persistence.NewGroupRepository(db)
	entryRowRepo := persistence.NewEntryRowRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	sharingRepo := persistence.NewSharingRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	exchangeRates := adapters.NewExchangeClient(cfg.Exchange.BaseURL, cfg.Exchange.APIKey)
	paymentGateway := adapters.NewStripeGateway(cfg.Stripe.APIKey)
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailService, err := email.NewService(cfg.Email.AppBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build email service: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Permission gate shared by the project sub-resource use cases
	gate := access.NewGate(projectRepo, sharingRepo)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailSender, emailService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, emailSender, emailService)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService)
	getUserUseCase := auth.NewGetUserUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Project use cases
	createOrUpdateProjectUseCase := project.NewCreateOrUpdateProjectUseCase(projectRepo, transactionRepo, userRepo, exchangeRates)
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)
	getProjectUseCase := project.NewGetProjectUseCase(gate)
	getProjectInfoUseCase := project.NewGetProjectInfoUseCase(gate)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo)

	// Group use cases
	createOrUpdateGroupUseCase := cashgroup.NewCreateOrUpdateGroupUseCase(gate, groupRepo, userRepo)
	listGroupsUseCase := cashgroup.NewListGroupsUseCase(gate, groupRepo)
	deleteGroupUseCase := cashgroup.NewDeleteGroupUseCase(gate, groupRepo)

	// Entry row use cases
	createOrUpdateEntryRowUseCase := entryrow.NewCreateOrUpdateEntryRowUseCase(gate, entryRowRepo, transactionRepo, userRepo)
	listEntryRowsUseCase := entryrow.NewListEntryRowsUseCase(gate, entryRowRepo)
	storeRankUseCase := entryrow.NewStoreRankAfterDragDropUseCase(gate, entryRowRepo)
	deleteEntryRowUseCase := entryrow.NewDeleteEntryRowUseCase(gate, entryRowRepo)

	// Cash entry use cases
	upsertCashEntryUseCase := cashentry.NewUpsertCashEntryUseCase(gate, transactionRepo, entryRowRepo)
	listTransactionsUseCase := cashentry.NewListTransactionsInRowInDayUseCase(gate, transactionRepo)
	deleteTransactionUseCase := cashentry.NewDeleteTransactionUseCase(gate, transactionRepo)

	// Sharing use cases
	inviteUseCase := sharing.NewInviteUseCase(projectRepo, sharingRepo, userRepo, emailSender, emailService)
	updatePermissionUseCase := sharing.NewUpdatePermissionUseCase(projectRepo, sharingRepo)
	deleteRecordUseCase := sharing.NewDeleteRecordUseCase(projectRepo, sharingRepo)
	listAuthorizedUsersUseCase := sharing.NewListAuthorizedUsersUseCase(gate, sharingRepo, userRepo)

	// Plan and billing use cases
	listPlansUseCase := plans.NewListPlansUseCase()
	handleWebhookUseCase := billing.NewHandleWebhookUseCase(subscriptionRepo, userRepo, paymentGateway)

	// Controllers
	healthController := controller.NewHealthController()
	authController := controller.NewAuthController(registerUseCase, loginUseCase, forgotPasswordUseCase, resetPasswordUseCase)
	userController := controller.NewUserController(getUserUseCase, updateProfileUseCase, changePasswordUseCase)
	projectController := controller.NewProjectController(
		createOrUpdateProjectUseCase,
		listProjectsUseCase,
		getProjectUseCase,
		getProjectInfoUseCase,
		deleteProjectUseCase,
	)
	groupController := controller.NewGroupController(createOrUpdateGroupUseCase, listGroupsUseCase, deleteGroupUseCase)
	entryRowController := controller.NewEntryRowController(
		createOrUpdateEntryRowUseCase,
		listEntryRowsUseCase,
		storeRankUseCase,
		deleteEntryRowUseCase,
	)
	cashEntryController := controller.NewCashEntryController(upsertCashEntryUseCase, listTransactionsUseCase, deleteTransactionUseCase)
	sharingController := controller.NewSharingController(inviteUseCase, updatePermissionUseCase, deleteRecordUseCase, listAuthorizedUsersUseCase)
	planController := controller.NewPlanController(listPlansUseCase)
	billingController := controller.NewBillingController(handleWebhookUseCase, cfg.Stripe.WebhookSecret)

	// Middleware
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		projectController,
		groupController,
		entryRowController,
		cashEntryController,
		sharingController,
		planController,
		billingController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}, nil
}
