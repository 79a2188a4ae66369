// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cashgps/backend/internal/integration/entrypoint/controller"
	"github.com/cashgps/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	userController      *controller.UserController
	projectController   *controller.ProjectController
	groupController     *controller.GroupController
	entryRowController  *controller.EntryRowController
	cashEntryController *controller.CashEntryController
	sharingController   *controller.SharingController
	planController      *controller.PlanController
	billingController   *controller.BillingController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	projectController *controller.ProjectController,
	groupController *controller.GroupController,
	entryRowController *controller.EntryRowController,
	cashEntryController *controller.CashEntryController,
	sharingController *controller.SharingController,
	planController *controller.PlanController,
	billingController *controller.BillingController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		userController:      userController,
		projectController:   projectController,
		groupController:     groupController,
		entryRowController:  entryRowController,
		cashEntryController: cashEntryController,
		sharingController:   sharingController,
		planController:      planController,
		billingController:   billingController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/forgot-password", r.authController.ForgotPassword)
		auth.POST("/reset-password", r.authController.ResetPassword)
	}

	// Webhooks authenticate with the provider signature, not a bearer token.
	v1.POST("/webhooks/stripe", r.billingController.Webhook)

	v1.GET("/plans", r.planController.List)

	authenticated := v1.Group("")
	authenticated.Use(r.authMiddleware.Authenticate())
	{
		users := authenticated.Group("/users")
		{
			users.GET("/me", r.userController.Get)
			users.PUT("/me", r.userController.UpdateProfile)
			users.PUT("/me/password", r.userController.ChangePassword)
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("", r.projectController.List)
			projects.POST("", r.projectController.CreateOrUpdate)
			projects.GET("/:projectId", r.projectController.Get)
			projects.GET("/:projectId/info", r.projectController.GetInfo)
			projects.DELETE("/:projectId", r.projectController.Delete)

			projects.GET("/:projectId/groups", r.groupController.List)
			projects.POST("/:projectId/groups", r.groupController.CreateOrUpdate)
			projects.DELETE("/:projectId/groups/:groupId", r.groupController.Delete)

			projects.GET("/:projectId/groups/:groupId/rows", r.entryRowController.List)
			projects.POST("/:projectId/rows", r.entryRowController.CreateOrUpdate)
			projects.PUT("/:projectId/rows/rank", r.entryRowController.StoreRank)
			projects.DELETE("/:projectId/rows/:rowId", r.entryRowController.Delete)

			projects.POST("/:projectId/entries", r.cashEntryController.Upsert)
			projects.GET("/:projectId/rows/:rowId/entries", r.cashEntryController.ListInDay)
			projects.DELETE("/:projectId/entries/:transactionId", r.cashEntryController.Delete)

			projects.GET("/:projectId/sharing", r.sharingController.ListAuthorizedUsers)
			projects.POST("/:projectId/sharing", r.sharingController.Invite)
			projects.PUT("/:projectId/sharing", r.sharingController.UpdatePermission)
			projects.DELETE("/:projectId/sharing/:userId", r.sharingController.Delete)
		}
	}
}
