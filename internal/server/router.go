// Package server assembles the HTTP router: middleware chain, system routes,
// and the authenticated API groups.
package server

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"budgetnatin/internal/config"
	"budgetnatin/internal/events"
	"budgetnatin/internal/handlers"
	"budgetnatin/internal/metrics"
	"budgetnatin/internal/middleware"
	"budgetnatin/internal/oauth"
	"budgetnatin/internal/services"

	_ "budgetnatin/internal/docs" // swagger spec
)

// Deps carries everything the router needs to build services and handlers.
// Pinger, Google, Publisher and Metrics may be nil.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Pinger    handlers.Pinger
	Tokens    *middleware.TokenManager
	Google    oauth.GoogleProvider
	Publisher events.Publisher
	Metrics   *metrics.Metrics
}

// Services groups the service layer the routes are built on.
type Services struct {
	Users         services.UserServicer
	Categories    services.CategoryServicer
	Expenses      services.ExpenseServicer
	Budgets       services.BudgetServicer
	ExtraMoney    services.ExtraMoneyServicer
	Notifications services.NotificationServicer
}

// NewServices builds the service layer on top of db.
func NewServices(d Deps) *Services {
	publisher := d.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Services{
		Users:         services.NewUserService(d.DB),
		Categories:    services.NewCategoryService(d.DB),
		Expenses:      services.NewExpenseService(d.DB),
		Budgets:       services.NewBudgetService(d.DB),
		ExtraMoney:    services.NewExtraMoneyService(d.DB),
		Notifications: services.NewNotificationService(d.DB, publisher, d.Metrics),
	}
}

// NewRouter wires middleware and routes for the given services.
func NewRouter(d Deps, svc *Services) *gin.Engine {
	cfg := d.Config

	authHandler := handlers.NewAuthHandler(svc.Users, d.Tokens, d.Google, cfg.ClientURL)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets)
	extraMoneyHandler := handlers.NewExtraMoneyHandler(svc.ExtraMoney)
	notificationHandler := handlers.NewNotificationHandler(svc.Notifications)
	pinger := d.Pinger
	if pinger == nil {
		pinger = gormPinger{db: d.DB}
	}
	systemHandler := handlers.NewSystemHandler(pinger, cfg.Env)

	router := gin.New()
	router.Use(middleware.Recovery(!cfg.IsProduction()))
	router.Use(middleware.RequestLogging())
	router.Use(d.Metrics.Middleware())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NotFound())

	// System
	router.GET("/", systemHandler.Index)
	router.GET("/health", systemHandler.Health)
	router.GET("/keep-alive", systemHandler.KeepAlive)
	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	requireAuth := middleware.AuthMiddleware(d.Tokens)

	// Auth
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/google", authHandler.GoogleLogin)
	auth.GET("/google/callback", authHandler.GoogleCallback)
	auth.GET("/me", requireAuth, authHandler.Me)

	protected := api.Group("")
	protected.Use(requireAuth)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.POST("/batch", expenseHandler.CreateExpenses)
	expenses.PUT("/:expense_id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:expense_id", expenseHandler.DeleteExpense)

	categories := protected.Group("/expense-categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.PUT("/:category_id", categoryHandler.UpdateCategory)
	categories.DELETE("/:category_id", categoryHandler.DeleteCategory)

	budgets := protected.Group("/monthly-budget")
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.POST("", budgetHandler.UpsertBudget)
	budgets.PUT("/:budget_id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:budget_id", budgetHandler.DeleteBudget)

	extra := protected.Group("/extra-money")
	extra.GET("", extraMoneyHandler.ListExtraMoney)
	extra.POST("", extraMoneyHandler.CreateExtraMoney)
	extra.PUT("/:extra_id", extraMoneyHandler.UpdateExtraMoney)
	extra.DELETE("/:extra_id", extraMoneyHandler.DeleteExtraMoney)

	notifications := protected.Group("/notifications")
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.PUT("/read-all", notificationHandler.MarkAllAsRead)
	notifications.POST("/check-overdue", notificationHandler.CheckOverdue)
	notifications.PUT("/:id/read", notificationHandler.MarkAsRead)
	notifications.DELETE("/:id", notificationHandler.DeleteNotification)

	return router
}

type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
