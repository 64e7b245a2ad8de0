package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/creomotion/agency-api/docs"
	"github.com/creomotion/agency-api/internal/api/handler"
	"github.com/creomotion/agency-api/internal/api/middleware"
	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/service"
	"github.com/creomotion/agency-api/internal/infrastructure/config"
	mongorepo "github.com/creomotion/agency-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/creomotion/agency-api/internal/infrastructure/db/redis"
	"github.com/creomotion/agency-api/internal/infrastructure/pdf"
	"github.com/creomotion/agency-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered, plus the
// activity dispatcher the caller must Start before serving.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("creomotion"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	clientRepo := mongorepo.NewClientRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)
	deliverableRepo := mongorepo.NewDeliverableRepository(db)
	timeEntryRepo := mongorepo.NewTimeEntryRepository(db)
	invoiceRepo := mongorepo.NewInvoiceRepository(db)
	activityRepo := mongorepo.NewActivityRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, clientRepo, cfg.JWTSecret, cfg.SessionTTL, log)
	userService := service.NewUserService(userRepo, log)
	clientService := service.NewClientService(clientRepo, projectRepo, log)
	projectService := service.NewProjectService(projectRepo, clientRepo, taskRepo, deliverableRepo, log)
	taskService := service.NewTaskService(taskRepo, projectRepo, userRepo, clientRepo, log)
	deliverableService := service.NewDeliverableService(deliverableRepo, projectRepo, clientRepo, log)
	timeEntryService := service.NewTimeEntryService(timeEntryRepo, projectRepo, taskRepo, clientRepo, log)
	invoiceService := service.NewInvoiceService(
		invoiceRepo, clientRepo, projectRepo,
		redisinfra.NewInvoiceSequence(rdb),
		pdf.NewInvoiceRenderer(cfg.AgencyName),
		log,
	)
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService, dispatcher)
	clientHandler := handler.NewClientHandler(clientService, dispatcher)
	projectHandler := handler.NewProjectHandler(projectService, dispatcher)
	taskHandler := handler.NewTaskHandler(taskService, dispatcher)
	deliverableHandler := handler.NewDeliverableHandler(deliverableService, dispatcher)
	timeEntryHandler := handler.NewTimeEntryHandler(timeEntryService, dispatcher)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, dispatcher)
	activityHandler := handler.NewActivityHandler(activityService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	session := middleware.Session(cfg.JWTSecret)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleEditor)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleEditor, domain.RoleClient)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/portal-login", authHandler.PortalLogin)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session routes ---
	e.GET("/auth/me", authHandler.Me, session)

	// --- Users: admin only ---
	users := e.Group("/users", session, adminOnly)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Clients ---
	clients := e.Group("/clients", session)
	clients.POST("", clientHandler.Create, staff)
	clients.GET("", clientHandler.List, anyRole)
	clients.GET("/:id", clientHandler.Get, anyRole)
	clients.PUT("/:id", clientHandler.Update, staff)
	clients.DELETE("/:id", clientHandler.Delete, adminOnly)

	// --- Projects ---
	projects := e.Group("/projects", session)
	projects.POST("", projectHandler.Create, staff)
	projects.GET("", projectHandler.List, anyRole)
	projects.GET("/:id", projectHandler.Get, anyRole)
	projects.PUT("/:id", projectHandler.Update, staff)
	projects.DELETE("/:id", projectHandler.Delete, adminOnly)

	// --- Tasks ---
	tasks := e.Group("/tasks", session)
	tasks.POST("", taskHandler.Create, staff)
	tasks.GET("", taskHandler.List, anyRole)
	tasks.GET("/:id", taskHandler.Get, anyRole)
	tasks.PUT("/:id", taskHandler.Update, staff)
	tasks.DELETE("/:id", taskHandler.Delete, adminOnly)

	// --- Deliverables: update is open to clients for review decisions ---
	deliverables := e.Group("/deliverables", session)
	deliverables.POST("", deliverableHandler.Create, staff)
	deliverables.GET("", deliverableHandler.List, anyRole)
	deliverables.GET("/:id", deliverableHandler.Get, anyRole)
	deliverables.PUT("/:id", deliverableHandler.Update, anyRole)
	deliverables.DELETE("/:id", deliverableHandler.Delete, adminOnly)

	// --- Time entries ---
	timeEntries := e.Group("/time-entries", session)
	timeEntries.POST("", timeEntryHandler.Create, staff)
	timeEntries.GET("", timeEntryHandler.List, anyRole)
	timeEntries.GET("/:id", timeEntryHandler.Get, anyRole)
	timeEntries.PUT("/:id", timeEntryHandler.Update, staff)
	timeEntries.DELETE("/:id", timeEntryHandler.Delete, staff)

	// --- Invoices ---
	invoices := e.Group("/invoices", session)
	invoices.POST("", invoiceHandler.Create, staff)
	invoices.GET("", invoiceHandler.List, anyRole)
	invoices.GET("/:id", invoiceHandler.Get, anyRole)
	invoices.PUT("/:id", invoiceHandler.Update, staff)
	invoices.PATCH("/:id/status", invoiceHandler.UpdateStatus, staff)
	invoices.DELETE("/:id", invoiceHandler.Delete, adminOnly)
	invoices.GET("/:id/pdf", invoiceHandler.PDF, anyRole)

	// --- Activity feed: admin only ---
	e.GET("/activity", activityHandler.Recent, session, adminOnly)

	return e, dispatcher
}
