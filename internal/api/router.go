package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ShaharSolema/TasksFlow/docs"
	"github.com/ShaharSolema/TasksFlow/internal/api/handler"
	"github.com/ShaharSolema/TasksFlow/internal/api/middleware"
	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/service"
	"github.com/ShaharSolema/TasksFlow/internal/infrastructure/config"
	mongorepo "github.com/ShaharSolema/TasksFlow/internal/infrastructure/db/mongo"
	redisinfra "github.com/ShaharSolema/TasksFlow/internal/infrastructure/db/redis"
	"github.com/ShaharSolema/TasksFlow/internal/infrastructure/salary"
)

const tokenTTL = 7 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tasksflow"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)
	denylist := redisinfra.NewTokenDenylist(rdb)
	salaryClient := salary.NewClient(cfg.Salary, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, tokenTTL, log)
	boardService := service.NewBoardService(userRepo, service.DefaultBoardConfig(), log)
	taskService := service.NewTaskService(taskRepo, log)
	jobService := service.NewJobService(jobRepo, salaryClient, log)
	adminService := service.NewAdminService(userRepo, taskRepo, log)

	// --- Handlers ---
	secureCookie := cfg.Env == "production"
	authHandler := handler.NewAuthHandler(authService, secureCookie)
	columnHandler := handler.NewColumnHandler(boardService)
	tagHandler := handler.NewTagHandler(boardService)
	taskHandler := handler.NewTaskHandler(taskService)
	jobHandler := handler.NewJobHandler(jobService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMW := middleware.Auth(cfg.JWTSecret, denylist)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMW)
	e.GET("/auth/me", authHandler.Me, authMW)
	e.PUT("/auth/update-profile", authHandler.UpdateProfile, authMW)

	// --- Board configuration routes ---
	columns := e.Group("/columns", authMW)
	columns.GET("/:kind", columnHandler.List)
	columns.POST("/:kind", columnHandler.Add)
	columns.PATCH("/:kind", columnHandler.Reorder)
	columns.PATCH("/:kind/:key", columnHandler.Update)
	columns.DELETE("/:kind/:key", columnHandler.Delete)

	tags := e.Group("/tags", authMW)
	tags.GET("/:kind", tagHandler.List)
	tags.POST("/:kind/labels", tagHandler.AddLabel)
	tags.POST("/:kind/categories", tagHandler.AddCategory)

	// --- Task routes ---
	tasks := e.Group("/tasks", authMW)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Job routes ---
	jobs := e.Group("/jobs", authMW)
	jobs.POST("", jobHandler.Create)
	jobs.GET("", jobHandler.List)
	jobs.GET("/estimate-salary", jobHandler.EstimateSalary)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PUT("/:id", jobHandler.Update)
	jobs.DELETE("/:id", jobHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/admin", authMW, adminOnly)
	admin.GET("/analytics", adminHandler.Analytics)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/role", adminHandler.UpdateRole)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
