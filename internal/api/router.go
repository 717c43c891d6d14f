package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/crediya/auth-service/docs"
	"github.com/crediya/auth-service/internal/api/handler"
	"github.com/crediya/auth-service/internal/api/middleware"
	"github.com/crediya/auth-service/internal/core/service"
	"github.com/crediya/auth-service/internal/infrastructure/config"
	mongodb "github.com/crediya/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/crediya/auth-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	hasher := service.NewBcryptHasher(0)
	tokens := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	registry := service.DefaultRoleRegistry(log)
	validator := service.NewUserValidator(userRepo, roleRepo)

	userService := service.NewUserService(userRepo, validator, hasher, log)
	authService := service.NewAuthService(userRepo, registry, hasher, tokens, limiter, log)
	subjectRoles := service.NewSubjectRoles(userRepo, registry)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	// Authentication runs on every route; the skip list exempts login,
	// probes, metrics and docs before any token work happens.
	e.Use(middleware.Auth(tokens, cfg.AuthSkipPaths))

	// --- Auth routes ---
	e.POST("/api/v1/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/api/v1/users")
	users.POST("", userHandler.Register,
		middleware.Authorize(service.NewCreatePolicy(), subjectRoles, "users"))
	users.GET("", userHandler.GetByEmail,
		middleware.Authorize(service.NewReadPolicy(), subjectRoles, "users"))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
