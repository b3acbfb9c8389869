package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usersvc/users-api/internal/api/handler"
	"github.com/usersvc/users-api/internal/api/middleware"
	"github.com/usersvc/users-api/internal/core/service"
	mongodb "github.com/usersvc/users-api/internal/infrastructure/db/mongo"
	"github.com/usersvc/users-api/internal/pkg/config"
)

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
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, authService, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	requireUser := middleware.Auth(authService)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "User Microservice"})
	})
	e.POST("/token", authHandler.Token)
	e.POST("/users", userHandler.Create)

	// --- Authenticated routes ---
	e.GET("/users/me", userHandler.Me, requireUser)
	e.PUT("/users", userHandler.Update, requireUser)
	e.DELETE("/users", userHandler.Delete, requireUser)
	e.GET("/users/all", userHandler.ListAll, requireUser)

	// --- Operational surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)              // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)    // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
