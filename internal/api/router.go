package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/authbase/user-service/internal/api/handler"
	"github.com/authbase/user-service/internal/api/middleware"
	"github.com/authbase/user-service/internal/core/service"
	mongouser "github.com/authbase/user-service/internal/infrastructure/db/mongo"
	"github.com/authbase/user-service/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, issuer *token.Issuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("userauth"))

	// --- Dependencies ---
	userRepo := mongouser.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, issuer, log)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/register", authHandler.Register)
	v1.POST("/login", authHandler.Login)
	v1.GET("/me", authHandler.Me, middleware.Auth(issuer))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
