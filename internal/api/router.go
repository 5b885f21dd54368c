package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/losdealla/members-api/internal/api/handler"
	"github.com/losdealla/members-api/internal/api/middleware"
	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
	"github.com/losdealla/members-api/internal/core/service"
	"github.com/losdealla/members-api/internal/infrastructure/config"
	mongodb "github.com/losdealla/members-api/internal/infrastructure/db/mongo"
	redisdb "github.com/losdealla/members-api/internal/infrastructure/db/redis"
	"github.com/losdealla/members-api/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, catalogs *domain.CatalogSet, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORS.Origins,
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	revoker := redisdb.NewRevocationList(rdb)

	var verifier ports.TokenVerifier
	switch cfg.Auth.Backend {
	case config.AuthBackendIdentity:
		verifier = token.NewIdentityVerifier(cfg.Auth.IdentityURL, cfg.Auth.IdentityKey)
	default:
		verifier = token.NewHMACVerifier(cfg.Auth.JWTSecret)
	}
	issuer := token.NewHMACIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, verifier, issuer, revoker, log)
	materialService := service.NewMaterialService(catalogs, log)
	userService := service.NewUserService(userRepo, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	materialHandler := handler.NewMaterialHandler(materialService)
	userHandler := handler.NewUserHandler(authService, userService)
	postHandler := handler.NewPostHandler(postService)

	authed := middleware.Auth(authService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Material routes ---
	e.GET("/:discipline/material", materialHandler.Material, authed)

	// --- User management ---
	users := e.Group("/users")
	users.Use(authed)
	users.GET("", userHandler.List, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("/:email", userHandler.Update, adminOnly)
	users.DELETE("/:email", userHandler.Delete, adminOnly)
	users.PATCH("/password", userHandler.ChangePassword)

	// --- Blog ---
	e.GET("/posts", postHandler.List)
	e.GET("/posts/:id", postHandler.Get)
	e.POST("/posts", postHandler.Create, authed, adminOnly)
	e.PUT("/posts/:id", postHandler.Update, authed, adminOnly)
	e.DELETE("/posts/:id", postHandler.Delete, authed, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
