package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dbuhub/blog-admin-api/internal/api/handler"
	"github.com/dbuhub/blog-admin-api/internal/api/middleware"
	"github.com/dbuhub/blog-admin-api/internal/core/service"
	"github.com/dbuhub/blog-admin-api/internal/infrastructure/config"
	"github.com/dbuhub/blog-admin-api/internal/infrastructure/db/mysql"
	redisdb "github.com/dbuhub/blog-admin-api/internal/infrastructure/db/redis"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login rate limiting is then disabled.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	tokenService, err := service.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.Algorithm)
	if err != nil {
		return nil, err
	}

	userRepo := mysql.NewUserRepository(db)
	postRepo := mysql.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, tokenService)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authGate := middleware.Auth(tokenService, userRepo)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/", authHandler.Register)
	if rdb != nil {
		limiter := redisdb.NewFixedWindowLimiter(rdb, loginRateLimit, loginRateWindow)
		auth.POST("/token", authHandler.Login, middleware.RateLimit(limiter, log))
	} else {
		auth.POST("/token", authHandler.Login)
	}

	// --- Post routes ---
	post := e.Group("/post")
	post.POST("", postHandler.Create, authGate)
	post.GET("/all", postHandler.List)
	post.PUT("/:id", postHandler.Update, authGate)
	post.DELETE("/:id", postHandler.Delete, authGate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
