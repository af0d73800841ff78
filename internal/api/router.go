package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devconnector/api/internal/api/handler"
	"github.com/devconnector/api/internal/api/middleware"
	"github.com/devconnector/api/internal/core/service"
	mongodb "github.com/devconnector/api/internal/infrastructure/db/mongo"
	redisdb "github.com/devconnector/api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *service.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("devconnector"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	profileCache := redisdb.NewProfileCache(rdb)

	authService := service.NewAuthService(userRepo, tokens)
	profileService := service.NewProfileService(profileRepo, userRepo, profileCache, log)
	postService := service.NewPostService(postRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)

	auth := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/api/user", authHandler.Register)
	e.POST("/api/auth", authHandler.Login)
	e.GET("/api/auth", authHandler.Me, auth)

	// --- Profile routes ---
	e.GET("/api/profile", profileHandler.List)
	e.GET("/api/profile/me", profileHandler.Me, auth)
	e.GET("/api/profile/user/:user_id", profileHandler.GetByUser)
	e.POST("/api/profile", profileHandler.Upsert, auth)
	e.DELETE("/api/profile", profileHandler.Delete, auth)
	e.PUT("/api/profile/experience", profileHandler.AddExperience, auth)
	e.DELETE("/api/profile/experience/:exp_id", profileHandler.RemoveExperience, auth)
	e.PUT("/api/profile/education", profileHandler.AddEducation, auth)
	e.DELETE("/api/profile/education/:edu_id", profileHandler.RemoveEducation, auth)

	// --- Post routes ---
	e.POST("/api/posts", postHandler.Create, auth)
	e.GET("/api/posts", postHandler.List, auth)
	e.GET("/api/posts/:id", postHandler.Get, auth)
	e.DELETE("/api/posts/:id", postHandler.Delete, auth)
	e.PUT("/api/posts/like/:id", postHandler.Like, auth)
	e.PUT("/api/posts/unlike/:id", postHandler.Unlike, auth)
	e.POST("/api/posts/comment/:id", postHandler.AddComment, auth)
	e.DELETE("/api/posts/comment/:id/:comment_id", postHandler.RemoveComment, auth)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
