package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nvales/watchdex/internal/api/handler"
	customMiddleware "github.com/nvales/watchdex/internal/api/middleware"
	"github.com/nvales/watchdex/internal/config"
	"github.com/nvales/watchdex/internal/repository/mongodb"
	"github.com/nvales/watchdex/internal/repository/redis"
	"github.com/nvales/watchdex/internal/security"
	"github.com/nvales/watchdex/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, mongoClient *mongodb.Client, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.AccessTokenSecret,
		cfg.Auth.RefreshTokenSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Repositories and cache
	userRepo := mongodb.NewUserRepository(mongoClient)
	watchRepo := mongodb.NewWatchRepository(mongoClient)
	watchCache := redis.NewWatchCache(redisClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	watchService := service.NewWatchService(watchRepo, watchCache)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	watchHandler := handler.NewWatchHandler(watchService)

	// Auth middleware
	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager, authService)

	// Health
	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(mongoClient, redisClient))

	// Auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh-token", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/profile", authHandler.Profile)
			r.Put("/profile", authHandler.UpdateProfile)
		})
	})

	// Catalog routes
	r.Route("/watches", func(r chi.Router) {
		r.Get("/", watchHandler.List)
		r.Get("/{id}", watchHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/", watchHandler.Create)
			r.Put("/{id}", watchHandler.Update)
			r.Delete("/{id}", watchHandler.Delete)
			r.Post("/{id}/reviews", watchHandler.AddReview)
		})
	})

	return r
}
