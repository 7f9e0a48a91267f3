// Command dogadopt runs the Dog Adoption Platform API: configuration,
// database pool and migrations, service wiring, HTTP routing, and graceful
// shutdown.
//
// @title Dog Adoption Platform API
// @version 1.0
// @description REST API for registering, adopting, and managing dog adoption listings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/dogadopt-go/apperror"
	"github.com/user/dogadopt-go/auth"
	"github.com/user/dogadopt-go/config"
	"github.com/user/dogadopt-go/db"
	_ "github.com/user/dogadopt-go/docs" // generated Swagger docs
	"github.com/user/dogadopt-go/dogs"
	"github.com/user/dogadopt-go/logger"
	"github.com/user/dogadopt-go/metrics"
	"github.com/user/dogadopt-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: .env file not found or error loading it: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.ParseLevel(cfg.Log.Level), cfg.Log.File)

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Error("failed to run migrations", logger.Fields{"error": err})
		os.Exit(1)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Error("failed to create database pool", logger.Fields{"error": err})
		os.Exit(1)
	}
	defer pool.Close()

	// Services and handlers. Dependencies are injected through constructors;
	// the dog registry resolves usernames through the user directory.
	authService := auth.NewService(pool, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewService(pool)

	dogService := dogs.NewService(pool, userService)
	dogHandler := dogs.NewHandler(dogService)

	r := chi.NewRouter()

	// Global middleware, registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that keeps the error envelope consistent with apperror.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Error("panic while handling request", logger.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  rvr,
					})
					writeError(ww, apperror.NewInternalError("Internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "Dog Adoption Platform API is running!",
		})
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
	})

	r.Route("/api/dogs", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		dogHandler.RegisterRoutes(r)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, apperror.NewNotFoundError("Route not found", nil))
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", logger.Fields{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", logger.Fields{"error": err})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", logger.Fields{"error": err})
		os.Exit(1)
	}
	log.Info("server stopped gracefully", nil)
}

// writeError is a local helper for the recovery and not-found paths, kept
// here to avoid pulling handler packages into main.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"message":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
