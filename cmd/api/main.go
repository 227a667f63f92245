package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/cardbox/cardbox-go/internal/config"
	"github.com/cardbox/cardbox-go/internal/handler"
	"github.com/cardbox/cardbox-go/internal/middleware"
	"github.com/cardbox/cardbox-go/internal/repository"
	"github.com/cardbox/cardbox-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	cardRepo := repository.NewCardRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo)
	cardService := service.NewCardService(cardRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	cardHandler := handler.NewCardHandler(cardService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Signup and signin are the only routes that bypass the auth gate.
	r.Post("/signup", authHandler.HandleSignup)
	r.Post("/signin", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		r.Get("/users", userHandler.HandleList)
		r.Get("/users/me", userHandler.HandleMe)
		r.Patch("/users/me", userHandler.HandleUpdateProfile)
		r.Patch("/users/me/avatar", userHandler.HandleUpdateAvatar)
		r.Get("/users/{id}", userHandler.HandleGet)

		r.Get("/cards", cardHandler.HandleList)
		r.Post("/cards", cardHandler.HandleCreate)
		r.Delete("/cards/{id}", cardHandler.HandleDelete)
		r.Put("/cards/{id}/likes", cardHandler.HandleAddLike)
		r.Delete("/cards/{id}/likes", cardHandler.HandleRemoveLike)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
