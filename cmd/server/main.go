package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"escapehint/internal/config"
	"escapehint/internal/database"
	"escapehint/internal/handlers"
	"escapehint/internal/repository"
	"escapehint/internal/security"
	"escapehint/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Str("dialect", db.Dialect.DriverName()).Msg("database ready")

	clock := clockwork.NewRealClock()

	themeRepo := repository.NewThemeRepository(db)
	hintRepo := repository.NewHintRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	themeService := service.NewThemeService(themeRepo, sessionRepo, clock)
	hintService := service.NewHintService(hintRepo, themeRepo, clock)
	sessionService := service.NewSessionService(db, sessionRepo, hintRepo, themeRepo, clock)

	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, clock)
	authService, err := service.NewAuthService(cfg.AdminPassword, tokens)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up auth")
	}

	apiLimiter := security.NewRateLimiter(cfg.APIRateLimit, time.Minute)
	loginLimiter := security.NewRateLimiter(cfg.LoginRateLimit, 15*time.Minute)

	mw := handlers.NewMiddleware(authService, apiLimiter, loginLimiter)
	authHandler := handlers.NewAuthHandler(authService)
	themeHandler := handlers.NewThemeHandler(themeService)
	hintHandler := handlers.NewHintHandler(hintService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	// Admin auth
	mux.HandleFunc("POST /api/admin/auth/login", mw.LoginRateLimit(authHandler.Login))
	mux.HandleFunc("GET /api/admin/auth/verify", mw.RequireAdmin(authHandler.Verify))

	// Themes
	mux.HandleFunc("GET /api/themes", themeHandler.ListActive)
	mux.HandleFunc("GET /api/themes/{themeId}/hints", mw.RequireAdmin(hintHandler.ListByTheme))
	mux.HandleFunc("GET /api/admin/themes", mw.RequireAdmin(themeHandler.List))
	mux.HandleFunc("POST /api/admin/themes", mw.RequireAdmin(themeHandler.Create))
	mux.HandleFunc("PUT /api/admin/themes/{themeId}", mw.RequireAdmin(themeHandler.Update))
	mux.HandleFunc("DELETE /api/admin/themes/{themeId}", mw.RequireAdmin(themeHandler.Delete))

	// Hints
	mux.HandleFunc("POST /api/admin/themes/{themeId}/hints", mw.RequireAdmin(hintHandler.Create))
	mux.HandleFunc("PUT /api/admin/hints/{hintId}", mw.RequireAdmin(hintHandler.Update))
	mux.HandleFunc("PATCH /api/admin/hints/{hintId}/order", mw.RequireAdmin(hintHandler.UpdateOrder))
	mux.HandleFunc("DELETE /api/admin/hints/{hintId}", mw.RequireAdmin(hintHandler.Delete))

	// Game sessions
	mux.HandleFunc("POST /api/sessions", sessionHandler.Create)
	mux.HandleFunc("GET /api/sessions/{sessionId}", sessionHandler.Get)
	mux.HandleFunc("POST /api/sessions/{sessionId}/hints", sessionHandler.SubmitHint)
	mux.HandleFunc("POST /api/sessions/{sessionId}/end", sessionHandler.End)
	mux.HandleFunc("POST /api/sessions/{sessionId}/complete", sessionHandler.Complete)
	mux.HandleFunc("GET /api/admin/sessions", mw.RequireAdmin(sessionHandler.List))
	mux.HandleFunc("DELETE /api/admin/sessions/{sessionId}", mw.RequireAdmin(sessionHandler.Delete))
	mux.HandleFunc("GET /api/admin/usage-count", mw.RequireAdmin(sessionHandler.UsageCount))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.Logging(mw.RateLimit(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
