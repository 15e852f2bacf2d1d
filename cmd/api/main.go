// Package main is the entrypoint for the Authgate API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/authgate/authgate/internal/auth"
	"github.com/authgate/authgate/internal/cognito"
	"github.com/authgate/authgate/internal/config"
	"github.com/authgate/authgate/internal/handler"
	"github.com/authgate/authgate/internal/metrics"
	"github.com/authgate/authgate/internal/middleware"
	"github.com/authgate/authgate/internal/server"
	"github.com/authgate/authgate/internal/validation"
)

func main() {
	ctx := context.Background()

	// Load configuration (.env first for local development, then environment)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize metrics
	recorder := metrics.NewNoop()

	// Initialize the provider adapter
	provider, err := cognito.New(ctx, cognito.Config{
		Region:          cfg.AWSRegion,
		ClientID:        cfg.CognitoClientID,
		ClientSecret:    cfg.CognitoClientSecret,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}, recorder)
	if err != nil {
		logger.Error("failed to initialize provider client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("provider client initialized", "region", cfg.AWSRegion)

	// Initialize the token verifier against the pool's published keys
	keySet := auth.NewKeySet(cfg.JWKSURL(), cfg.JWKSCacheTTL, nil)
	verifier := auth.NewVerifier(keySet, cfg.Issuer(), cfg.CognitoClientID, provider, recorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(keySet)
	authHandler := handler.NewAuthHandler(provider, logger)

	// Setup router
	r := setupRouter(h, healthHandler, authHandler, verifier, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"issuer", cfg.Issuer(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
// Every route composes, in fixed order: body validation, then token
// authentication where required, then the provider call.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	verifier middleware.TokenVerifier,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.MaxBody(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints (no validation)
	r.Get("/", h.Root)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Signup flow
	r.With(middleware.ValidateBody(validation.Signup, logger)).Post("/signup", authHandler.Signup)
	r.With(middleware.ValidateBody(validation.ConfirmSignup, logger)).Post("/signup/verify", authHandler.ConfirmSignup)
	r.With(middleware.ValidateBody(validation.ResendCode, logger)).Post("/signup/resend-code", authHandler.ResendCode)

	// Session flow
	r.With(middleware.ValidateBody(validation.Login, logger)).Post("/login", authHandler.Login)
	r.With(middleware.ValidateBody(validation.Logout, logger)).Post("/logout", authHandler.Logout)
	r.With(middleware.ValidateBody(validation.RefreshToken, logger)).Post("/refresh-token", authHandler.RefreshToken)

	// Password flows
	r.With(middleware.ValidateBody(validation.ChangePassword, logger)).Post("/change-password", authHandler.ChangePassword)
	r.With(middleware.ValidateBody(validation.ForgotPassword, logger)).Post("/forgot-password", authHandler.ForgotPassword)
	r.With(middleware.ValidateBody(validation.ConfirmForgotPassword, logger)).Post("/forgot-password/confirm", authHandler.ConfirmForgotPassword)

	// Token-authenticated routes
	r.With(
		middleware.ValidateBody(validation.VerifyToken, logger),
		middleware.RequireAuth(verifier, logger),
	).Get("/dashboard", h.Dashboard)

	r.With(
		middleware.ValidateBody(validation.DeleteAccount, logger),
		middleware.RequireAuth(verifier, logger),
	).Delete("/delete-account", authHandler.DeleteAccount)

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
