package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adminapp "github.com/bazaar/console/internal/application/admin"
	"github.com/bazaar/console/internal/application/identity"
	"github.com/bazaar/console/internal/application/merchant"
	"github.com/bazaar/console/internal/application/storefront"
	"github.com/bazaar/console/internal/infrastructure/api"
	"github.com/bazaar/console/internal/infrastructure/auth"
	"github.com/bazaar/console/internal/infrastructure/config"
	"github.com/bazaar/console/internal/infrastructure/logger"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/bazaar/console/internal/infrastructure/telemetry"
	"github.com/bazaar/console/internal/interfaces/http/handler"
	"github.com/bazaar/console/internal/interfaces/http/middleware"
	"github.com/bazaar/console/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting marketplace console",
		zap.String("version", version),
		zap.String("env", cfg.App.Env),
		zap.String("api_base_url", cfg.API.BaseURL))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	if err := middleware.RegisterValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	apiClient, err := api.NewClient(&api.Config{
		BaseURL:        cfg.API.BaseURL,
		TimeoutSeconds: cfg.API.TimeoutSeconds,
		UserAgent:      cfg.API.UserAgent,
	})
	if err != nil {
		log.Fatal("Failed to create marketplace API client", zap.Error(err))
	}

	sessions, err := newSessionStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer func() { _ = sessions.Close() }()

	secret := cfg.Session.Secret
	if secret == "" {
		// Development convenience only. Production refuses to start
		// without a configured secret, so this branch never runs there.
		secret = randomSecret()
		log.Warn("No session secret configured, generated an ephemeral one; sessions will not survive a restart")
	}
	tokens := auth.NewSessionTokenService(secret, cfg.Session.Issuer, cfg.Session.TTL)

	authService := identity.NewAuthService(apiClient, sessions, tokens, cfg.Session.TTL, log)
	changeRequestService := merchant.NewChangeRequestService(apiClient, log)
	productService := merchant.NewProductService(apiClient, log)
	orderService := merchant.NewOrderService(apiClient, log)
	walletService := merchant.NewWalletService(apiClient, log)
	reviewService := merchant.NewReviewService(apiClient, log)
	moderationService := adminapp.NewModerationService(apiClient, log)
	couponService := adminapp.NewCouponService(apiClient, log)
	catalogService := storefront.NewCatalogService(apiClient)

	handlers := router.Handlers{
		System:        handler.NewSystemHandler(version),
		Auth:          handler.NewAuthHandler(authService),
		Product:       handler.NewProductHandler(productService),
		ChangeRequest: handler.NewChangeRequestHandler(changeRequestService),
		Backoffice:    handler.NewBackofficeHandler(orderService, walletService, reviewService),
		Admin:         handler.NewAdminHandler(moderationService, couponService),
		Storefront:    handler.NewStorefrontHandler(catalogService),
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine, err := router.New(router.Config{
		Logger:           log,
		Tokens:           tokens,
		Sessions:         sessions,
		SessionCookie:    cfg.Session.CookieName,
		CORS:             corsConfig,
		ServiceName:      cfg.Telemetry.ServiceName,
		TelemetryEnabled: cfg.Telemetry.Enabled,
		TrustedProxies:   cfg.HTTP.TrustedProxies,
	}, handlers)
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newSessionStore builds the configured session backend. Redis keeps
// sessions across restarts and across replicas; memory is single-process.
func newSessionStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (session.Store, error) {
	if cfg.Session.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store, err := session.NewRedisStore(ctx, client)
		if err != nil {
			return nil, err
		}
		log.Info("Session store ready", zap.String("backend", "redis"), zap.String("addr", cfg.Redis.Addr()))
		return store, nil
	}

	log.Info("Session store ready", zap.String("backend", "memory"))
	return session.NewMemoryStore(), nil
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to generate session secret: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
