package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appaccount "github.com/localhub/backend/internal/application/account"
	appdirectory "github.com/localhub/backend/internal/application/directory"
	"github.com/localhub/backend/internal/infrastructure/auth"
	"github.com/localhub/backend/internal/infrastructure/config"
	"github.com/localhub/backend/internal/infrastructure/event"
	"github.com/localhub/backend/internal/infrastructure/logger"
	"github.com/localhub/backend/internal/infrastructure/persistence"
	"github.com/localhub/backend/internal/infrastructure/telemetry"
	"github.com/localhub/backend/internal/interfaces/http/handler"
	"github.com/localhub/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting LocalHub backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if tracerProvider.IsEnabled() && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(); err != nil {
			log.Error("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Refuse to start against a database whose identity columns do not
	// match what the deletion registry expects
	if err := persistence.ValidateSchema(db.DB); err != nil {
		log.Fatal("Schema validation failed, run migrations first", zap.Error(err))
	}
	log.Info("Database connected", zap.Int("schema_version", persistence.SchemaVersion))

	blacklist, closeRedis := newBlacklist(cfg, log)
	defer closeRedis()

	jwtService := auth.NewJWTService(cfg.JWT)
	revoker := auth.NewBlacklistSessionRevoker(blacklist, cfg.JWT.RefreshTokenExpiration)

	profiles := persistence.NewGormProfileRepository(db.DB)
	credentials := persistence.NewGormCredentialRepository(db.DB)
	listings := persistence.NewGormListingRepository(db.DB)
	bookings := persistence.NewGormBookingRepository(db.DB)
	inquiries := persistence.NewGormInquiryRepository(db.DB)
	saves := persistence.NewGormSavedListingRepository(db.DB)
	reviews := persistence.NewGormReviewRepository(db.DB)
	flags := persistence.NewGormListingFlagRepository(db.DB)
	notifs := persistence.NewGormNotificationRepository(db.DB)
	prefs := persistence.NewGormPreferenceRepository(db.DB)

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(event.NewReclaimNotificationHandler(notifs, log))

	resolver := appaccount.NewResolverService(profiles, credentials, listings, bookings, inquiries, log)
	reconciler := appaccount.NewReconciliationService(listings, bus, log)
	profileService := appaccount.NewProfileService(profiles, bus, log)
	deletionService := appaccount.NewDeletionService(
		resolver,
		profiles, credentials,
		listings, bookings, inquiries,
		saves, reviews, flags,
		notifs, prefs,
		revoker, bus, log,
	)
	authService := appaccount.NewAuthService(profiles, credentials, reconciler, jwtService, blacklist, bus, log)
	listingService := appdirectory.NewListingService(listings, bookings, inquiries, saves, reviews, flags, bus, log)

	engine, err := router.New(router.Dependencies{
		Config:         cfg,
		Logger:         log,
		JWTService:     jwtService,
		Blacklist:      blacklist,
		SystemHandler:  handler.NewSystemHandler(db, cfg.App.Name),
		AuthHandler:    handler.NewAuthHandler(authService),
		AccountHandler: handler.NewAccountHandler(profileService, deletionService, resolver),
		ListingHandler: handler.NewListingHandler(listingService),
	})
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// newBlacklist picks Redis when configured, falling back to the
// process-local blacklist for single-node development setups
func newBlacklist(cfg *config.Config, log *zap.Logger) (auth.TokenBlacklist, func()) {
	if cfg.Redis.Host == "" {
		log.Warn("Redis not configured, using in-memory token blacklist")
		return auth.NewInMemoryTokenBlacklist(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unreachable, using in-memory token blacklist", zap.Error(err))
		_ = client.Close()
		return auth.NewInMemoryTokenBlacklist(), func() {}
	}

	log.Info("Redis connected", zap.String("host", cfg.Redis.Host))
	return auth.NewRedisTokenBlacklist(client), func() {
		if err := client.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}
}
