package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/venuehub-backend/internal/modules/analytics"
	"github.com/georgemunganga/venuehub-backend/internal/modules/auth"
	"github.com/georgemunganga/venuehub-backend/internal/modules/booking"
	"github.com/georgemunganga/venuehub-backend/internal/modules/donation"
	"github.com/georgemunganga/venuehub-backend/internal/modules/notification"
	"github.com/georgemunganga/venuehub-backend/internal/modules/partner"
	"github.com/georgemunganga/venuehub-backend/internal/modules/user"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venuetype"
	"github.com/georgemunganga/venuehub-backend/internal/platform/cache"
	"github.com/georgemunganga/venuehub-backend/internal/platform/config"
	"github.com/georgemunganga/venuehub-backend/internal/platform/database"
	"github.com/georgemunganga/venuehub-backend/internal/platform/httpx"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/georgemunganga/venuehub-backend/internal/platform/logger"
	"github.com/georgemunganga/venuehub-backend/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database.URL, database.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		zl.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()
	zl.Info("connected to database")

	if cfg.Database.AutoMigrate {
		migrator, err := database.NewMigrator(db, zl)
		if err != nil {
			zl.Fatal("prepare migrations", zap.Error(err))
		}
		if err := migrator.Up(); err != nil {
			zl.Fatal("apply migrations", zap.Error(err))
		}
	}

	types := venuetype.Default()
	tokens := identity.NewTokens(cfg.JWT.Secret, cfg.JWT.TTL)
	m := metrics.New()

	var summaryCache analytics.Cache
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			zl.Warn("redis unavailable, analytics will not be cached", zap.Error(err))
		} else {
			defer rdb.Close()
			summaryCache = cache.NewJSON(rdb, "analytics:")
		}
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.Middleware(zl))
	router.Use(middleware.Recoverer)
	router.Use(m.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(tokens.Authenticate)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			httpx.Fail(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		httpx.OK(w, http.StatusOK, map[string]string{"status": "ok"}, "")
	})
	router.Handle("/metrics", m.Handler())

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, tokens)
	auth.NewHandler(authService).RegisterRoutes(router)

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		created, err := userService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			zl.Fatal("bootstrap admin", zap.Error(err))
		}
		if created {
			zl.Info("created admin account", zap.String("email", cfg.Admin.Email))
		}
	}

	notificationService := notification.NewService(notification.NewPostgresRepository(db))
	notification.NewHandler(notificationService).RegisterRoutes(router)

	// ── Listings ────────────────────────────────────────────
	venuetype.NewHandler(types).RegisterRoutes(router)

	venueRepo := venue.NewPostgresRepository(db)
	venueService := venue.NewService(venueRepo, types, notificationService)
	venue.NewHandler(venueService).RegisterRoutes(router)

	partnerService := partner.NewService(partner.NewPostgresRepository(db), types, notificationService)
	partner.NewHandler(partnerService).RegisterRoutes(router)

	// ── Bookings & Donations ────────────────────────────────
	bookingService := booking.NewService(booking.NewPostgresRepository(db), venueRepo, notificationService)
	booking.NewHandler(bookingService).RegisterRoutes(router)

	donationService := donation.NewService(donation.NewPostgresRepository(db), venueRepo, notificationService)
	donation.NewHandler(donationService).RegisterRoutes(router)

	// ── Analytics ───────────────────────────────────────────
	analyticsService := analytics.NewService(analytics.NewPostgresRepository(db), summaryCache, m, cfg.Analytics.CacheTTL)
	analytics.NewHandler(analyticsService).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		zl.Info("API server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
