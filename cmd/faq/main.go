// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Command faq runs the Terra Mia FAQ service: the public FAQ pages for
// the three country sites and the back office under /faq-index.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/terramia/faq-go/internal/cache"
	"github.com/terramia/faq-go/internal/config"
	"github.com/terramia/faq-go/internal/handler"
	"github.com/terramia/faq-go/internal/i18n"
	"github.com/terramia/faq-go/internal/logging"
	"github.com/terramia/faq-go/internal/middleware"
	"github.com/terramia/faq-go/internal/render"
	"github.com/terramia/faq-go/internal/scheduler"
	"github.com/terramia/faq-go/internal/session"
	"github.com/terramia/faq-go/internal/store"
	"github.com/terramia/faq-go/web"
)

// Build-time injected values.
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "faq - Terra Mia FAQ service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAQ_SESSION_SECRET      Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAQ_DB_PATH             SQLite database path (default: ./data/faq.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAQ_SERVER_PORT         Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAQ_ENV                 Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAQ_ROOT_SEGMENT        Public FAQ path segment (default: faq)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAQ_REDIS_URL           Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAQ_ROBOTS_DISALLOW_ALL Block all crawlers, for staging (default: false)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAQ_DO_SEED             Seed demo content on first start (default: false)\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("faq %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	// Session manager, backed by the sessions table
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Cache for the front-office pages
	cacheConfig := cache.Config{
		Type:       "memory",
		RedisURL:   cfg.RedisURL,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
	}
	if cfg.UseRedisCache() {
		cacheConfig.Type = "redis"
	}
	pageCache := cache.New(cacheConfig)
	defer func() {
		if err := pageCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	slog.Info("cache initialized", "backend", cacheConfig.Type, "ttl", cacheConfig.DefaultTTL)

	// Template renderer
	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates(),
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Maintenance scheduler: cache sweeps and event log pruning
	sched := scheduler.New(db, pageCache, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Handlers
	faqsHandler := handler.NewFaqsHandler(db, renderer, sessionManager, pageCache)
	categoriesHandler := handler.NewCategoriesHandler(db, renderer, sessionManager, pageCache)
	frontendHandler := handler.NewFrontendHandler(db, renderer, pageCache, handler.FrontendConfig{
		RootSegment: cfg.RootSegment,
		RobotsDeny:  cfg.RobotsDisallowAll,
	})

	// Router
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.Locale)
	r.Use(sessionManager.LoadAndSave)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	// Back office
	r.Route(handler.RouteFaqIndex, func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.MutationRateLimit(2, 5))

		r.Get("/", faqsHandler.List)
		r.Get(handler.RouteSuffixCreate, faqsHandler.CreateForm)
		r.Post(handler.RouteSuffixCreate, faqsHandler.Create)
		r.Get(handler.RouteSuffixEdit, faqsHandler.EditForm)
		r.Post(handler.RouteSuffixEdit, faqsHandler.Edit)
		r.Get(handler.RouteSuffixEditLocale, faqsHandler.EditForm)
		r.Post(handler.RouteSuffixEditLocale, faqsHandler.Edit)

		r.Route(handler.RouteCategory, func(r chi.Router) {
			r.Get("/", categoriesHandler.List)
			r.Get(handler.RouteSuffixCreate, categoriesHandler.CreateForm)
			r.Post(handler.RouteSuffixCreate, categoriesHandler.Create)
			r.Get(handler.RouteSuffixEdit, categoriesHandler.EditForm)
			r.Post(handler.RouteSuffixEdit, categoriesHandler.Edit)
			r.Get(handler.RouteSuffixEditLocale, categoriesHandler.EditForm)
			r.Post(handler.RouteSuffixEditLocale, categoriesHandler.Edit)
		})
	})

	// Front office
	r.Get(handler.RouteSitemap, frontendHandler.Sitemap)
	r.Get(handler.RouteRobots, frontendHandler.Robots)
	r.Route("/"+cfg.RootSegment, func(r chi.Router) {
		r.Get("/", frontendHandler.Landing)
		r.Get(handler.RouteParamCategory, frontendHandler.Category)
		r.Get(handler.RouteParamQuestion, frontendHandler.Question)
	})

	// Static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
