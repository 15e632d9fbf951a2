// Package main implements the entry point for the blog API server, which
// handles user signup/signin with JWT session issuance and blog post
// create/update/list/get.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// application bundles the dependencies the router and server need.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	userStore  store.UserStore
	blogStore  store.BlogStore
	jwtService auth.JWTService
	cleanup    func()
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	err = app.startHTTPServer(context.Background(), router)
	app.cleanup()
	if err != nil {
		app.logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and wires up all application
// components: logger, database connection, migrations, stores, and the
// token service.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, l)
	if err != nil {
		return nil, err
	}

	if err := postgres.Migrate(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			l.Error("failed to close database", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	l.Info("Database migrations applied")

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			l.Error("failed to close database", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     l,
		userStore:  postgres.NewUserStore(db, l),
		blogStore:  postgres.NewBlogStore(db, l),
		jwtService: jwtService,
		cleanup: func() {
			if err := db.Close(); err != nil {
				l.Error("failed to close database", "error", err)
			}
		},
	}, nil
}

// startHTTPServer starts the HTTP server with graceful shutdown on
// SIGINT/SIGTERM.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("Server failed", "error", err)
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
