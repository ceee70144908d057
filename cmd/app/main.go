package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gradius/bitplanner/internal/catalog"
	"github.com/gradius/bitplanner/internal/config"
	"github.com/gradius/bitplanner/internal/database"
	"github.com/gradius/bitplanner/internal/database/postgres"
	"github.com/gradius/bitplanner/internal/planner"
	"github.com/gradius/bitplanner/internal/project"
	"github.com/gradius/bitplanner/internal/search"
	"github.com/gradius/bitplanner/internal/server"
)

const (
	dbMaxConns    = 10
	dbMaxIdleTime = 5 * time.Minute
	dbMaxLifetime = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	itemStore := postgres.NewItemStore(pool)
	recipeStore := postgres.NewRecipeStore(pool)
	projectStore := postgres.NewProjectStore(pool)

	cachedCatalog := catalog.New(itemStore, recipeStore, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	plannerService := planner.NewService(cachedCatalog, cachedCatalog)
	searchService := search.NewService(itemStore)
	projectService := project.NewService(projectStore, cachedCatalog)

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, pool, cachedCatalog, cachedCatalog, cachedCatalog, plannerService, searchService, projectService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
