package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gradius/bitplanner/internal/config"
	"github.com/gradius/bitplanner/internal/database"
	"github.com/gradius/bitplanner/internal/database/postgres"
	"github.com/gradius/bitplanner/internal/gamedata"
)

const (
	dbMaxConns    = 4
	dbMaxIdleTime = time.Minute
	dbMaxLifetime = 10 * time.Minute
)

// The importer reads the game's JSON description files and loads them into
// the database. Run it once at setup and again whenever the game data
// changes; upserts make it safe to repeat.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dir := cfg.GameDataDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	slog.Info("Loading game data", "dir", dir)
	data, err := gamedata.Load(dir)
	if err != nil {
		slog.Error("Failed to load game data", "error", err)
		os.Exit(1)
	}
	slog.Info("Game data loaded",
		"items", len(data.Items),
		"cargos", len(data.Cargos),
		"recipes", len(data.Recipes),
		"buildingTypes", len(data.BuildingTypes))

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

	ctx := context.Background()
	itemStore := postgres.NewItemStore(pool)
	recipeStore := postgres.NewRecipeStore(pool)
	buildingStore := postgres.NewBuildingStore(pool)

	for i := range data.Items {
		if err := itemStore.UpsertItem(ctx, &data.Items[i]); err != nil {
			slog.Error("Failed to upsert item", "error", err, "itemID", data.Items[i].ID)
			os.Exit(1)
		}
	}
	slog.Info("Items imported", "count", len(data.Items))

	for i := range data.Cargos {
		if err := buildingStore.UpsertCargo(ctx, &data.Cargos[i]); err != nil {
			slog.Error("Failed to upsert cargo", "error", err, "cargoID", data.Cargos[i].ID)
			os.Exit(1)
		}
	}
	slog.Info("Cargos imported", "count", len(data.Cargos))

	for i := range data.BuildingTypes {
		if err := buildingStore.UpsertBuildingType(ctx, &data.BuildingTypes[i]); err != nil {
			slog.Error("Failed to upsert building type", "error", err, "buildingID", data.BuildingTypes[i].ID)
			os.Exit(1)
		}
	}
	slog.Info("Building types imported", "count", len(data.BuildingTypes))

	for i := range data.Recipes {
		if err := recipeStore.UpsertRecipe(ctx, &data.Recipes[i]); err != nil {
			slog.Error("Failed to upsert recipe", "error", err, "recipeID", data.Recipes[i].ID)
			os.Exit(1)
		}
	}
	slog.Info("Recipes imported", "count", len(data.Recipes))

	slog.Info("Import complete")
}
