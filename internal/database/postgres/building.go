package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradius/bitplanner/internal/domain"
)

// BuildingStore serves building-type and cargo description lookups.
type BuildingStore struct {
	pool *pgxpool.Pool
}

// NewBuildingStore creates a new BuildingStore
func NewBuildingStore(pool *pgxpool.Pool) *BuildingStore {
	return &BuildingStore{pool: pool}
}

// GetBuildingTypeByID retrieves a building type by id
func (s *BuildingStore) GetBuildingTypeByID(ctx context.Context, buildingID int) (*domain.BuildingType, error) {
	var bt domain.BuildingType
	err := s.pool.QueryRow(ctx,
		`SELECT building_id, name, category FROM game_building_types WHERE building_id = $1`,
		buildingID).Scan(&bt.ID, &bt.Name, &bt.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: building type %d", domain.ErrItemNotFound, buildingID)
		}
		return nil, fmt.Errorf("%w: failed to get building type %d: %v", domain.ErrCatalogUnavailable, buildingID, err)
	}
	return &bt, nil
}

// GetCargoByID retrieves a cargo description by id
func (s *BuildingStore) GetCargoByID(ctx context.Context, cargoID int) (*domain.Cargo, error) {
	var cargo domain.Cargo
	err := s.pool.QueryRow(ctx,
		`SELECT cargo_id, name, description, tier, rarity, tag, volume FROM game_cargos WHERE cargo_id = $1`,
		cargoID).Scan(&cargo.ID, &cargo.Name, &cargo.Description, &cargo.Tier, &cargo.Rarity, &cargo.Tag, &cargo.Volume)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cargo %d", domain.ErrItemNotFound, cargoID)
		}
		return nil, fmt.Errorf("%w: failed to get cargo %d: %v", domain.ErrCatalogUnavailable, cargoID, err)
	}
	return &cargo, nil
}

// UpsertBuildingType inserts or updates a building type. Used by the import pipeline.
func (s *BuildingStore) UpsertBuildingType(ctx context.Context, bt *domain.BuildingType) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO game_building_types (building_id, name, category)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (building_id) DO UPDATE SET
		   name = EXCLUDED.name,
		   category = EXCLUDED.category`,
		bt.ID, bt.Name, bt.Category)
	if err != nil {
		return fmt.Errorf("failed to upsert building type %d: %w", bt.ID, err)
	}
	return nil
}

// UpsertCargo inserts or updates a cargo description. Used by the import pipeline.
func (s *BuildingStore) UpsertCargo(ctx context.Context, cargo *domain.Cargo) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO game_cargos (cargo_id, name, description, tier, rarity, tag, volume)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (cargo_id) DO UPDATE SET
		   name = EXCLUDED.name,
		   description = EXCLUDED.description,
		   tier = EXCLUDED.tier,
		   rarity = EXCLUDED.rarity,
		   tag = EXCLUDED.tag,
		   volume = EXCLUDED.volume`,
		cargo.ID, cargo.Name, cargo.Description, cargo.Tier, cargo.Rarity, cargo.Tag, cargo.Volume)
	if err != nil {
		return fmt.Errorf("failed to upsert cargo %d: %w", cargo.ID, err)
	}
	return nil
}
