package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradius/bitplanner/internal/domain"
)

// ItemStore implements planner.ItemCatalog and the item lookups used by the
// search service and HTTP handlers.
type ItemStore struct {
	pool *pgxpool.Pool
}

// NewItemStore creates a new ItemStore
func NewItemStore(pool *pgxpool.Pool) *ItemStore {
	return &ItemStore{pool: pool}
}

const itemColumns = `item_id, name, description, tier, rarity, tag, volume, durability, icon_asset_name`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Tier,
		&item.Rarity,
		&item.Tag,
		&item.Volume,
		&item.Durability,
		&item.IconAssetName,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemByID retrieves an item by its game item id
func (s *ItemStore) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM game_items WHERE item_id = $1`, itemID)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("%w: failed to get item %d: %v", domain.ErrCatalogUnavailable, itemID, err)
	}
	return item, nil
}

// SearchByName returns items whose name matches the query, best matches
// first: exact, then prefix, then substring, each group alphabetically.
func (s *ItemStore) SearchByName(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+itemColumns+`
		 FROM game_items
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY
		   CASE
		     WHEN lower(name) = lower($1) THEN 0
		     WHEN name ILIKE $1 || '%' THEN 1
		     ELSE 2
		   END,
		   name
		 LIMIT $2`,
		query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to search items: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// GetAllItems retrieves every item. Used by the search service's similarity
// fallback when substring matching comes up short.
func (s *ItemStore) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM game_items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get all items: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan item: %v", domain.ErrCatalogUnavailable, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read items: %v", domain.ErrCatalogUnavailable, err)
	}
	return items, nil
}

// UpsertItem inserts or updates an item record. Used by the import pipeline.
func (s *ItemStore) UpsertItem(ctx context.Context, item *domain.Item) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO game_items (item_id, name, description, tier, rarity, tag, volume, durability, icon_asset_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (item_id) DO UPDATE SET
		   name = EXCLUDED.name,
		   description = EXCLUDED.description,
		   tier = EXCLUDED.tier,
		   rarity = EXCLUDED.rarity,
		   tag = EXCLUDED.tag,
		   volume = EXCLUDED.volume,
		   durability = EXCLUDED.durability,
		   icon_asset_name = EXCLUDED.icon_asset_name`,
		item.ID, item.Name, item.Description, item.Tier, item.Rarity,
		item.Tag, item.Volume, item.Durability, item.IconAssetName)
	if err != nil {
		return fmt.Errorf("failed to upsert item %d: %w", item.ID, err)
	}
	return nil
}
