package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradius/bitplanner/internal/domain"
)

// RecipeStore implements planner.RecipeCatalog over the imported game data.
type RecipeStore struct {
	pool *pgxpool.Pool
}

// NewRecipeStore creates a new RecipeStore
func NewRecipeStore(pool *pgxpool.Pool) *RecipeStore {
	return &RecipeStore{pool: pool}
}

// GetProducersOf returns the recipes producing itemID in stable recipe-id
// order. Selection policy depends on this ordering being deterministic
// across calls.
func (s *RecipeStore) GetProducersOf(ctx context.Context, itemID int) ([]domain.RecipeCandidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT r.recipe_id, r.building_type_requirement
		 FROM game_recipes r
		 JOIN game_recipe_produced p ON p.recipe_id = r.recipe_id
		 WHERE p.item_id = $1
		 ORDER BY r.recipe_id`,
		itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get producers of item %d: %v", domain.ErrCatalogUnavailable, itemID, err)
	}
	defer rows.Close()

	var candidates []domain.RecipeCandidate
	for rows.Next() {
		var c domain.RecipeCandidate
		if err := rows.Scan(&c.RecipeID, &c.BuildingTypeRequirement); err != nil {
			return nil, fmt.Errorf("%w: failed to scan producer: %v", domain.ErrCatalogUnavailable, err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read producers: %v", domain.ErrCatalogUnavailable, err)
	}
	return candidates, nil
}

// GetRecipeByID retrieves a recipe with its consumed and produced stacks in
// source-file order.
func (s *RecipeStore) GetRecipeByID(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := s.pool.QueryRow(ctx,
		`SELECT recipe_id, building_type_requirement, building_tier_requirement
		 FROM game_recipes WHERE recipe_id = $1`,
		recipeID).Scan(&recipe.ID, &recipe.BuildingTypeRequirement, &recipe.BuildingTierRequirement)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrRecipeNotFound, recipeID)
		}
		return nil, fmt.Errorf("%w: failed to get recipe %d: %v", domain.ErrCatalogUnavailable, recipeID, err)
	}

	recipe.ConsumedItems, err = s.getStacks(ctx, "game_recipe_consumed", recipeID)
	if err != nil {
		return nil, err
	}
	recipe.ProducedItems, err = s.getStacks(ctx, "game_recipe_produced", recipeID)
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

func (s *RecipeStore) getStacks(ctx context.Context, table string, recipeID int) ([]domain.RecipeStack, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT item_id, amount FROM `+table+` WHERE recipe_id = $1 ORDER BY position, id`,
		recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get recipe %d stacks: %v", domain.ErrCatalogUnavailable, recipeID, err)
	}
	defer rows.Close()

	var stacks []domain.RecipeStack
	for rows.Next() {
		var stack domain.RecipeStack
		if err := rows.Scan(&stack.ItemID, &stack.Amount); err != nil {
			return nil, fmt.Errorf("%w: failed to scan recipe stack: %v", domain.ErrCatalogUnavailable, err)
		}
		stacks = append(stacks, stack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read recipe stacks: %v", domain.ErrCatalogUnavailable, err)
	}
	return stacks, nil
}

// UpsertRecipe replaces a recipe and its stacks inside one transaction.
// Used by the import pipeline.
func (s *RecipeStore) UpsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	_, err = tx.Exec(ctx,
		`INSERT INTO game_recipes (recipe_id, building_type_requirement, building_tier_requirement)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (recipe_id) DO UPDATE SET
		   building_type_requirement = EXCLUDED.building_type_requirement,
		   building_tier_requirement = EXCLUDED.building_tier_requirement`,
		recipe.ID, recipe.BuildingTypeRequirement, recipe.BuildingTierRequirement)
	if err != nil {
		return fmt.Errorf("failed to upsert recipe %d: %w", recipe.ID, err)
	}

	for _, table := range []string{"game_recipe_consumed", "game_recipe_produced"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("failed to clear recipe %d stacks: %w", recipe.ID, err)
		}
	}

	for i, stack := range recipe.ConsumedItems {
		_, err := tx.Exec(ctx,
			`INSERT INTO game_recipe_consumed (recipe_id, item_id, amount, position) VALUES ($1, $2, $3, $4)`,
			recipe.ID, stack.ItemID, stack.Amount, i)
		if err != nil {
			return fmt.Errorf("failed to insert consumed stack for recipe %d: %w", recipe.ID, err)
		}
	}
	for i, stack := range recipe.ProducedItems {
		_, err := tx.Exec(ctx,
			`INSERT INTO game_recipe_produced (recipe_id, item_id, amount, position) VALUES ($1, $2, $3, $4)`,
			recipe.ID, stack.ItemID, stack.Amount, i)
		if err != nil {
			return fmt.Errorf("failed to insert produced stack for recipe %d: %w", recipe.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recipe %d: %w", recipe.ID, err)
	}
	return nil
}
