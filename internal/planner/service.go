package planner

import (
	"context"
	"fmt"

	"github.com/gradius/bitplanner/internal/domain"
	"github.com/gradius/bitplanner/internal/logger"
)

// Service defines the recipe tree resolution operations
type Service interface {
	// ResolveByItem expands the production graph for amount units of itemID.
	// maxDepth <= 0 selects domain.DefaultMaxDepth.
	ResolveByItem(ctx context.Context, itemID, amount, maxDepth int) (*domain.RecipeTree, error)
	// ResolveByRecipe expands a specific recipe for amount units of its
	// primary output.
	ResolveByRecipe(ctx context.Context, recipeID, amount, maxDepth int) (*domain.RecipeTree, error)
}

type service struct {
	items   ItemCatalog
	recipes RecipeCatalog
}

// NewService creates a new planner service over the given catalogs.
// Each resolution is an independent, pure computation; the service holds no
// mutable state and is safe for concurrent use.
func NewService(items ItemCatalog, recipes RecipeCatalog) Service {
	return &service{
		items:   items,
		recipes: recipes,
	}
}

func normalizeMaxDepth(maxDepth int) int {
	if maxDepth <= 0 {
		return domain.DefaultMaxDepth
	}
	return maxDepth
}

// ResolveByItem resolves the full production plan for an item.
func (s *service) ResolveByItem(ctx context.Context, itemID, amount, maxDepth int) (*domain.RecipeTree, error) {
	log := logger.FromContext(ctx)
	log.Info("ResolveByItem called", "itemID", itemID, "amount", amount, "maxDepth", maxDepth)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidAmount, amount)
	}
	maxDepth = normalizeMaxDepth(maxDepth)

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		log.Warn("Failed to resolve root item", "error", err, "itemID", itemID)
		return nil, err
	}

	recipeID, ok, err := s.selectRecipe(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// No usable producer: the root itself is a base material.
		return &domain.RecipeTree{
			ItemID:   item.ID,
			ItemName: item.Name,
			Steps:    []domain.Step{},
			BaseMaterials: []domain.BaseMaterial{{
				ItemID:         item.ID,
				ItemName:       item.Name,
				Amount:         amount,
				IsBaseMaterial: true,
			}},
		}, nil
	}

	result, err := s.expandByRecipe(ctx, recipeID, amount, 0, maxDepth)
	if err != nil {
		return nil, err
	}

	tree := newTree(recipeID, item.ID, item.Name, result)
	log.Info("Recipe tree resolved",
		"itemID", itemID,
		"recipeID", recipeID,
		"steps", len(tree.Steps),
		"baseMaterials", len(tree.BaseMaterials),
		"truncated", tree.Truncated)
	return tree, nil
}

// ResolveByRecipe resolves the full production plan for a specific recipe.
func (s *service) ResolveByRecipe(ctx context.Context, recipeID, amount, maxDepth int) (*domain.RecipeTree, error) {
	log := logger.FromContext(ctx)
	log.Info("ResolveByRecipe called", "recipeID", recipeID, "amount", amount, "maxDepth", maxDepth)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidAmount, amount)
	}
	maxDepth = normalizeMaxDepth(maxDepth)

	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		log.Warn("Failed to resolve root recipe", "error", err, "recipeID", recipeID)
		return nil, err
	}
	if len(recipe.ProducedItems) == 0 {
		log.Warn("Root recipe produces no items", "recipeID", recipeID)
		return nil, fmt.Errorf("%w: recipe %d produces no items", domain.ErrRecipeNotFound, recipeID)
	}

	primary := recipe.ProducedItems[0]
	itemName, err := s.itemName(ctx, primary.ItemID)
	if err != nil {
		return nil, err
	}

	result, err := s.expandByRecipe(ctx, recipeID, amount, 0, maxDepth)
	if err != nil {
		return nil, err
	}

	tree := newTree(recipeID, primary.ItemID, itemName, result)
	log.Info("Recipe tree resolved",
		"recipeID", recipeID,
		"itemID", primary.ItemID,
		"steps", len(tree.Steps),
		"baseMaterials", len(tree.BaseMaterials),
		"truncated", tree.Truncated)
	return tree, nil
}

func newTree(recipeID, itemID int, itemName string, result expansion) *domain.RecipeTree {
	steps := result.steps
	if steps == nil {
		steps = []domain.Step{}
	}
	materials := result.materials
	if materials == nil {
		materials = []domain.BaseMaterial{}
	}
	return &domain.RecipeTree{
		RecipeID:      recipeID,
		ItemID:        itemID,
		ItemName:      itemName,
		Steps:         steps,
		BaseMaterials: materials,
		Truncated:     result.truncated,
	}
}
