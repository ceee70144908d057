package planner

import (
	"context"

	"github.com/gradius/bitplanner/internal/domain"
)

// ItemCatalog defines the read-only item lookups required by the planner.
// Implementations return domain.ErrItemNotFound for missing items and
// domain.ErrCatalogUnavailable (wrapped) for lookup failures.
type ItemCatalog interface {
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
}

// RecipeCatalog defines the read-only recipe lookups required by the planner.
// GetProducersOf returns candidates in catalog order; selection policy
// depends on that ordering being stable.
type RecipeCatalog interface {
	GetProducersOf(ctx context.Context, itemID int) ([]domain.RecipeCandidate, error)
	GetRecipeByID(ctx context.Context, recipeID int) (*domain.Recipe, error)
}
