package planner

import (
	"context"
	"fmt"

	"github.com/gradius/bitplanner/internal/domain"
)

// fakeCatalog is an in-memory ItemCatalog + RecipeCatalog for tests,
// with error injection for catalog failures.
type fakeCatalog struct {
	items     map[int]*domain.Item
	producers map[int][]domain.RecipeCandidate
	recipes   map[int]*domain.Recipe

	// Error injection for testing
	itemErr     error
	producerErr error
	recipeErr   error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		items:     make(map[int]*domain.Item),
		producers: make(map[int][]domain.RecipeCandidate),
		recipes:   make(map[int]*domain.Recipe),
	}
}

func (f *fakeCatalog) addItem(id int, name string) {
	f.items[id] = &domain.Item{ID: id, Name: name}
}

// addRecipe registers a recipe and makes it a producer candidate of its
// primary output, preserving registration order.
func (f *fakeCatalog) addRecipe(r *domain.Recipe) {
	f.recipes[r.ID] = r
	if len(r.ProducedItems) > 0 {
		target := r.ProducedItems[0].ItemID
		f.producers[target] = append(f.producers[target], domain.RecipeCandidate{
			RecipeID:                r.ID,
			BuildingTypeRequirement: r.BuildingTypeRequirement,
		})
	}
}

func (f *fakeCatalog) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	if f.itemErr != nil {
		return nil, f.itemErr
	}
	item, ok := f.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	return item, nil
}

func (f *fakeCatalog) GetProducersOf(ctx context.Context, itemID int) ([]domain.RecipeCandidate, error) {
	if f.producerErr != nil {
		return nil, f.producerErr
	}
	return f.producers[itemID], nil
}

func (f *fakeCatalog) GetRecipeByID(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	if f.recipeErr != nil {
		return nil, f.recipeErr
	}
	recipe, ok := f.recipes[recipeID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrRecipeNotFound, recipeID)
	}
	return recipe, nil
}
