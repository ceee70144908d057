package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradius/bitplanner/internal/domain"
)

func TestResolveByItemBaseMaterial(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addItem(42, "Rough Stone")
	svc := NewService(catalog, catalog)

	tree, err := svc.ResolveByItem(context.Background(), 42, 5, 0)
	require.NoError(t, err)

	assert.Empty(t, tree.Steps)
	require.Len(t, tree.BaseMaterials, 1)
	assert.Equal(t, 42, tree.BaseMaterials[0].ItemID)
	assert.Equal(t, "Rough Stone", tree.BaseMaterials[0].ItemName)
	assert.Equal(t, 5, tree.BaseMaterials[0].Amount)
	assert.True(t, tree.BaseMaterials[0].IsBaseMaterial)
	assert.False(t, tree.Truncated)
}

func TestResolveByItemUnknownRoot(t *testing.T) {
	catalog := newFakeCatalog()
	svc := NewService(catalog, catalog)

	_, err := svc.ResolveByItem(context.Background(), 404, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))
}

func TestResolveByItemInvalidAmount(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addItem(42, "Rough Stone")
	svc := NewService(catalog, catalog)

	_, err := svc.ResolveByItem(context.Background(), 42, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
}

func TestResolveByItemCeilingDivision(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addItem(1, "Brick")
	catalog.addItem(2, "Clay")
	// 3 bricks per run from 2 clay.
	catalog.addRecipe(&domain.Recipe{
		ID:            10,
		ConsumedItems: []domain.RecipeStack{{ItemID: 2, Amount: 2}},
		ProducedItems: []domain.RecipeStack{{ItemID: 1, Amount: 3}},
	})
	svc := NewService(catalog, catalog)

	// ceil(7/3) = 3 runs, so 2 clay * 3 runs = 6.
	tree, err := svc.ResolveByItem(context.Background(), 1, 7, 0)
	require.NoError(t, err)

	require.Len(t, tree.Steps, 1)
	assert.Equal(t, 0, tree.Steps[0].Depth)
	require.Len(t, tree.Steps[0].Items, 1)
	assert.Equal(t, 6, tree.Steps[0].Items[0].Amount)

	require.Len(t, tree.BaseMaterials, 1)
	assert.Equal(t, 6, tree.BaseMaterials[0].Amount)
}

func TestResolveByItemAggregatesBranches(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addItem(1, "Tool")
	catalog.addItem(2, "Handle")
	catalog.addItem(3, "Head")
	catalog.addItem(4, "Wood")
	catalog.addRecipe(&domain.Recipe{
		ID: 10,
		ConsumedItems: []domain.RecipeStack{
			{ItemID: 2, Amount: 1},
			{ItemID: 3, Amount: 1},
		},
		ProducedItems: []domain.RecipeStack{{ItemID: 1, Amount: 1}},
	})
	// Both the handle and the head need 2 wood each.
	catalog.addRecipe(&domain.Recipe{
		ID:            20,
		ConsumedItems: []domain.RecipeStack{{ItemID: 4, Amount: 2}},
		ProducedItems: []domain.RecipeStack{{ItemID: 2, Amount: 1}},
	})
	catalog.addRecipe(&domain.Recipe{
		ID:            30,
		ConsumedItems: []domain.RecipeStack{{ItemID: 4, Amount: 2}},
		ProducedItems: []domain.RecipeStack{{ItemID: 3, Amount: 1}},
	})
	svc := NewService(catalog, catalog)

	tree, err := svc.ResolveByItem(context.Background(), 1, 1, 0)
	require.NoError(t, err)

	require.Len(t, tree.BaseMaterials, 1)
	assert.Equal(t, 4, tree.BaseMaterials[0].ItemID)
	assert.Equal(t, 4, tree.BaseMaterials[0].Amount)
}

func TestResolveByItemDepthCutoff(t *testing.T) {
	catalog := newFakeCatalog()
	for id := 1; id <= 4; id++ {
		catalog.addItem(id, "Link")
	}
	// Chain of depth 3: item 1 <- item 2 <- item 3 <- item 4.
	for id := 1; id <= 3; id++ {
		catalog.addRecipe(&domain.Recipe{
			ID:            id * 10,
			ConsumedItems: []domain.RecipeStack{{ItemID: id + 1, Amount: 1}},
			ProducedItems: []domain.RecipeStack{{ItemID: id, Amount: 1}},
		})
	}
	svc := NewService(catalog, catalog)

	tree, err := svc.ResolveByItem(context.Background(), 1, 1, 1)
	require.NoError(t, err)

	// Truncated at depth 1: two steps survive, nothing below resolved.
	assert.Len(t, tree.Steps, 2)
	assert.Empty(t, tree.BaseMaterials)
	assert.True(t, tree.Truncated)
}

func TestResolveByItemGatheringRecipe(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addItem(1, "Berries")
	catalog.addRecipe(&domain.Recipe{
		ID:            10,
		ConsumedItems: nil,
		ProducedItems: []domain.RecipeStack{{ItemID: 1, Amount: 3}},
	})
	svc := NewService(catalog, catalog)

	// A gathering recipe's output is a base material at the requested
	// amount, not at the recipe's own per-run amount.
	tree, err := svc.ResolveByItem(context.Background(), 1, 7, 0)
	require.NoError(t, err)

	assert.Empty(t, tree.Steps)
	require.Len(t, tree.BaseMaterials, 1)
	assert.Equal(t, 7, tree.BaseMaterials[0].Amount)
}

func TestResolveByItemIdempotent(t *testing.T) {
	catalog := scenarioCatalog()
	svc := NewService(catalog, catalog)

	first, err := svc.ResolveByItem(context.Background(), 42, 5, 0)
	require.NoError(t, err)
	second, err := svc.ResolveByItem(context.Background(), 42, 5, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// scenarioCatalog builds the end-to-end fixture: item 42 (X) from 2xA + 1xB,
// A is gathered raw, B is refined from 3xA.
func scenarioCatalog() *fakeCatalog {
	catalog := newFakeCatalog()
	catalog.addItem(42, "Sturdy Crate") // X
	catalog.addItem(1, "Plank")         // A
	catalog.addItem(2, "Nail")          // B
	catalog.addRecipe(&domain.Recipe{
		ID: 100,
		ConsumedItems: []domain.RecipeStack{
			{ItemID: 1, Amount: 2},
			{ItemID: 2, Amount: 1},
		},
		ProducedItems: []domain.RecipeStack{{ItemID: 42, Amount: 1}},
	})
	catalog.addRecipe(&domain.Recipe{
		ID:            200,
		ConsumedItems: []domain.RecipeStack{{ItemID: 1, Amount: 3}},
		ProducedItems: []domain.RecipeStack{{ItemID: 2, Amount: 1}},
	})
	return catalog
}

func TestResolveByItemEndToEnd(t *testing.T) {
	catalog := scenarioCatalog()
	svc := NewService(catalog, catalog)

	tree, err := svc.ResolveByItem(context.Background(), 42, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 100, tree.RecipeID)
	assert.Equal(t, "Sturdy Crate", tree.ItemName)

	// Depth 0: 2 runs of the crate recipe need 4 planks and 2 nails.
	require.Len(t, tree.Steps, 2)
	assert.Equal(t, 0, tree.Steps[0].Depth)
	require.Len(t, tree.Steps[0].Items, 2)
	assert.Equal(t, domain.StepItem{ItemID: 1, ItemName: "Plank", Amount: 4}, tree.Steps[0].Items[0])
	assert.Equal(t, domain.StepItem{ItemID: 2, ItemName: "Nail", Amount: 2}, tree.Steps[0].Items[1])

	// Depth 1: 2 nails need 6 planks.
	assert.Equal(t, 1, tree.Steps[1].Depth)
	require.Len(t, tree.Steps[1].Items, 1)
	assert.Equal(t, domain.StepItem{ItemID: 1, ItemName: "Plank", Amount: 6}, tree.Steps[1].Items[0])

	// Aggregated: 4 planks at depth 0 plus 6 via the nail branch.
	require.Len(t, tree.BaseMaterials, 1)
	assert.Equal(t, domain.BaseMaterial{ItemID: 1, ItemName: "Plank", Amount: 10, IsBaseMaterial: true}, tree.BaseMaterials[0])
	assert.False(t, tree.Truncated)
}

func TestResolveByRecipe(t *testing.T) {
	catalog := scenarioCatalog()
	svc := NewService(catalog, catalog)

	tree, err := svc.ResolveByRecipe(context.Background(), 200, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 200, tree.RecipeID)
	assert.Equal(t, 2, tree.ItemID)
	assert.Equal(t, "Nail", tree.ItemName)
	require.Len(t, tree.Steps, 1)
	assert.Equal(t, 6, tree.Steps[0].Items[0].Amount)
	require.Len(t, tree.BaseMaterials, 1)
	assert.Equal(t, 6, tree.BaseMaterials[0].Amount)
}

func TestResolveByRecipeUnknown(t *testing.T) {
	catalog := newFakeCatalog()
	svc := NewService(catalog, catalog)

	_, err := svc.ResolveByRecipe(context.Background(), 404, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecipeNotFound))
}

func TestResolveByRecipeNoOutputs(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.recipes[300] = &domain.Recipe{
		ID:            300,
		ConsumedItems: []domain.RecipeStack{{ItemID: 1, Amount: 1}},
	}
	svc := NewService(catalog, catalog)

	_, err := svc.ResolveByRecipe(context.Background(), 300, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecipeNotFound))
}

func TestResolveByItemCatalogUnavailable(t *testing.T) {
	catalog := scenarioCatalog()
	catalog.recipeErr = domain.ErrCatalogUnavailable
	svc := NewService(catalog, catalog)

	_, err := svc.ResolveByItem(context.Background(), 42, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
	assert.False(t, errors.Is(err, domain.ErrItemNotFound))
}

func TestResolveByItemUnknownConsumedItemName(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addItem(1, "Brick")
	// Consumed item 99 has no item record at all.
	catalog.addRecipe(&domain.Recipe{
		ID:            10,
		ConsumedItems: []domain.RecipeStack{{ItemID: 99, Amount: 1}},
		ProducedItems: []domain.RecipeStack{{ItemID: 1, Amount: 1}},
	})
	svc := NewService(catalog, catalog)

	tree, err := svc.ResolveByItem(context.Background(), 1, 1, 0)
	require.NoError(t, err)

	require.Len(t, tree.Steps, 1)
	assert.Equal(t, "Unknown Item 99", tree.Steps[0].Items[0].ItemName)
}
