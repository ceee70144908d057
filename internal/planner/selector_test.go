package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradius/bitplanner/internal/domain"
)

func TestSelectRecipeNoCandidates(t *testing.T) {
	catalog := newFakeCatalog()
	svc := &service{items: catalog, recipes: catalog}

	_, ok, err := svc.selectRecipe(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelectRecipeFirstCandidateWins(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.producers[42] = []domain.RecipeCandidate{
		{RecipeID: 100, BuildingTypeRequirement: 7},
		{RecipeID: 200, BuildingTypeRequirement: 8},
	}
	svc := &service{items: catalog, recipes: catalog}

	recipeID, ok, err := svc.selectRecipe(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 100, recipeID)
}

func TestSelectRecipeSkipsReforge(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.producers[42] = []domain.RecipeCandidate{
		{RecipeID: 100, BuildingTypeRequirement: domain.BuildingTypeReforge},
		{RecipeID: 200, BuildingTypeRequirement: 8},
	}
	svc := &service{items: catalog, recipes: catalog}

	recipeID, ok, err := svc.selectRecipe(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 200, recipeID)
}

func TestSelectRecipeAllReforge(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.producers[42] = []domain.RecipeCandidate{
		{RecipeID: 100, BuildingTypeRequirement: domain.BuildingTypeReforge},
		{RecipeID: 200, BuildingTypeRequirement: domain.BuildingTypeReforge},
	}
	svc := &service{items: catalog, recipes: catalog}

	// Only reforging producers exist: the item counts as a base material.
	_, ok, err := svc.selectRecipe(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelectRecipeCatalogFailure(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.producerErr = domain.ErrCatalogUnavailable
	svc := &service{items: catalog, recipes: catalog}

	_, _, err := svc.selectRecipe(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
}
