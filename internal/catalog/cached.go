// Package catalog provides a read-through cache over the planner's catalog
// interfaces. Game data changes only on re-import, so short-TTL caching in
// front of the database absorbs the lookup fan-out of deep tree expansions
// while the planner itself stays cache-free.
package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gradius/bitplanner/internal/domain"
	"github.com/gradius/bitplanner/internal/metrics"
	"github.com/gradius/bitplanner/internal/planner"
)

const (
	cacheItems     = "items"
	cacheRecipes   = "recipes"
	cacheProducers = "producers"
)

// Cached decorates an ItemCatalog and RecipeCatalog with expirable LRU
// caches. Only successful lookups are cached; misses and failures always go
// back to the source.
type Cached struct {
	items   planner.ItemCatalog
	recipes planner.RecipeCatalog

	itemCache     *expirable.LRU[int, *domain.Item]
	recipeCache   *expirable.LRU[int, *domain.Recipe]
	producerCache *expirable.LRU[int, []domain.RecipeCandidate]
}

// New creates a caching catalog with the given capacity and TTL per cache.
func New(items planner.ItemCatalog, recipes planner.RecipeCatalog, size int, ttl time.Duration) *Cached {
	return &Cached{
		items:         items,
		recipes:       recipes,
		itemCache:     expirable.NewLRU[int, *domain.Item](size, nil, ttl),
		recipeCache:   expirable.NewLRU[int, *domain.Recipe](size, nil, ttl),
		producerCache: expirable.NewLRU[int, []domain.RecipeCandidate](size, nil, ttl),
	}
}

// GetItemByID returns the cached item or fetches it from the source catalog.
func (c *Cached) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	if item, ok := c.itemCache.Get(itemID); ok {
		metrics.CatalogCacheHits.WithLabelValues(cacheItems).Inc()
		return item, nil
	}
	metrics.CatalogCacheMisses.WithLabelValues(cacheItems).Inc()

	item, err := c.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	c.itemCache.Add(itemID, item)
	return item, nil
}

// GetProducersOf returns the cached candidate list or fetches it.
// Empty candidate lists are cached too: base materials are looked up on
// every leaf of every expansion.
func (c *Cached) GetProducersOf(ctx context.Context, itemID int) ([]domain.RecipeCandidate, error) {
	if producers, ok := c.producerCache.Get(itemID); ok {
		metrics.CatalogCacheHits.WithLabelValues(cacheProducers).Inc()
		return producers, nil
	}
	metrics.CatalogCacheMisses.WithLabelValues(cacheProducers).Inc()

	producers, err := c.recipes.GetProducersOf(ctx, itemID)
	if err != nil {
		return nil, err
	}

	c.producerCache.Add(itemID, producers)
	return producers, nil
}

// GetRecipeByID returns the cached recipe or fetches it from the source.
func (c *Cached) GetRecipeByID(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	if recipe, ok := c.recipeCache.Get(recipeID); ok {
		metrics.CatalogCacheHits.WithLabelValues(cacheRecipes).Inc()
		return recipe, nil
	}
	metrics.CatalogCacheMisses.WithLabelValues(cacheRecipes).Inc()

	recipe, err := c.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	c.recipeCache.Add(recipeID, recipe)
	return recipe, nil
}

// Purge clears all caches. The admin cache-refresh endpoint calls this
// after a game-data re-import; TTL expiry covers it otherwise.
func (c *Cached) Purge() {
	c.itemCache.Purge()
	c.recipeCache.Purge()
	c.producerCache.Purge()
}
