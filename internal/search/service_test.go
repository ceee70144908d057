package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradius/bitplanner/internal/domain"
)

type fakeRepo struct {
	items []domain.Item

	searchErr error
	listErr   error
}

func (f *fakeRepo) SearchByName(_ context.Context, query string, limit int) ([]domain.Item, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	query = strings.ToLower(query)
	var out []domain.Item
	for _, item := range f.items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			out = append(out, item)
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAllItems(_ context.Context) ([]domain.Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func gameItems() []domain.Item {
	return []domain.Item{
		{ID: 1, Name: "Rough Plank"},
		{ID: 2, Name: "Sturdy Plank"},
		{ID: 3, Name: "Iron Nail"},
		{ID: 4, Name: "Iron Ingot"},
		{ID: 5, Name: "Copper Ingot"},
		{ID: 6, Name: "Clay Brick"},
	}
}

func TestSearchItems_SubstringMatch(t *testing.T) {
	svc := NewService(&fakeRepo{items: gameItems()})

	results, err := svc.SearchItems(context.Background(), "plank", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Rough Plank", results[0].Name)
	assert.Equal(t, "Sturdy Plank", results[1].Name)
}

func TestSearchItems_FuzzyFallback(t *testing.T) {
	svc := NewService(&fakeRepo{items: gameItems()})

	// "Ingit" matches nothing as a substring but is one letter off "Ingot".
	results, err := svc.SearchItems(context.Background(), "iron ingit", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Iron Ingot", results[0].Name)
}

func TestSearchItems_NoDuplicatesAcrossPasses(t *testing.T) {
	svc := NewService(&fakeRepo{items: gameItems()})

	results, err := svc.SearchItems(context.Background(), "iron", 10)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, item := range results {
		assert.False(t, seen[item.ID], "item %d returned twice", item.ID)
		seen[item.ID] = true
	}
}

func TestSearchItems_EmptyQuery(t *testing.T) {
	svc := NewService(&fakeRepo{items: gameItems()})

	_, err := svc.SearchItems(context.Background(), "   ", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchItems_LimitClamped(t *testing.T) {
	repo := &fakeRepo{items: gameItems()}
	svc := NewService(repo)

	results, err := svc.SearchItems(context.Background(), "plank", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchItems_SearchError(t *testing.T) {
	repo := &fakeRepo{searchErr: domain.ErrCatalogUnavailable}
	svc := NewService(repo)

	_, err := svc.SearchItems(context.Background(), "plank", 10)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestSearchItems_FuzzyErrorKeepsRankedResults(t *testing.T) {
	repo := &fakeRepo{items: gameItems(), listErr: errors.New("connection reset")}
	svc := NewService(repo)

	results, err := svc.SearchItems(context.Background(), "plank", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity(trigrams("plank"), trigrams("Plank")))
	assert.Greater(t, similarity(trigrams("ingot"), trigrams("ingit")), minSimilarity)
	assert.Less(t, similarity(trigrams("plank"), trigrams("cargo")), minSimilarity)
	assert.Equal(t, 0.0, similarity(trigrams(""), trigrams("plank")))
}
