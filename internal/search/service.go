package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gradius/bitplanner/internal/domain"
	"github.com/gradius/bitplanner/internal/logger"
)

const (
	// DefaultLimit is the number of results returned when the caller does
	// not specify one.
	DefaultLimit = 20
	// MaxLimit caps the result count a caller may request.
	MaxLimit = 100

	// minSimilarity is the trigram similarity cutoff for the fuzzy pass.
	minSimilarity = 0.25
)

// Repository defines the interface for data access required by the search service
type Repository interface {
	SearchByName(ctx context.Context, query string, limit int) ([]domain.Item, error)
	GetAllItems(ctx context.Context) ([]domain.Item, error)
}

// Service defines the interface for item search operations
type Service interface {
	SearchItems(ctx context.Context, query string, limit int) ([]domain.Item, error)
}

type service struct {
	repo Repository
}

// NewService creates a new search service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SearchItems runs a two-pass name search. The first pass asks the store
// for ranked substring matches. If that pass comes back short the query is
// likely misspelled, so a trigram similarity pass over the full item list
// fills the remaining slots.
func (s *service) SearchItems(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	results, err := s.repo.SearchByName(ctx, query, limit)
	if err != nil {
		log.Error("Item name search failed", "error", err, "query", query)
		return nil, err
	}
	if len(results) >= limit {
		return results, nil
	}

	fuzzy, err := s.fuzzySearch(ctx, query, limit-len(results), results)
	if err != nil {
		// The ranked results are still usable without the fuzzy pass.
		log.Warn("Fuzzy search pass failed", "error", err, "query", query)
		return results, nil
	}

	return append(results, fuzzy...), nil
}

type scoredItem struct {
	item  domain.Item
	score float64
}

// fuzzySearch scores every item name by trigram similarity against the
// query and returns the best matches above the cutoff, excluding items the
// ranked pass already found.
func (s *service) fuzzySearch(ctx context.Context, query string, limit int, exclude []domain.Item) ([]domain.Item, error) {
	all, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(exclude))
	for _, item := range exclude {
		seen[item.ID] = true
	}

	queryset := trigrams(query)
	scored := make([]scoredItem, 0, limit)
	for _, item := range all {
		if seen[item.ID] {
			continue
		}
		score := similarity(queryset, trigrams(item.Name))
		if score >= minSimilarity {
			scored = append(scored, scoredItem{item: item, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]domain.Item, len(scored))
	for i, sc := range scored {
		out[i] = sc.item
	}
	return out, nil
}

// trigrams returns the set of letter trigrams of a lowercased, padded
// string, matching the conventions of postgres pg_trgm.
func trigrams(s string) map[string]bool {
	s = "  " + strings.ToLower(strings.TrimSpace(s)) + " "
	runes := []rune(s)
	set := make(map[string]bool)
	for i := 0; i+3 <= len(runes); i++ {
		set[string(runes[i:i+3])] = true
	}
	return set
}

// similarity is the Jaccard similarity of two trigram sets.
func similarity(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for t := range a {
		if b[t] {
			shared++
		}
	}
	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}
