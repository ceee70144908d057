package planner

import (
	"context"
	"fmt"
)

// selectRecipe picks the recipe used to produce itemID, or ok=false when the
// item is a base material.
//
// Candidates are considered in catalog order and the first non-reforging one
// wins. Reforging recipes convert or reclaim an item rather than produce it;
// without the exclusion they would shadow genuine production recipes purely
// by list position. An item whose only producers are reforging recipes is
// treated as a base material.
func (s *service) selectRecipe(ctx context.Context, itemID int) (int, bool, error) {
	candidates, err := s.recipes.GetProducersOf(ctx, itemID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get producers of item %d: %w", itemID, err)
	}

	for _, c := range candidates {
		if !c.IsReforge() {
			return c.RecipeID, true, nil
		}
	}

	return 0, false, nil
}
