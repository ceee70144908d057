package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/gradius/bitplanner/internal/domain"
)

// expansion accumulates the results of one recursive branch.
type expansion struct {
	steps     []domain.Step
	materials []domain.BaseMaterial
	truncated bool
}

// expandByItem resolves how to obtain amount units of itemID. When no usable
// recipe exists the item is a leaf and contributes a single base material at
// the requested amount; otherwise the selected recipe is expanded.
func (s *service) expandByItem(ctx context.Context, itemID, amount, depth, maxDepth int) (expansion, error) {
	recipeID, ok, err := s.selectRecipe(ctx, itemID)
	if err != nil {
		return expansion{}, err
	}
	if !ok {
		name, err := s.itemName(ctx, itemID)
		if err != nil {
			return expansion{}, err
		}
		return expansion{
			materials: []domain.BaseMaterial{{
				ItemID:         itemID,
				ItemName:       name,
				Amount:         amount,
				IsBaseMaterial: true,
			}},
		}, nil
	}

	return s.expandByRecipe(ctx, recipeID, amount, depth, maxDepth)
}

// expandByRecipe is the recursive core of the tree expansion.
//
// Exceeding maxDepth truncates the branch silently: no error, no partial
// materials from below the cutoff. Recipe runs are scaled with ceiling
// division against the primary (first) produced item, so output meets or
// exceeds the requested amount; the overshoot compounds multiplicatively
// down the tree and is intentionally preserved.
func (s *service) expandByRecipe(ctx context.Context, recipeID, amount, depth, maxDepth int) (expansion, error) {
	if depth > maxDepth {
		return expansion{truncated: true}, nil
	}

	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return expansion{}, fmt.Errorf("failed to get recipe %d: %w", recipeID, err)
	}

	// A recipe that consumes nothing is a gathering recipe; everything it
	// produces is a base material at the requested amount.
	if recipe.IsGathering() {
		result := expansion{}
		for _, produced := range recipe.ProducedItems {
			name, err := s.itemName(ctx, produced.ItemID)
			if err != nil {
				return expansion{}, err
			}
			result.materials = append(result.materials, domain.BaseMaterial{
				ItemID:         produced.ItemID,
				ItemName:       name,
				Amount:         amount,
				IsBaseMaterial: true,
			})
		}
		return result, nil
	}

	if len(recipe.ProducedItems) == 0 {
		return expansion{}, fmt.Errorf("%w: recipe %d", domain.ErrInvalidRecipe, recipeID)
	}
	producedPerRun := recipe.ProducedItems[0].Amount
	if producedPerRun <= 0 {
		return expansion{}, fmt.Errorf("%w: recipe %d has non-positive output", domain.ErrInvalidRecipe, recipeID)
	}

	recipeRuns := (amount + producedPerRun - 1) / producedPerRun

	var (
		stepItems []domain.StepItem
		subSteps  []domain.Step
		materials []domain.BaseMaterial
		truncated bool
	)

	// Consumed items are expanded one at a time to keep traversal order and
	// depth accounting deterministic and to bound catalog load.
	for _, consumed := range recipe.ConsumedItems {
		totalNeeded := consumed.Amount * recipeRuns

		name, err := s.itemName(ctx, consumed.ItemID)
		if err != nil {
			return expansion{}, err
		}
		stepItems = append(stepItems, domain.StepItem{
			ItemID:   consumed.ItemID,
			ItemName: name,
			Amount:   totalNeeded,
		})

		sub, err := s.expandByItem(ctx, consumed.ItemID, totalNeeded, depth+1, maxDepth)
		if err != nil {
			return expansion{}, err
		}

		subSteps = append(subSteps, sub.steps...)
		materials = mergeMaterials(materials, sub.materials)
		truncated = truncated || sub.truncated
	}

	result := expansion{
		steps:     subSteps,
		materials: materials,
		truncated: truncated,
	}
	// The current depth's step goes in front so steps read shallowest-first.
	if len(stepItems) > 0 {
		result.steps = append([]domain.Step{{Depth: depth, Items: stepItems}}, result.steps...)
	}

	return result, nil
}

// itemName labels an item for steps and base materials. Items referenced by
// recipes but absent from the item catalog keep the tree usable with a
// placeholder name instead of failing the whole resolution.
func (s *service) itemName(ctx context.Context, itemID int) (string, error) {
	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return fmt.Sprintf("Unknown Item %d", itemID), nil
		}
		return "", fmt.Errorf("failed to get item %d: %w", itemID, err)
	}
	return item.Name, nil
}
