package domain

// BuildingTypeReforge is the reserved building-type id that marks reforging
// stations. Recipes bound to it reclaim or convert an item rather than
// produce it, so recipe selection skips them when picking a producer.
const BuildingTypeReforge = 127749503

// RecipeStack is a single (item, amount) pair consumed or produced by a recipe.
type RecipeStack struct {
	ItemID int `json:"item_id"`
	Amount int `json:"amount"`
}

// Recipe represents a crafting recipe. ConsumedItems may be empty: such a
// recipe is a gathering recipe and its produced items are base materials.
// ProducedItems is never empty for a recipe that exists; the first entry is
// the recipe's primary output and drives batch-quantity scaling.
type Recipe struct {
	ID                      int           `json:"recipe_id"`
	ConsumedItems           []RecipeStack `json:"consumed_items"`
	ProducedItems           []RecipeStack `json:"produced_items"`
	BuildingTypeRequirement int           `json:"building_type_requirement"`
	BuildingTierRequirement int           `json:"building_tier_requirement,omitempty"`
}

// RecipeCandidate is a lightweight reference to a recipe that produces a
// given item, carrying just enough to apply selection policy without
// fetching the full recipe.
type RecipeCandidate struct {
	RecipeID                int `json:"recipe_id"`
	BuildingTypeRequirement int `json:"building_type_requirement"`
}

// IsGathering reports whether the recipe consumes nothing.
func (r *Recipe) IsGathering() bool {
	return len(r.ConsumedItems) == 0
}

// IsReforge reports whether the candidate points at a reforging recipe.
func (c RecipeCandidate) IsReforge() bool {
	return c.BuildingTypeRequirement == BuildingTypeReforge
}
