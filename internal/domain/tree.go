package domain

// DefaultMaxDepth bounds recipe tree expansion when the caller does not
// supply a depth budget.
const DefaultMaxDepth = 10

// StepItem is one item consumed at a given expansion depth.
type StepItem struct {
	ItemID   int    `json:"item_id"`
	ItemName string `json:"item_name"`
	Amount   int    `json:"amount"`
}

// Step lists everything consumed at one recursion depth of a recipe tree.
// Steps are ordered shallowest-first: the root recipe's immediate
// requirements come before deeper prerequisites.
type Step struct {
	Depth int        `json:"depth"`
	Items []StepItem `json:"items"`
}

// BaseMaterial is a leaf of the expansion: an item with no usable producing
// recipe. Contributions from independent branches are summed, so a tree
// holds at most one BaseMaterial per item id.
type BaseMaterial struct {
	ItemID         int    `json:"item_id"`
	ItemName       string `json:"item_name"`
	Amount         int    `json:"amount"`
	IsBaseMaterial bool   `json:"is_base_material"`
}

// RecipeTree is the fully expanded production plan for one target item.
// Truncated is set when the expansion hit the depth budget and the result
// is quietly incomplete below that point.
type RecipeTree struct {
	RecipeID      int            `json:"recipe_id"`
	ItemID        int            `json:"item_id"`
	ItemName      string         `json:"item_name"`
	Steps         []Step         `json:"steps"`
	BaseMaterials []BaseMaterial `json:"base_materials"`
	Truncated     bool           `json:"truncated,omitempty"`
}
