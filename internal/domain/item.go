package domain

// Item represents a game item's descriptive record.
// Only identity fields are needed by the planner; the richer attributes
// come straight from the imported game data and are served as-is.
type Item struct {
	ID            int    `json:"item_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Tier          int    `json:"tier,omitempty"`
	Rarity        int    `json:"rarity,omitempty"`
	Tag           string `json:"tag,omitempty"`
	Volume        int    `json:"volume,omitempty"`
	Durability    int    `json:"durability,omitempty"`
	IconAssetName string `json:"icon_asset_name,omitempty"`
}

// BuildingType represents a crafting-station category from the game data.
type BuildingType struct {
	ID       int    `json:"building_id"`
	Name     string `json:"name"`
	Category int    `json:"category"`
}

// Cargo represents a bulk-transport good. Cargo shares the item id space
// for recipe purposes but is described separately in the game data.
type Cargo struct {
	ID          int    `json:"cargo_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Tier        int    `json:"tier,omitempty"`
	Rarity      int    `json:"rarity,omitempty"`
	Tag         string `json:"tag,omitempty"`
	Volume      int    `json:"volume,omitempty"`
}
