package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gradius/bitplanner/internal/domain"
)

// Game description files exported from the game client. Each one is a
// JSON array of description objects.
const (
	ItemsFile         = "item_desc.json"
	CargosFile        = "cargo_desc.json"
	RecipesFile       = "crafting_recipe_desc.json"
	BuildingTypesFile = "building_type_desc.json"
)

// GameData holds the parsed contents of a game data directory.
type GameData struct {
	Items         []domain.Item
	Cargos        []domain.Cargo
	Recipes       []domain.Recipe
	BuildingTypes []domain.BuildingType
}

// stack is the wire form of an item stack: a JSON array whose first two
// elements are the item id and the amount. Trailing elements are nested
// arrays and floats (durability curves and probabilities) and are ignored.
type stack struct {
	ItemID int
	Amount int
}

func (s *stack) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) < 2 {
		return fmt.Errorf("item stack needs at least 2 elements, got %d", len(fields))
	}
	if err := json.Unmarshal(fields[0], &s.ItemID); err != nil {
		return fmt.Errorf("invalid stack item id: %w", err)
	}
	if err := json.Unmarshal(fields[1], &s.Amount); err != nil {
		return fmt.Errorf("invalid stack amount: %w", err)
	}
	return nil
}

// buildingRequirement is the wire form of a recipe's building requirement:
// a two-element array of a tag and an object with the type and tier.
type buildingRequirement struct {
	BuildingType int
	Tier         int
}

func (b *buildingRequirement) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) < 2 {
		return nil
	}
	var req struct {
		BuildingType int `json:"building_type"`
		Tier         int `json:"tier"`
	}
	if err := json.Unmarshal(fields[1], &req); err != nil {
		// Some entries carry a bare number instead of the requirement
		// object; those recipes have no building requirement.
		return nil
	}
	b.BuildingType = req.BuildingType
	b.Tier = req.Tier
	return nil
}

// rarity is exported as an array whose first element is the numeric value.
type rarity int

func (r *rarity) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	var value int
	if err := json.Unmarshal(fields[0], &value); err != nil {
		return fmt.Errorf("invalid rarity: %w", err)
	}
	*r = rarity(value)
	return nil
}

type rawItem struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Tier          int    `json:"tier"`
	Rarity        rarity `json:"rarity"`
	Tag           string `json:"tag"`
	Volume        int    `json:"volume"`
	Durability    int    `json:"durability"`
	IconAssetName string `json:"icon_asset_name"`
}

type rawRecipe struct {
	ID                  int                  `json:"id"`
	ConsumedItemStacks  []stack              `json:"consumed_item_stacks"`
	CraftedItemStacks   []stack              `json:"crafted_item_stacks"`
	BuildingRequirement *buildingRequirement `json:"building_requirement"`
}

type rawBuildingType struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category int    `json:"category"`
}

// Load parses all game description files under dir.
func Load(dir string) (*GameData, error) {
	items, err := LoadItems(dir)
	if err != nil {
		return nil, err
	}
	cargos, err := LoadCargos(dir)
	if err != nil {
		return nil, err
	}
	recipes, err := LoadRecipes(dir)
	if err != nil {
		return nil, err
	}
	buildingTypes, err := LoadBuildingTypes(dir)
	if err != nil {
		return nil, err
	}
	return &GameData{
		Items:         items,
		Cargos:        cargos,
		Recipes:       recipes,
		BuildingTypes: buildingTypes,
	}, nil
}

// LoadItems parses the item description file.
func LoadItems(dir string) ([]domain.Item, error) {
	var raw []rawItem
	if err := decodeFile(filepath.Join(dir, ItemsFile), &raw); err != nil {
		return nil, err
	}
	items := make([]domain.Item, len(raw))
	for i, r := range raw {
		items[i] = domain.Item{
			ID:            r.ID,
			Name:          r.Name,
			Description:   r.Description,
			Tier:          r.Tier,
			Rarity:        int(r.Rarity),
			Tag:           r.Tag,
			Volume:        r.Volume,
			Durability:    r.Durability,
			IconAssetName: r.IconAssetName,
		}
	}
	return items, nil
}

// LoadCargos parses the cargo description file. Cargo entries share the
// item description shape.
func LoadCargos(dir string) ([]domain.Cargo, error) {
	var raw []rawItem
	if err := decodeFile(filepath.Join(dir, CargosFile), &raw); err != nil {
		return nil, err
	}
	cargos := make([]domain.Cargo, len(raw))
	for i, r := range raw {
		cargos[i] = domain.Cargo{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Tier:        r.Tier,
			Rarity:      int(r.Rarity),
			Tag:         r.Tag,
			Volume:      r.Volume,
		}
	}
	return cargos, nil
}

// LoadRecipes parses the crafting recipe description file.
func LoadRecipes(dir string) ([]domain.Recipe, error) {
	var raw []rawRecipe
	if err := decodeFile(filepath.Join(dir, RecipesFile), &raw); err != nil {
		return nil, err
	}
	recipes := make([]domain.Recipe, len(raw))
	for i, r := range raw {
		recipe := domain.Recipe{
			ID:            r.ID,
			ConsumedItems: stacksToDomain(r.ConsumedItemStacks),
			ProducedItems: stacksToDomain(r.CraftedItemStacks),
		}
		if r.BuildingRequirement != nil {
			recipe.BuildingTypeRequirement = r.BuildingRequirement.BuildingType
			recipe.BuildingTierRequirement = r.BuildingRequirement.Tier
		}
		recipes[i] = recipe
	}
	return recipes, nil
}

// LoadBuildingTypes parses the building type description file.
func LoadBuildingTypes(dir string) ([]domain.BuildingType, error) {
	var raw []rawBuildingType
	if err := decodeFile(filepath.Join(dir, BuildingTypesFile), &raw); err != nil {
		return nil, err
	}
	buildingTypes := make([]domain.BuildingType, len(raw))
	for i, r := range raw {
		buildingTypes[i] = domain.BuildingType{
			ID:       r.ID,
			Name:     r.Name,
			Category: r.Category,
		}
	}
	return buildingTypes, nil
}

func stacksToDomain(stacks []stack) []domain.RecipeStack {
	out := make([]domain.RecipeStack, len(stacks))
	for i, s := range stacks {
		out[i] = domain.RecipeStack{ItemID: s.ItemID, Amount: s.Amount}
	}
	return out
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open game data file %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to parse game data file %s: %w", path, err)
	}
	return nil
}
