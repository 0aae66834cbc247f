package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pipstudio/kitchengarden/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID      = errors.New("duplicate catalog id")
	ErrUnknownReference = errors.New("unknown catalog reference")
	ErrInvalidCatalog   = errors.New("invalid catalog")
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// vegetableDef is a single vegetable definition as written in YAML.
// Durations are whole minutes in the file; the loader converts them.
type vegetableDef struct {
	ID                   string `yaml:"id" validate:"required"`
	DisplayName          string `yaml:"display_name" validate:"required"`
	Icon                 string `yaml:"icon"`
	GrowthMinutes        int    `yaml:"growth_minutes" validate:"gt=0"`
	WaterIntervalMinutes int    `yaml:"water_interval_minutes" validate:"gte=0"`
	Yield                int    `yaml:"yield" validate:"gte=1"`
	SeedPrice            int    `yaml:"seed_price" validate:"gte=0"`
	SellValue            int    `yaml:"sell_value" validate:"gte=0"`
	HarvestXP            int    `yaml:"harvest_xp" validate:"gte=0"`
	StarterSeeds         int    `yaml:"starter_seeds" validate:"gte=0"`
}

// pantryDef is a single pantry item definition as written in YAML.
type pantryDef struct {
	ID          string `yaml:"id" validate:"required"`
	DisplayName string `yaml:"display_name" validate:"required"`
	Icon        string `yaml:"icon"`
	Category    string `yaml:"category" validate:"required,oneof=dairy grains seasoning treats"`
	ShopPrice   int    `yaml:"shop_price" validate:"gte=0"`
}

// recipeDef is a single recipe definition as written in YAML.
type recipeDef struct {
	ID          string              `yaml:"id" validate:"required"`
	DisplayName string              `yaml:"display_name" validate:"required"`
	Icon        string              `yaml:"icon"`
	Vegetables  map[string]int      `yaml:"vegetables" validate:"dive,gte=1"`
	Pantry      map[string]int      `yaml:"pantry" validate:"dive,gte=1"`
	Difficulty  int                 `yaml:"difficulty" validate:"gte=1,lte=5"`
	XPReward    int                 `yaml:"xp_reward" validate:"gte=0"`
	CoinReward  int                 `yaml:"coin_reward" validate:"gte=0"`
	Health      domain.HealthDeltas `yaml:"health"`
	Starter     bool                `yaml:"starter"`
	UnlockLevel int                 `yaml:"unlock_level" validate:"gte=0"`
	UnlockBadge string              `yaml:"unlock_badge"`
}

// fileDef is the top-level YAML document.
type fileDef struct {
	Version    int            `yaml:"version" validate:"gte=1"`
	Vegetables []vegetableDef `yaml:"vegetables" validate:"required,min=1"`
	Pantry     []pantryDef    `yaml:"pantry_items" validate:"required,min=1"`
	Recipes    []recipeDef    `yaml:"recipes" validate:"required,min=1"`
}

// Load reads and validates a catalog YAML file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Default returns the catalog compiled into the binary. The data ships
// with the game, so a parse failure here is a build defect.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse validates raw catalog YAML and builds the id-keyed Catalog.
func Parse(data []byte) (*Catalog, error) {
	var file fileDef
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	v := validator.New()
	if err := v.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		vegetables: make(map[domain.VegetableID]domain.VegetableType, len(file.Vegetables)),
		pantry:     make(map[domain.PantryItemID]domain.PantryItem, len(file.Pantry)),
		recipes:    make(map[domain.RecipeID]domain.Recipe, len(file.Recipes)),
	}

	for i := range file.Vegetables {
		def := &file.Vegetables[i]
		if err := v.Struct(def); err != nil {
			return nil, fmt.Errorf("%w: vegetable %q: %v", ErrInvalidCatalog, def.ID, err)
		}
		id := domain.VegetableID(def.ID)
		if _, exists := c.vegetables[id]; exists {
			return nil, fmt.Errorf("%w: vegetable %q", ErrDuplicateID, def.ID)
		}
		c.vegetables[id] = domain.VegetableType{
			ID:             id,
			DisplayName:    def.DisplayName,
			Icon:           def.Icon,
			GrowthDuration: time.Duration(def.GrowthMinutes) * time.Minute,
			WaterInterval:  time.Duration(def.WaterIntervalMinutes) * time.Minute,
			Yield:          def.Yield,
			SeedPrice:      def.SeedPrice,
			SellValue:      def.SellValue,
			HarvestXP:      def.HarvestXP,
			StarterSeeds:   def.StarterSeeds,
		}
		c.vegetableOrder = append(c.vegetableOrder, id)
	}

	for i := range file.Pantry {
		def := &file.Pantry[i]
		if err := v.Struct(def); err != nil {
			return nil, fmt.Errorf("%w: pantry item %q: %v", ErrInvalidCatalog, def.ID, err)
		}
		id := domain.PantryItemID(def.ID)
		if _, exists := c.pantry[id]; exists {
			return nil, fmt.Errorf("%w: pantry item %q", ErrDuplicateID, def.ID)
		}
		c.pantry[id] = domain.PantryItem{
			ID:          id,
			DisplayName: def.DisplayName,
			Icon:        def.Icon,
			Category:    domain.ShopCategory(def.Category),
			ShopPrice:   def.ShopPrice,
		}
		c.pantryOrder = append(c.pantryOrder, id)
	}

	starters := 0
	for i := range file.Recipes {
		def := &file.Recipes[i]
		recipe, err := c.buildRecipe(v, def)
		if err != nil {
			return nil, err
		}
		if _, exists := c.recipes[recipe.ID]; exists {
			return nil, fmt.Errorf("%w: recipe %q", ErrDuplicateID, def.ID)
		}
		c.recipes[recipe.ID] = recipe
		c.recipeOrder = append(c.recipeOrder, recipe.ID)
		if recipe.Starter {
			starters++
		}
	}

	if starters == 0 {
		return nil, fmt.Errorf("%w: no starter recipe defined", ErrInvalidCatalog)
	}

	return c, nil
}

// buildRecipe validates one recipe definition and resolves its references
// against the already-loaded vegetables and pantry items.
func (c *Catalog) buildRecipe(v *validator.Validate, def *recipeDef) (domain.Recipe, error) {
	if err := v.Struct(def); err != nil {
		return domain.Recipe{}, fmt.Errorf("%w: recipe %q: %v", ErrInvalidCatalog, def.ID, err)
	}
	if len(def.Vegetables)+len(def.Pantry) == 0 {
		return domain.Recipe{}, fmt.Errorf("%w: recipe %q has no ingredients", ErrInvalidCatalog, def.ID)
	}

	recipe := domain.Recipe{
		ID:          domain.RecipeID(def.ID),
		DisplayName: def.DisplayName,
		Icon:        def.Icon,
		Vegetables:  make(map[domain.VegetableID]int, len(def.Vegetables)),
		Pantry:      make(map[domain.PantryItemID]int, len(def.Pantry)),
		Difficulty:  def.Difficulty,
		XPReward:    def.XPReward,
		CoinReward:  def.CoinReward,
		Health:      def.Health,
		Starter:     def.Starter,
		UnlockLevel: def.UnlockLevel,
		UnlockBadge: domain.BadgeID(def.UnlockBadge),
	}

	for vid, qty := range def.Vegetables {
		id := domain.VegetableID(vid)
		if _, ok := c.vegetables[id]; !ok {
			return domain.Recipe{}, fmt.Errorf("%w: recipe %q needs vegetable %q", ErrUnknownReference, def.ID, vid)
		}
		recipe.Vegetables[id] = qty
	}
	for pid, qty := range def.Pantry {
		id := domain.PantryItemID(pid)
		if _, ok := c.pantry[id]; !ok {
			return domain.Recipe{}, fmt.Errorf("%w: recipe %q needs pantry item %q", ErrUnknownReference, def.ID, pid)
		}
		recipe.Pantry[id] = qty
	}

	if recipe.UnlockBadge != "" {
		known := false
		for _, b := range domain.AllBadges {
			if b == recipe.UnlockBadge {
				known = true
				break
			}
		}
		if !known {
			return domain.Recipe{}, fmt.Errorf("%w: recipe %q needs badge %q", ErrUnknownReference, def.ID, def.UnlockBadge)
		}
	}

	return recipe, nil
}
