// Package catalog holds the static reference data of the game: the fixed
// sets of vegetable types, pantry items and recipes. The catalog carries
// no gameplay logic; engines look entries up by id and never mutate them.
package catalog

import (
	"fmt"

	"github.com/pipstudio/kitchengarden/internal/domain"
)

// Catalog is the validated, in-memory form of the reference data.
// Lookups are by id; the ordered slices preserve file order for display.
type Catalog struct {
	vegetables map[domain.VegetableID]domain.VegetableType
	pantry     map[domain.PantryItemID]domain.PantryItem
	recipes    map[domain.RecipeID]domain.Recipe

	vegetableOrder []domain.VegetableID
	pantryOrder    []domain.PantryItemID
	recipeOrder    []domain.RecipeID
}

// Vegetable returns the vegetable type with the given id.
func (c *Catalog) Vegetable(id domain.VegetableID) (domain.VegetableType, error) {
	v, ok := c.vegetables[id]
	if !ok {
		return domain.VegetableType{}, fmt.Errorf("%w: %s", domain.ErrVegetableNotFound, id)
	}
	return v, nil
}

// PantryItem returns the pantry item with the given id.
func (c *Catalog) PantryItem(id domain.PantryItemID) (domain.PantryItem, error) {
	p, ok := c.pantry[id]
	if !ok {
		return domain.PantryItem{}, fmt.Errorf("%w: %s", domain.ErrPantryItemNotFound, id)
	}
	return p, nil
}

// Recipe returns the recipe with the given id.
func (c *Catalog) Recipe(id domain.RecipeID) (domain.Recipe, error) {
	r, ok := c.recipes[id]
	if !ok {
		return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	return r, nil
}

// HasVegetable reports whether the id names a known vegetable type.
func (c *Catalog) HasVegetable(id domain.VegetableID) bool {
	_, ok := c.vegetables[id]
	return ok
}

// HasPantryItem reports whether the id names a known pantry item.
func (c *Catalog) HasPantryItem(id domain.PantryItemID) bool {
	_, ok := c.pantry[id]
	return ok
}

// HasRecipe reports whether the id names a known recipe.
func (c *Catalog) HasRecipe(id domain.RecipeID) bool {
	_, ok := c.recipes[id]
	return ok
}

// Vegetables returns every vegetable type in catalog order.
func (c *Catalog) Vegetables() []domain.VegetableType {
	out := make([]domain.VegetableType, 0, len(c.vegetableOrder))
	for _, id := range c.vegetableOrder {
		out = append(out, c.vegetables[id])
	}
	return out
}

// PantryItems returns every pantry item in catalog order.
func (c *Catalog) PantryItems() []domain.PantryItem {
	out := make([]domain.PantryItem, 0, len(c.pantryOrder))
	for _, id := range c.pantryOrder {
		out = append(out, c.pantry[id])
	}
	return out
}

// Recipes returns every recipe in catalog order.
func (c *Catalog) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, 0, len(c.recipeOrder))
	for _, id := range c.recipeOrder {
		out = append(out, c.recipes[id])
	}
	return out
}

// StarterRecipes returns the recipes unlocked for every new player.
func (c *Catalog) StarterRecipes() []domain.Recipe {
	var out []domain.Recipe
	for _, id := range c.recipeOrder {
		if r := c.recipes[id]; r.Starter {
			out = append(out, r)
		}
	}
	return out
}
