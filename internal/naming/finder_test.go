package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
)

func newTestFinder() *Finder {
	return NewFinder(catalog.Default())
}

func TestVegetable_ExactID(t *testing.T) {
	f := newTestFinder()

	id, ok := f.Vegetable("carrot")
	assert.True(t, ok)
	assert.Equal(t, domain.VegetableID("carrot"), id)
}

func TestVegetable_DisplayNameAndCase(t *testing.T) {
	f := newTestFinder()

	id, ok := f.Vegetable("Carrot")
	assert.True(t, ok)
	assert.Equal(t, domain.VegetableID("carrot"), id)

	id, ok = f.Vegetable("  TOMATO ")
	assert.True(t, ok)
	assert.Equal(t, domain.VegetableID("tomato"), id)
}

func TestVegetable_Typo(t *testing.T) {
	f := newTestFinder()

	id, ok := f.Vegetable("tomatoe")
	assert.True(t, ok)
	assert.Equal(t, domain.VegetableID("tomato"), id)

	id, ok = f.Vegetable("letuce")
	assert.True(t, ok)
	assert.Equal(t, domain.VegetableID("lettuce"), id)
}

func TestVegetable_NoMatch(t *testing.T) {
	f := newTestFinder()

	_, ok := f.Vegetable("xyzzyplugh")
	assert.False(t, ok)
	_, ok = f.Vegetable("")
	assert.False(t, ok)
}

func TestRecipe_SpacesMatchDashes(t *testing.T) {
	f := newTestFinder()

	id, ok := f.Recipe("garden salad")
	assert.True(t, ok)
	assert.Equal(t, domain.RecipeID("garden-salad"), id)

	id, ok = f.Recipe("Garden Salad")
	assert.True(t, ok)
	assert.Equal(t, domain.RecipeID("garden-salad"), id)

	id, ok = f.Recipe("garden_salad")
	assert.True(t, ok)
	assert.Equal(t, domain.RecipeID("garden-salad"), id)
}

func TestPantryItem(t *testing.T) {
	f := newTestFinder()

	id, ok := f.PantryItem("olive oil")
	assert.True(t, ok)
	assert.Equal(t, domain.PantryItemID("olive-oil"), id)

	_, ok = f.PantryItem("plutonium")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "garden-salad", normalize(" Garden Salad "))
	assert.Equal(t, "olive-oil", normalize("olive_oil"))
	assert.Equal(t, "", normalize("   "))
}

func TestMaxDistance_ScalesWithLength(t *testing.T) {
	assert.Equal(t, 1, maxDistance(3))
	assert.Equal(t, 1, maxDistance(4))
	assert.Equal(t, 2, maxDistance(8))
	assert.Equal(t, 3, maxDistance(12))
}
