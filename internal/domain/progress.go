package domain

import "time"

// PlayerProgress is the aggregate root for everything the game persists
// about one player. It is exclusively owned by the running session: the
// engines mutate it, the progression store serializes it, and the view
// layer only ever reads it.
//
// Invariants: Coins and every quantity are non-negative; Level >= 1;
// health stats stay in [0,100]; UnlockedRecipes always contains the
// starter recipes; StarRatings only holds entries for unlocked recipes.
type PlayerProgress struct {
	Coins int
	XP    int
	Level int

	Seeds     map[VegetableID]int
	Harvested map[VegetableID]int
	Plots     []Plot
	Pantry    map[PantryItemID]int

	UnlockedRecipes map[RecipeID]bool
	StarRatings     map[RecipeID]int

	Health HealthStats
	Badges map[BadgeID]bool

	TotalHarvests int
	TotalDishes   int

	LastSaved time.Time
}

// SeedCount returns how many seeds of v the player holds.
func (p *PlayerProgress) SeedCount(v VegetableID) int {
	return p.Seeds[v]
}

// HarvestedCount returns how many harvested units of v the player holds.
func (p *PlayerProgress) HarvestedCount(v VegetableID) int {
	return p.Harvested[v]
}

// PantryQuantity returns the pantry stock for item, zero if absent.
func (p *PlayerProgress) PantryQuantity(item PantryItemID) int {
	return p.Pantry[item]
}

// IsRecipeUnlocked reports whether the recipe is available for cooking.
func (p *PlayerProgress) IsRecipeUnlocked(id RecipeID) bool {
	return p.UnlockedRecipes[id]
}

// StarRating returns the recorded rating for a recipe, zero if never
// successfully cooked.
func (p *PlayerProgress) StarRating(id RecipeID) int {
	return p.StarRatings[id]
}

// HasBadge reports whether the badge has been earned.
func (p *PlayerProgress) HasBadge(id BadgeID) bool {
	return p.Badges[id]
}

// Plot returns the plot with the given slot index, or nil when out of
// range.
func (p *PlayerProgress) Plot(plotID int) *Plot {
	if plotID < 0 || plotID >= len(p.Plots) {
		return nil
	}
	return &p.Plots[plotID]
}
