package domain

// RecipeID is the stable catalog identifier of a recipe.
type RecipeID string

// Star rating bounds for cooked recipes.
const (
	StarRatingMin = 0
	StarRatingMax = 3
)

// Recipe is a catalog entry describing one cookable dish: the ingredients
// it consumes and the rewards it grants.
type Recipe struct {
	ID          RecipeID
	DisplayName string
	Icon        string

	// Vegetables maps vegetable id to the harvested quantity consumed;
	// Pantry maps pantry item id to the stock quantity consumed.
	Vegetables map[VegetableID]int
	Pantry     map[PantryItemID]int

	Difficulty int
	XPReward   int
	CoinReward int
	Health     HealthDeltas

	// Starter recipes are unlocked for every new player. Non-starter
	// recipes unlock when the player reaches UnlockLevel, or earns
	// UnlockBadge when one is set.
	Starter     bool
	UnlockLevel int
	UnlockBadge BadgeID
}
