package domain

// EventType identifies one kind of engine mutation notification.
type EventType string

const (
	EventPlotPlanted    EventType = "plot.planted"
	EventPlotWatered    EventType = "plot.watered"
	EventPlotHarvested  EventType = "plot.harvested"
	EventItemBought     EventType = "item.bought"
	EventItemSold       EventType = "item.sold"
	EventRecipeCooked   EventType = "recipe.cooked"
	EventRecipeUnlocked EventType = "recipe.unlocked"
	EventPlayerLevelUp  EventType = "player.levelup"
	EventBadgeEarned    EventType = "badge.earned"
)

// Typed event payloads for type safety. The view layer subscribes to
// these to refresh itself after mutations; it never receives a writable
// reference to PlayerProgress.

// PlotPlantedPayload is the typed payload for plot.planted events.
type PlotPlantedPayload struct {
	PlotID    int         `json:"plot_id"`
	Vegetable VegetableID `json:"vegetable"`
	Timestamp int64       `json:"timestamp"`
}

// PlotWateredPayload is the typed payload for plot.watered events.
type PlotWateredPayload struct {
	PlotID    int         `json:"plot_id"`
	Vegetable VegetableID `json:"vegetable"`
	Timestamp int64       `json:"timestamp"`
}

// PlotHarvestedPayload is the typed payload for plot.harvested events.
type PlotHarvestedPayload struct {
	PlotID    int         `json:"plot_id"`
	Vegetable VegetableID `json:"vegetable"`
	Yield     int         `json:"yield"`
	XPAwarded int         `json:"xp_awarded"`
	Timestamp int64       `json:"timestamp"`
}

// ItemBoughtPayload is the typed payload for item.bought events.
type ItemBoughtPayload struct {
	Item      PantryItemID `json:"item"`
	Quantity  int          `json:"quantity"`
	TotalCost int          `json:"total_cost"`
	Timestamp int64        `json:"timestamp"`
}

// ItemSoldPayload is the typed payload for item.sold events.
type ItemSoldPayload struct {
	Item       PantryItemID `json:"item,omitempty"`
	Vegetable  VegetableID  `json:"vegetable,omitempty"`
	Quantity   int          `json:"quantity"`
	TotalValue int          `json:"total_value"`
	Timestamp  int64        `json:"timestamp"`
}

// RecipeCookedPayload is the typed payload for recipe.cooked events.
type RecipeCookedPayload struct {
	Recipe      RecipeID `json:"recipe"`
	Stars       int      `json:"stars"`
	XPAwarded   int      `json:"xp_awarded"`
	CoinsEarned int      `json:"coins_earned"`
	Timestamp   int64    `json:"timestamp"`
}

// RecipeUnlockedPayload is the typed payload for recipe.unlocked events.
type RecipeUnlockedPayload struct {
	Recipe RecipeID `json:"recipe"`
	// Reason is "starter", "level", "badge" or "manual".
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// PlayerLevelUpPayload is the typed payload for player.levelup events.
type PlayerLevelUpPayload struct {
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
	TotalXP   int   `json:"total_xp"`
	Timestamp int64 `json:"timestamp"`
}

// BadgeEarnedPayload is the typed payload for badge.earned events.
type BadgeEarnedPayload struct {
	Badge     BadgeID `json:"badge"`
	Timestamp int64   `json:"timestamp"`
}
