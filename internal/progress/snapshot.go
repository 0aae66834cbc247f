package progress

import (
	"context"
	"sort"
	"time"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/logger"
)

// SnapshotVersion is the current persisted schema version.
const SnapshotVersion = 1

// New-player defaults.
const (
	DefaultCoins      = 100
	DefaultHealthStat = 50
)

// Snapshot is the persisted form of PlayerProgress: scalar fields plus
// flat arrays keyed by id string. Arrays rather than maps keep the
// on-disk layout stable when the catalog gains a vegetable or recipe;
// evolving the catalog only changes lookup-by-id results at load time,
// never the schema.
type Snapshot struct {
	Version int `json:"version"`

	Coins int `json:"coins"`
	XP    int `json:"xp"`
	Level int `json:"level"`

	Seeds     []seedRecord         `json:"seeds"`
	Harvested []seedRecord         `json:"harvested"`
	Plots     []plotRecord         `json:"plots"`
	Pantry    []domain.PantryStock `json:"pantry"`

	UnlockedRecipes []string     `json:"unlocked_recipes"`
	StarRatings     []starRecord `json:"star_ratings"`

	// Health is a pointer so a snapshot written before the Body Buddy
	// feature existed keeps the new-player default stats.
	Health *domain.HealthStats `json:"health,omitempty"`
	Badges []string            `json:"badges"`

	TotalHarvests int `json:"total_harvests"`
	TotalDishes   int `json:"total_dishes"`

	LastSaved time.Time `json:"last_saved"`
}

type seedRecord struct {
	Vegetable string `json:"vegetable"`
	Quantity  int    `json:"quantity"`
}

type starRecord struct {
	Recipe string `json:"recipe"`
	Stars  int    `json:"stars"`
}

type plotRecord struct {
	ID            int        `json:"id"`
	State         string     `json:"state"`
	Vegetable     string     `json:"vegetable,omitempty"`
	PlantedAt     *time.Time `json:"planted_at,omitempty"`
	LastWateredAt *time.Time `json:"last_watered_at,omitempty"`
	PausedSeconds int64      `json:"paused_seconds,omitempty"`
}

// NewPlayerProgress builds the default progress for a brand-new player:
// starting coins, starter seeds and recipes from the catalog, mid-range
// health, and an empty fixed-size garden.
func NewPlayerProgress(cat *catalog.Catalog, plotCount int) *domain.PlayerProgress {
	p := &domain.PlayerProgress{
		Coins:           DefaultCoins,
		XP:              0,
		Level:           1,
		Seeds:           make(map[domain.VegetableID]int),
		Harvested:       make(map[domain.VegetableID]int),
		Plots:           domain.NewPlots(plotCount),
		Pantry:          make(map[domain.PantryItemID]int),
		UnlockedRecipes: make(map[domain.RecipeID]bool),
		StarRatings:     make(map[domain.RecipeID]int),
		Health: domain.HealthStats{
			Energy:   DefaultHealthStat,
			Strength: DefaultHealthStat,
			Brains:   DefaultHealthStat,
			Bones:    DefaultHealthStat,
			Teeth:    DefaultHealthStat,
			Tummy:    DefaultHealthStat,
		},
		Badges: make(map[domain.BadgeID]bool),
	}

	for _, veg := range cat.Vegetables() {
		if veg.StarterSeeds > 0 {
			p.Seeds[veg.ID] = veg.StarterSeeds
		}
	}
	for _, recipe := range cat.StarterRecipes() {
		p.UnlockedRecipes[recipe.ID] = true
	}
	return p
}

// toSnapshot serializes progress into its persisted form. Arrays are
// sorted by id so that two saves of the same state are byte-identical
// apart from the timestamp.
func toSnapshot(p *domain.PlayerProgress) *Snapshot {
	health := p.Health
	snap := &Snapshot{
		Version:       SnapshotVersion,
		Coins:         p.Coins,
		XP:            p.XP,
		Level:         p.Level,
		Health:        &health,
		TotalHarvests: p.TotalHarvests,
		TotalDishes:   p.TotalDishes,
		LastSaved:     p.LastSaved,
	}

	for veg, qty := range p.Seeds {
		snap.Seeds = append(snap.Seeds, seedRecord{Vegetable: string(veg), Quantity: qty})
	}
	sort.Slice(snap.Seeds, func(i, j int) bool { return snap.Seeds[i].Vegetable < snap.Seeds[j].Vegetable })

	for veg, qty := range p.Harvested {
		snap.Harvested = append(snap.Harvested, seedRecord{Vegetable: string(veg), Quantity: qty})
	}
	sort.Slice(snap.Harvested, func(i, j int) bool { return snap.Harvested[i].Vegetable < snap.Harvested[j].Vegetable })

	for _, plot := range p.Plots {
		snap.Plots = append(snap.Plots, plotRecord{
			ID:            plot.ID,
			State:         string(plot.State),
			Vegetable:     string(plot.Vegetable),
			PlantedAt:     plot.PlantedAt,
			LastWateredAt: plot.LastWateredAt,
			PausedSeconds: int64(plot.Paused / time.Second),
		})
	}

	for item, qty := range p.Pantry {
		snap.Pantry = append(snap.Pantry, domain.PantryStock{Item: item, Quantity: qty})
	}
	sort.Slice(snap.Pantry, func(i, j int) bool { return snap.Pantry[i].Item < snap.Pantry[j].Item })

	for id := range p.UnlockedRecipes {
		snap.UnlockedRecipes = append(snap.UnlockedRecipes, string(id))
	}
	sort.Strings(snap.UnlockedRecipes)

	for id, stars := range p.StarRatings {
		snap.StarRatings = append(snap.StarRatings, starRecord{Recipe: string(id), Stars: stars})
	}
	sort.Slice(snap.StarRatings, func(i, j int) bool { return snap.StarRatings[i].Recipe < snap.StarRatings[j].Recipe })

	for id := range p.Badges {
		snap.Badges = append(snap.Badges, string(id))
	}
	sort.Strings(snap.Badges)

	return snap
}

// fromSnapshot rebuilds in-memory progress from a persisted snapshot,
// tolerating partial data: missing fields fall back to new-player
// defaults, ids the catalog no longer knows are dropped with a warning,
// and out-of-range values are clamped back into their invariants.
func fromSnapshot(ctx context.Context, snap *Snapshot, cat *catalog.Catalog, plotCount int) *domain.PlayerProgress {
	log := logger.FromContext(ctx)
	p := NewPlayerProgress(cat, plotCount)

	p.Coins = clampNonNegative(snap.Coins)
	p.XP = clampNonNegative(snap.XP)
	p.Level = snap.Level
	if p.Level < 1 {
		p.Level = 1
	}
	p.TotalHarvests = clampNonNegative(snap.TotalHarvests)
	p.TotalDishes = clampNonNegative(snap.TotalDishes)
	p.LastSaved = snap.LastSaved

	if snap.Seeds != nil {
		p.Seeds = make(map[domain.VegetableID]int)
		for _, rec := range snap.Seeds {
			id := domain.VegetableID(rec.Vegetable)
			if !cat.HasVegetable(id) {
				log.Warn("Dropping seeds for unknown vegetable", "vegetable", rec.Vegetable)
				continue
			}
			if rec.Quantity > 0 {
				p.Seeds[id] = rec.Quantity
			}
		}
	}

	for _, rec := range snap.Harvested {
		id := domain.VegetableID(rec.Vegetable)
		if !cat.HasVegetable(id) {
			log.Warn("Dropping harvested stock for unknown vegetable", "vegetable", rec.Vegetable)
			continue
		}
		if rec.Quantity > 0 {
			p.Harvested[id] = rec.Quantity
		}
	}

	if len(snap.Plots) > 0 {
		p.Plots = domain.NewPlots(len(snap.Plots))
		for i, rec := range snap.Plots {
			plot := &p.Plots[i]
			vegID := domain.VegetableID(rec.Vegetable)
			if rec.Vegetable == "" || rec.State == string(domain.PlotEmpty) || rec.PlantedAt == nil {
				continue
			}
			if !cat.HasVegetable(vegID) {
				log.Warn("Clearing plot planted with unknown vegetable", "plot", i, "vegetable", rec.Vegetable)
				continue
			}
			plot.State = domain.PlotState(rec.State)
			plot.Vegetable = vegID
			plot.PlantedAt = rec.PlantedAt
			plot.LastWateredAt = rec.LastWateredAt
			plot.Paused = time.Duration(rec.PausedSeconds) * time.Second
		}
	}

	for _, stock := range snap.Pantry {
		if !cat.HasPantryItem(stock.Item) {
			log.Warn("Dropping stock for unknown pantry item", "item", stock.Item)
			continue
		}
		if stock.Quantity > 0 {
			p.Pantry[stock.Item] = stock.Quantity
		}
	}

	for _, id := range snap.UnlockedRecipes {
		rid := domain.RecipeID(id)
		if !cat.HasRecipe(rid) {
			log.Warn("Dropping unlock for unknown recipe", "recipe", id)
			continue
		}
		p.UnlockedRecipes[rid] = true
	}

	for _, rec := range snap.StarRatings {
		rid := domain.RecipeID(rec.Recipe)
		if !cat.HasRecipe(rid) {
			log.Warn("Dropping star rating for unknown recipe", "recipe", rec.Recipe)
			continue
		}
		// Ratings are only recorded for unlocked recipes.
		if !p.UnlockedRecipes[rid] {
			log.Warn("Dropping star rating for locked recipe", "recipe", rec.Recipe)
			continue
		}
		stars := rec.Stars
		if stars < domain.StarRatingMin {
			stars = domain.StarRatingMin
		}
		if stars > domain.StarRatingMax {
			stars = domain.StarRatingMax
		}
		p.StarRatings[rid] = stars
	}

	if snap.Health != nil {
		p.Health = snap.Health.Clamped()
	}

	for _, id := range snap.Badges {
		bid := domain.BadgeID(id)
		known := false
		for _, b := range domain.AllBadges {
			if b == bid {
				known = true
				break
			}
		}
		if !known {
			log.Warn("Dropping unknown badge", "badge", id)
			continue
		}
		p.Badges[bid] = true
	}

	return p
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
