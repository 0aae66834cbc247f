package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/event"
	"github.com/pipstudio/kitchengarden/internal/garden"
	"github.com/pipstudio/kitchengarden/internal/progress"
)

const testCatalogYAML = `
version: 1
vegetables:
  - id: carrot
    display_name: Carrot
    growth_minutes: 30
    yield: 3
    seed_price: 5
    sell_value: 4
    harvest_xp: 15
    starter_seeds: 3
  - id: lettuce
    display_name: Lettuce
    growth_minutes: 20
    water_interval_minutes: 15
    yield: 2
    seed_price: 4
    sell_value: 3
    harvest_xp: 10
    starter_seeds: 3
pantry_items:
  - id: dressing
    display_name: Salad Dressing
    category: seasoning
    shop_price: 8
recipes:
  - id: garden-salad
    display_name: Garden Salad
    vegetables:
      lettuce: 2
    pantry:
      dressing: 1
    difficulty: 1
    xp_reward: 15
    coin_reward: 5
    health:
      tummy: 10
    starter: true
  - id: carrot-feast
    display_name: Carrot Feast
    vegetables:
      carrot: 3
    difficulty: 2
    xp_reward: 40
    coin_reward: 15
    unlock_level: 2
`

type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time          { return c.current }
func (c *testClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestSession(t *testing.T) (*Session, *testClock, *progress.MemoryBackend) {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)

	clock := newTestClock()
	backend := progress.NewMemoryBackend()
	store := progress.NewStore(backend, cat, 4)
	bus := event.NewMemoryBus()

	session := NewSession(context.Background(), cat, store, bus,
		WithGardenService(garden.NewServiceWithClock(cat, bus, clock.Now)),
		WithClock(clock.Now),
	)
	return session, clock, backend
}

func TestNewSession_FreshPlayer(t *testing.T) {
	session, _, _ := newTestSession(t)
	p := session.Progress()

	assert.Equal(t, progress.DefaultCoins, p.Coins)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 3, p.SeedCount("carrot"))
	assert.True(t, p.IsRecipeUnlocked("garden-salad"))
	assert.False(t, p.IsRecipeUnlocked("carrot-feast"))
}

func TestSession_PlantGrowHarvest(t *testing.T) {
	session, clock, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, session.Plant(ctx, 0, "carrot"))

	state, err := session.PlotState(0)
	require.NoError(t, err)
	assert.Equal(t, domain.PlotGrowing, state)

	clock.Advance(30 * time.Minute)
	result, err := session.Harvest(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Yield)

	p := session.Progress()
	assert.Equal(t, 3, p.HarvestedCount("carrot"))
	assert.True(t, p.HasBadge(domain.BadgeFirstHarvest), "badges are evaluated after every intent")
}

func TestSession_CookAwardsBadgesAndUnlocks(t *testing.T) {
	session, _, _ := newTestSession(t)
	ctx := context.Background()

	p := session.Progress()
	p.Harvested["lettuce"] = 2
	p.Pantry["dressing"] = 1
	p.XP = 40

	result, err := session.Cook(ctx, "garden-salad")
	require.NoError(t, err)
	assert.True(t, result.LeveledUp)

	p = session.Progress()
	assert.True(t, p.HasBadge(domain.BadgeFirstDish))
	assert.Equal(t, 2, p.Level)
	assert.True(t, p.IsRecipeUnlocked("carrot-feast"), "reaching level 2 unlocks its gated recipe")
}

func TestSession_LevelCatchUpFromGardenXP(t *testing.T) {
	session, clock, _ := newTestSession(t)
	ctx := context.Background()

	// Four carrot harvests at 15 XP each cross the 50 XP threshold.
	for i := 0; i < 4; i++ {
		require.NoError(t, session.Plant(ctx, 0, "carrot"))
		clock.Advance(30 * time.Minute)
		_, err := session.Harvest(ctx, 0)
		require.NoError(t, err)

		// Restock the seed pouch.
		if i < 3 {
			_, err = session.SellVegetable(ctx, "carrot", 3)
			require.NoError(t, err)
			_, err = session.BuySeeds(ctx, "carrot", 1)
			require.NoError(t, err)
		}
	}

	p := session.Progress()
	assert.Equal(t, 60, p.XP)
	assert.Equal(t, 2, p.Level, "garden XP levels the player up without cooking")
}

func TestSession_EconomyRoundTrip(t *testing.T) {
	session, _, _ := newTestSession(t)
	ctx := context.Background()

	cost, err := session.BuyItem(ctx, "dressing", 2)
	require.NoError(t, err)
	assert.Equal(t, 16, cost)
	assert.Equal(t, 2, session.PantryQuantity("dressing"))

	refund, err := session.SellItem(ctx, "dressing", 1)
	require.NoError(t, err)
	assert.Equal(t, 8, refund)
	assert.Equal(t, 1, session.PantryQuantity("dressing"))

	p := session.Progress()
	assert.Equal(t, progress.DefaultCoins-8, p.Coins)
}

func TestSession_SaveAndReload(t *testing.T) {
	session, clock, backend := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, session.Plant(ctx, 0, "carrot"))
	clock.Advance(30 * time.Minute)
	_, err := session.Harvest(ctx, 0)
	require.NoError(t, err)
	require.NoError(t, session.Save(ctx))

	// A second session over the same backend sees the saved state.
	cat, err := catalog.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)
	store := progress.NewStore(backend, cat, 4)
	reloaded := NewSession(ctx, cat, store, event.NewMemoryBus())

	p := reloaded.Progress()
	assert.Equal(t, 3, p.HarvestedCount("carrot"))
	assert.Equal(t, 15, p.XP)
	assert.True(t, p.HasBadge(domain.BadgeFirstHarvest))
}

func TestSession_Reset(t *testing.T) {
	session, _, _ := newTestSession(t)
	ctx := context.Background()

	_, err := session.BuyItem(ctx, "dressing", 2)
	require.NoError(t, err)
	require.NoError(t, session.Reset(ctx))

	p := session.Progress()
	assert.Equal(t, progress.DefaultCoins, p.Coins)
	assert.Equal(t, 0, session.PantryQuantity("dressing"))
}

func TestSession_CookableRecipes(t *testing.T) {
	session, _, _ := newTestSession(t)

	assert.Empty(t, session.CookableRecipes())

	p := session.Progress()
	p.Harvested["lettuce"] = 2
	p.Pantry["dressing"] = 1

	cookable := session.CookableRecipes()
	require.Len(t, cookable, 1)
	assert.Equal(t, domain.RecipeID("garden-salad"), cookable[0].ID)
}

func TestSession_GrowthProgressQuery(t *testing.T) {
	session, clock, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, session.Plant(ctx, 0, "carrot"))
	clock.Advance(15 * time.Minute)

	pct, err := session.GrowthProgress(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pct, 1e-9)

	_, err = session.GrowthProgress(42)
	assert.ErrorIs(t, err, domain.ErrPlotNotFound)
}
