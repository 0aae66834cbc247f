package garden

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/event"
)

const testCatalogYAML = `
version: 1
vegetables:
  - id: carrot
    display_name: Carrot
    growth_minutes: 30
    water_interval_minutes: 0
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
    starter: true
`

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)
	return cat
}

func newTestProgress() *domain.PlayerProgress {
	return &domain.PlayerProgress{
		Coins:           100,
		Level:           1,
		Seeds:           map[domain.VegetableID]int{"carrot": 3, "lettuce": 3},
		Harvested:       make(map[domain.VegetableID]int),
		Plots:           domain.NewPlots(4),
		Pantry:          make(map[domain.PantryItemID]int),
		UnlockedRecipes: map[domain.RecipeID]bool{"garden-salad": true},
		StarRatings:     make(map[domain.RecipeID]int),
		Badges:          make(map[domain.BadgeID]bool),
	}
}

// testClock is a settable clock shared with the service under test.
type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time          { return c.current }
func (c *testClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func TestPlant(t *testing.T) {
	cat := newTestCatalog(t)
	clock := newTestClock()
	svc := NewServiceWithClock(cat, nil, clock.Now)
	p := newTestProgress()
	ctx := context.Background()

	err := svc.Plant(ctx, p, 0, "carrot")
	require.NoError(t, err)

	assert.Equal(t, 2, p.SeedCount("carrot"))
	assert.Equal(t, domain.PlotGrowing, p.Plots[0].State)
	assert.Equal(t, domain.VegetableID("carrot"), p.Plots[0].Vegetable)
	require.NotNil(t, p.Plots[0].PlantedAt)
	assert.Equal(t, clock.Now(), *p.Plots[0].PlantedAt)
}

func TestPlant_OccupiedPlot(t *testing.T) {
	cat := newTestCatalog(t)
	svc := NewServiceWithClock(cat, nil, newTestClock().Now)
	p := newTestProgress()
	ctx := context.Background()

	require.NoError(t, svc.Plant(ctx, p, 0, "carrot"))

	err := svc.Plant(ctx, p, 0, "lettuce")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, 3, p.SeedCount("lettuce"), "failed plant must not consume a seed")
}

func TestPlant_NoSeeds(t *testing.T) {
	cat := newTestCatalog(t)
	svc := NewServiceWithClock(cat, nil, newTestClock().Now)
	p := newTestProgress()
	p.Seeds["carrot"] = 0

	err := svc.Plant(context.Background(), p, 0, "carrot")
	assert.ErrorIs(t, err, domain.ErrInsufficientSeeds)
	assert.True(t, p.Plots[0].IsEmpty())
}

func TestPlant_UnknownVegetable(t *testing.T) {
	cat := newTestCatalog(t)
	svc := NewServiceWithClock(cat, nil, newTestClock().Now)
	p := newTestProgress()

	err := svc.Plant(context.Background(), p, 0, "durian")
	assert.ErrorIs(t, err, domain.ErrVegetableNotFound)
}

func TestPlant_PlotOutOfRange(t *testing.T) {
	cat := newTestCatalog(t)
	svc := NewServiceWithClock(cat, nil, newTestClock().Now)
	p := newTestProgress()

	assert.ErrorIs(t, svc.Plant(context.Background(), p, 99, "carrot"), domain.ErrPlotNotFound)
	assert.ErrorIs(t, svc.Plant(context.Background(), p, -1, "carrot"), domain.ErrPlotNotFound)
}

func TestWater_OnlyHelpsThirstyPlot(t *testing.T) {
	cat := newTestCatalog(t)
	clock := newTestClock()
	svc := NewServiceWithClock(cat, nil, clock.Now)
	p := newTestProgress()
	ctx := context.Background()

	require.NoError(t, svc.Plant(ctx, p, 0, "lettuce"))

	// Still growing: watering is rejected.
	clock.Advance(10 * time.Minute)
	assert.ErrorIs(t, svc.Water(ctx, p, 0), domain.ErrInvalidState)

	// Thirsty at the 15m deadline; 5 minutes later the player waters.
	clock.Advance(10 * time.Minute)
	state, err := svc.PlotState(p, 0)
	require.NoError(t, err)
	require.Equal(t, domain.PlotNeedsWater, state)

	require.NoError(t, svc.Water(ctx, p, 0))
	assert.Equal(t, domain.PlotGrowing, p.Plots[0].State)
	assert.Equal(t, 5*time.Minute, p.Plots[0].Paused)
	require.NotNil(t, p.Plots[0].LastWateredAt)
}

func TestWater_EmptyPlot(t *testing.T) {
	cat := newTestCatalog(t)
	svc := NewServiceWithClock(cat, nil, newTestClock().Now)
	p := newTestProgress()

	assert.ErrorIs(t, svc.Water(context.Background(), p, 0), domain.ErrInvalidState)
}

func TestHarvest(t *testing.T) {
	cat := newTestCatalog(t)
	clock := newTestClock()
	svc := NewServiceWithClock(cat, nil, clock.Now)
	p := newTestProgress()
	ctx := context.Background()

	require.NoError(t, svc.Plant(ctx, p, 0, "carrot"))

	// Halfway there.
	clock.Advance(15 * time.Minute)
	pct, err := svc.GrowthProgress(p, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pct, 1e-9)
	_, err = svc.Harvest(ctx, p, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	// Fully grown.
	clock.Advance(15 * time.Minute)
	result, err := svc.Harvest(ctx, p, 0)
	require.NoError(t, err)

	assert.Equal(t, domain.VegetableID("carrot"), result.Vegetable)
	assert.Equal(t, 3, result.Yield)
	assert.Equal(t, 15, result.XPAwarded)
	assert.Equal(t, 3, p.HarvestedCount("carrot"))
	assert.Equal(t, 15, p.XP)
	assert.Equal(t, 1, p.TotalHarvests)
	assert.True(t, p.Plots[0].IsEmpty(), "harvest resets the plot")

	// The plot is empty again; a second harvest is rejected.
	_, err = svc.Harvest(ctx, p, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestHarvest_AfterWateringPause(t *testing.T) {
	cat := newTestCatalog(t)
	clock := newTestClock()
	svc := NewServiceWithClock(cat, nil, clock.Now)
	p := newTestProgress()
	ctx := context.Background()

	require.NoError(t, svc.Plant(ctx, p, 0, "lettuce"))

	// Thirsts at 15m; watered at 25m, banking 10m of pause.
	clock.Advance(25 * time.Minute)
	require.NoError(t, svc.Water(ctx, p, 0))

	// 15m of growth done; 5 more real minutes finishes the 20m cycle.
	clock.Advance(4 * time.Minute)
	_, err := svc.Harvest(ctx, p, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	clock.Advance(1 * time.Minute)
	result, err := svc.Harvest(ctx, p, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Yield)
}

func TestRefresh_NormalizesAllPlots(t *testing.T) {
	cat := newTestCatalog(t)
	clock := newTestClock()
	svc := NewServiceWithClock(cat, nil, clock.Now)
	p := newTestProgress()
	ctx := context.Background()

	require.NoError(t, svc.Plant(ctx, p, 0, "carrot"))
	require.NoError(t, svc.Plant(ctx, p, 1, "lettuce"))

	clock.Advance(30 * time.Minute)
	svc.Refresh(p)

	assert.Equal(t, domain.PlotReady, p.Plots[0].State)
	assert.Equal(t, domain.PlotNeedsWater, p.Plots[1].State)
	assert.Equal(t, domain.PlotEmpty, p.Plots[2].State)
}

func TestPlant_PublishesEvent(t *testing.T) {
	cat := newTestCatalog(t)
	bus := event.NewMemoryBus()
	clock := newTestClock()
	svc := NewServiceWithClock(cat, bus, clock.Now)
	p := newTestProgress()

	var received []event.Event
	bus.Subscribe(domain.EventPlotPlanted, func(ctx context.Context, e event.Event) error {
		received = append(received, e)
		return nil
	})

	require.NoError(t, svc.Plant(context.Background(), p, 0, "carrot"))
	require.Len(t, received, 1)
	assert.Equal(t, domain.EventPlotPlanted, received[0].Type)
	assert.Equal(t, event.EventSchemaVersion, received[0].Version)
}
