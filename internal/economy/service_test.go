package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
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
pantry_items:
  - id: milk
    display_name: Milk
    category: dairy
    shop_price: 15
  - id: flour
    display_name: Flour
    category: grains
    shop_price: 6
recipes:
  - id: carrot-soup
    display_name: Carrot Soup
    vegetables:
      carrot: 2
    pantry:
      milk: 1
    difficulty: 1
    xp_reward: 20
    coin_reward: 8
    starter: true
`

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)
	return cat
}

func newTestProgress(coins int) *domain.PlayerProgress {
	return &domain.PlayerProgress{
		Coins:           coins,
		Level:           1,
		Seeds:           make(map[domain.VegetableID]int),
		Harvested:       make(map[domain.VegetableID]int),
		Plots:           domain.NewPlots(4),
		Pantry:          make(map[domain.PantryItemID]int),
		UnlockedRecipes: make(map[domain.RecipeID]bool),
		StarRatings:     make(map[domain.RecipeID]int),
		Badges:          make(map[domain.BadgeID]bool),
	}
}

func TestBuyItem(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)

	cost, err := svc.BuyItem(context.Background(), p, "milk", 2)
	require.NoError(t, err)

	assert.Equal(t, 30, cost)
	assert.Equal(t, 70, p.Coins)
	assert.Equal(t, 2, p.PantryQuantity("milk"))
}

func TestBuyItem_InsufficientFunds(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(10)

	_, err := svc.BuyItem(context.Background(), p, "milk", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// A rejected purchase changes nothing.
	assert.Equal(t, 10, p.Coins)
	assert.Equal(t, 0, p.PantryQuantity("milk"))
}

func TestBuyItem_InvalidQuantity(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)

	_, err := svc.BuyItem(context.Background(), p, "milk", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = svc.BuyItem(context.Background(), p, "milk", -3)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestBuyItem_UnknownItem(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)

	_, err := svc.BuyItem(context.Background(), p, "caviar", 1)
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestSellItem_FullRefund(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)
	p.Pantry["milk"] = 3

	refund, err := svc.SellItem(context.Background(), p, "milk", 2)
	require.NoError(t, err)

	assert.Equal(t, 30, refund, "selling back refunds the full shop price")
	assert.Equal(t, 130, p.Coins)
	assert.Equal(t, 1, p.PantryQuantity("milk"))
}

func TestSellItem_RemovesZeroEntries(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)
	p.Pantry["flour"] = 1

	_, err := svc.SellItem(context.Background(), p, "flour", 1)
	require.NoError(t, err)

	_, present := p.Pantry["flour"]
	assert.False(t, present)
}

func TestSellItem_InsufficientStock(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)
	p.Pantry["milk"] = 1

	_, err := svc.SellItem(context.Background(), p, "milk", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, p.PantryQuantity("milk"))
	assert.Equal(t, 100, p.Coins)
}

func TestBuySeeds(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)

	cost, err := svc.BuySeeds(context.Background(), p, "carrot", 4)
	require.NoError(t, err)

	assert.Equal(t, 20, cost)
	assert.Equal(t, 80, p.Coins)
	assert.Equal(t, 4, p.SeedCount("carrot"))
}

func TestBuySeeds_InsufficientFunds(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(4)

	_, err := svc.BuySeeds(context.Background(), p, "carrot", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 4, p.Coins)
	assert.Equal(t, 0, p.SeedCount("carrot"))
}

func TestSellVegetable(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)
	p.Harvested["carrot"] = 5

	value, err := svc.SellVegetable(context.Background(), p, "carrot", 3)
	require.NoError(t, err)

	assert.Equal(t, 12, value)
	assert.Equal(t, 112, p.Coins)
	assert.Equal(t, 2, p.HarvestedCount("carrot"))
}

func TestSellVegetable_InsufficientStock(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)

	_, err := svc.SellVegetable(context.Background(), p, "carrot", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 100, p.Coins)
}

func TestPantryQuantity_AbsentIsZero(t *testing.T) {
	svc := NewService(newTestCatalog(t), nil)
	p := newTestProgress(100)

	assert.Equal(t, 0, svc.PantryQuantity(p, "milk"))
}
