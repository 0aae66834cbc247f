package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/event"
	"github.com/pipstudio/kitchengarden/internal/logger"
)

// Service defines the interface for economy operations: the coin balance,
// the pantry stock ledger and the seed pouch. Monetary operations are
// atomic under the single-owner mutation model: validation happens in
// full before any field changes, so no partial debit is ever observable.
type Service interface {
	BuyItem(ctx context.Context, p *domain.PlayerProgress, item domain.PantryItemID, quantity int) (int, error)
	SellItem(ctx context.Context, p *domain.PlayerProgress, item domain.PantryItemID, quantity int) (int, error)
	BuySeeds(ctx context.Context, p *domain.PlayerProgress, veg domain.VegetableID, quantity int) (int, error)
	SellVegetable(ctx context.Context, p *domain.PlayerProgress, veg domain.VegetableID, quantity int) (int, error)
	PantryQuantity(p *domain.PlayerProgress, item domain.PantryItemID) int
}

type service struct {
	catalog *catalog.Catalog
	bus     event.Bus
	now     func() time.Time
}

// NewService creates a new economy service.
func NewService(cat *catalog.Catalog, bus event.Bus) Service {
	return &service{
		catalog: cat,
		bus:     bus,
		now:     time.Now,
	}
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	return nil
}

// BuyItem purchases quantity units of a pantry item. Returns the total
// cost debited.
func (s *service) BuyItem(ctx context.Context, p *domain.PlayerProgress, itemID domain.PantryItemID, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if err := validateQuantity(quantity); err != nil {
		return 0, err
	}
	item, err := s.catalog.PantryItem(itemID)
	if err != nil {
		return 0, err
	}

	cost := item.ShopPrice * quantity
	if p.Coins < cost {
		return 0, fmt.Errorf("%w: %s costs %d, you have %d", domain.ErrInsufficientFunds, itemID, cost, p.Coins)
	}

	p.Coins -= cost
	p.Pantry[itemID] += quantity

	log.Info("Pantry item bought", "item", itemID, "quantity", quantity, "cost", cost, "coins_left", p.Coins)
	s.publish(ctx, event.NewItemBoughtEvent(itemID, quantity, cost, s.now()))
	return cost, nil
}

// SellItem returns quantity units of a pantry item to the shop for a full
// refund at the shop price.
func (s *service) SellItem(ctx context.Context, p *domain.PlayerProgress, itemID domain.PantryItemID, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if err := validateQuantity(quantity); err != nil {
		return 0, err
	}
	item, err := s.catalog.PantryItem(itemID)
	if err != nil {
		return 0, err
	}

	if p.PantryQuantity(itemID) < quantity {
		return 0, fmt.Errorf("%w: have %d of %s, tried to sell %d", domain.ErrInsufficientStock, p.PantryQuantity(itemID), itemID, quantity)
	}

	refund := item.ShopPrice * quantity
	p.Pantry[itemID] -= quantity
	if p.Pantry[itemID] == 0 {
		delete(p.Pantry, itemID)
	}
	p.Coins += refund

	log.Info("Pantry item sold", "item", itemID, "quantity", quantity, "refund", refund)
	s.publish(ctx, event.NewItemSoldEvent(itemID, quantity, refund, s.now()))
	return refund, nil
}

// BuySeeds purchases seeds for a vegetable type. Returns the total cost.
func (s *service) BuySeeds(ctx context.Context, p *domain.PlayerProgress, vegID domain.VegetableID, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if err := validateQuantity(quantity); err != nil {
		return 0, err
	}
	veg, err := s.catalog.Vegetable(vegID)
	if err != nil {
		return 0, err
	}

	cost := veg.SeedPrice * quantity
	if p.Coins < cost {
		return 0, fmt.Errorf("%w: %d %s seeds cost %d, you have %d", domain.ErrInsufficientFunds, quantity, vegID, cost, p.Coins)
	}

	p.Coins -= cost
	p.Seeds[vegID] += quantity

	log.Info("Seeds bought", "vegetable", vegID, "quantity", quantity, "cost", cost)
	return cost, nil
}

// SellVegetable sells harvested produce at the vegetable's sell value.
func (s *service) SellVegetable(ctx context.Context, p *domain.PlayerProgress, vegID domain.VegetableID, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if err := validateQuantity(quantity); err != nil {
		return 0, err
	}
	veg, err := s.catalog.Vegetable(vegID)
	if err != nil {
		return 0, err
	}

	if p.HarvestedCount(vegID) < quantity {
		return 0, fmt.Errorf("%w: have %d harvested %s, tried to sell %d", domain.ErrInsufficientStock, p.HarvestedCount(vegID), vegID, quantity)
	}

	value := veg.SellValue * quantity
	p.Harvested[vegID] -= quantity
	if p.Harvested[vegID] == 0 {
		delete(p.Harvested, vegID)
	}
	p.Coins += value

	log.Info("Produce sold", "vegetable", vegID, "quantity", quantity, "value", value)
	s.publish(ctx, event.NewVegetableSoldEvent(vegID, quantity, value, s.now()))
	return value, nil
}

// PantryQuantity is a pure lookup; absent items report zero.
func (s *service) PantryQuantity(p *domain.PlayerProgress, item domain.PantryItemID) int {
	return p.PantryQuantity(item)
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Event delivery failed", "type", e.Type, "error", err)
	}
}
