package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pipstudio/kitchengarden/internal/domain"
)

// EventSchemaVersion is the current version of the event payload schema.
const EventSchemaVersion = "1.0"

// Event is a change notification fired after a successful engine
// mutation. The view layer subscribes to refresh itself; handlers are
// never given write access to player state.
type Event struct {
	Version string           `json:"version"`
	Type    domain.EventType `json:"type"`
	Payload interface{}      `json:"payload"`
}

// Handler is a function that handles an event.
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for the change-notification bus.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType domain.EventType, handler Handler)
}

// MemoryBus is an in-memory synchronous implementation of Bus. Handlers
// run in subscription order on the publishing goroutine; the engine's
// single-threaded mutation model means they observe a fully applied
// mutation.
type MemoryBus struct {
	handlers map[domain.EventType][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[domain.EventType][]Handler),
	}
}

// Publish delivers an event to all subscribers. Handler errors are
// collected rather than short-circuiting so every subscriber sees the
// event.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe registers a handler for an event type.
func (b *MemoryBus) Subscribe(eventType domain.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Type-safe event constructors

// NewPlotPlantedEvent creates a plot.planted event.
func NewPlotPlantedEvent(plotID int, vegetable domain.VegetableID, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventPlotPlanted,
		Payload: domain.PlotPlantedPayload{
			PlotID:    plotID,
			Vegetable: vegetable,
			Timestamp: at.Unix(),
		},
	}
}

// NewPlotWateredEvent creates a plot.watered event.
func NewPlotWateredEvent(plotID int, vegetable domain.VegetableID, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventPlotWatered,
		Payload: domain.PlotWateredPayload{
			PlotID:    plotID,
			Vegetable: vegetable,
			Timestamp: at.Unix(),
		},
	}
}

// NewPlotHarvestedEvent creates a plot.harvested event.
func NewPlotHarvestedEvent(plotID int, vegetable domain.VegetableID, yield, xp int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventPlotHarvested,
		Payload: domain.PlotHarvestedPayload{
			PlotID:    plotID,
			Vegetable: vegetable,
			Yield:     yield,
			XPAwarded: xp,
			Timestamp: at.Unix(),
		},
	}
}

// NewItemBoughtEvent creates an item.bought event.
func NewItemBoughtEvent(item domain.PantryItemID, quantity, totalCost int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventItemBought,
		Payload: domain.ItemBoughtPayload{
			Item:      item,
			Quantity:  quantity,
			TotalCost: totalCost,
			Timestamp: at.Unix(),
		},
	}
}

// NewItemSoldEvent creates an item.sold event for a pantry refund.
func NewItemSoldEvent(item domain.PantryItemID, quantity, totalValue int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventItemSold,
		Payload: domain.ItemSoldPayload{
			Item:       item,
			Quantity:   quantity,
			TotalValue: totalValue,
			Timestamp:  at.Unix(),
		},
	}
}

// NewVegetableSoldEvent creates an item.sold event for harvested produce.
func NewVegetableSoldEvent(vegetable domain.VegetableID, quantity, totalValue int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventItemSold,
		Payload: domain.ItemSoldPayload{
			Vegetable:  vegetable,
			Quantity:   quantity,
			TotalValue: totalValue,
			Timestamp:  at.Unix(),
		},
	}
}

// NewRecipeCookedEvent creates a recipe.cooked event.
func NewRecipeCookedEvent(recipe domain.RecipeID, stars, xp, coins int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventRecipeCooked,
		Payload: domain.RecipeCookedPayload{
			Recipe:      recipe,
			Stars:       stars,
			XPAwarded:   xp,
			CoinsEarned: coins,
			Timestamp:   at.Unix(),
		},
	}
}

// NewRecipeUnlockedEvent creates a recipe.unlocked event.
func NewRecipeUnlockedEvent(recipe domain.RecipeID, reason string, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventRecipeUnlocked,
		Payload: domain.RecipeUnlockedPayload{
			Recipe:    recipe,
			Reason:    reason,
			Timestamp: at.Unix(),
		},
	}
}

// NewPlayerLevelUpEvent creates a player.levelup event.
func NewPlayerLevelUpEvent(oldLevel, newLevel, totalXP int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventPlayerLevelUp,
		Payload: domain.PlayerLevelUpPayload{
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			TotalXP:   totalXP,
			Timestamp: at.Unix(),
		},
	}
}

// NewBadgeEarnedEvent creates a badge.earned event.
func NewBadgeEarnedEvent(badge domain.BadgeID, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventBadgeEarned,
		Payload: domain.BadgeEarnedPayload{
			Badge:     badge,
			Timestamp: at.Unix(),
		},
	}
}
