// Package game wires the engines, the badge awarder, the bus and the
// progression store into one session facade. The session is the single
// logical owner of PlayerProgress: every mutation funnels through it, so
// engine operations stay synchronous and a save never observes a
// half-applied intent.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/pipstudio/kitchengarden/internal/badge"
	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/economy"
	"github.com/pipstudio/kitchengarden/internal/event"
	"github.com/pipstudio/kitchengarden/internal/garden"
	"github.com/pipstudio/kitchengarden/internal/kitchen"
	"github.com/pipstudio/kitchengarden/internal/logger"
	"github.com/pipstudio/kitchengarden/internal/progress"
)

// Session owns one player's running game.
type Session struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	progress *domain.PlayerProgress

	garden  garden.Service
	economy economy.Service
	kitchen kitchen.Service
	badges  *badge.Awarder

	store *progress.Store
	bus   event.Bus
	now   func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithGardenService overrides the garden engine, used by tests to inject
// a deterministic clock.
func WithGardenService(svc garden.Service) Option {
	return func(s *Session) { s.garden = svc }
}

// WithKitchenService overrides the kitchen engine.
func WithKitchenService(svc kitchen.Service) Option {
	return func(s *Session) { s.kitchen = svc }
}

// WithEconomyService overrides the economy engine.
func WithEconomyService(svc economy.Service) Option {
	return func(s *Session) { s.economy = svc }
}

// WithClock injects a deterministic clock for the session's own
// bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession loads the player from the store and wires the engines.
func NewSession(ctx context.Context, cat *catalog.Catalog, store *progress.Store, bus event.Bus, opts ...Option) *Session {
	s := &Session{
		catalog: cat,
		garden:  garden.NewService(cat, bus),
		economy: economy.NewService(cat, bus),
		kitchen: kitchen.NewService(cat, bus),
		badges:  badge.NewAwarder(cat, bus),
		store:   store,
		bus:     bus,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.progress = store.Load(ctx)

	// Catch up unlocks and badges the snapshot predates.
	s.kitchen.SyncUnlocks(ctx, s.progress)
	s.badges.Evaluate(ctx, s.progress)
	return s
}

// afterMutation runs the cross-engine consequences of a successful
// intent: level catch-up, badge evaluation and threshold unlocks.
func (s *Session) afterMutation(ctx context.Context) {
	oldLevel := s.progress.Level
	if lvl := kitchen.CalculateLevel(s.progress.XP); lvl > oldLevel {
		s.progress.Level = lvl
		logger.FromContext(ctx).Info("Player leveled up", "old_level", oldLevel, "new_level", lvl)
		if s.bus != nil {
			_ = s.bus.Publish(ctx, event.NewPlayerLevelUpEvent(oldLevel, lvl, s.progress.XP, s.now()))
		}
	}

	s.badges.Evaluate(ctx, s.progress)
	s.kitchen.SyncUnlocks(ctx, s.progress)
}

// Plant sows a seed into an empty plot.
func (s *Session) Plant(ctx context.Context, plotID int, veg domain.VegetableID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.garden.Plant(ctx, s.progress, plotID, veg); err != nil {
		return err
	}
	s.afterMutation(ctx)
	return nil
}

// Water revives a thirsty plot.
func (s *Session) Water(ctx context.Context, plotID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.garden.Water(ctx, s.progress, plotID); err != nil {
		return err
	}
	s.afterMutation(ctx)
	return nil
}

// Harvest collects a ready plot into the harvested inventory.
func (s *Session) Harvest(ctx context.Context, plotID int) (*garden.HarvestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.garden.Harvest(ctx, s.progress, plotID)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx)
	return result, nil
}

// BuyItem purchases pantry stock.
func (s *Session) BuyItem(ctx context.Context, item domain.PantryItemID, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cost, err := s.economy.BuyItem(ctx, s.progress, item, quantity)
	if err != nil {
		return 0, err
	}
	s.afterMutation(ctx)
	return cost, nil
}

// SellItem refunds pantry stock.
func (s *Session) SellItem(ctx context.Context, item domain.PantryItemID, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refund, err := s.economy.SellItem(ctx, s.progress, item, quantity)
	if err != nil {
		return 0, err
	}
	s.afterMutation(ctx)
	return refund, nil
}

// BuySeeds purchases seeds for planting.
func (s *Session) BuySeeds(ctx context.Context, veg domain.VegetableID, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cost, err := s.economy.BuySeeds(ctx, s.progress, veg, quantity)
	if err != nil {
		return 0, err
	}
	s.afterMutation(ctx)
	return cost, nil
}

// SellVegetable sells harvested produce.
func (s *Session) SellVegetable(ctx context.Context, veg domain.VegetableID, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.economy.SellVegetable(ctx, s.progress, veg, quantity)
	if err != nil {
		return 0, err
	}
	s.afterMutation(ctx)
	return value, nil
}

// Cook resolves a cooking attempt.
func (s *Session) Cook(ctx context.Context, recipeID domain.RecipeID) (*kitchen.CookResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.kitchen.Cook(ctx, s.progress, recipeID)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx)
	return result, nil
}

// Unlock manually unlocks a recipe. Already-unlocked recipes are a no-op.
func (s *Session) Unlock(ctx context.Context, recipeID domain.RecipeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kitchen.Unlock(ctx, s.progress, recipeID); err != nil {
		return err
	}
	s.afterMutation(ctx)
	return nil
}

// PantryQuantity is a read-only stock query.
func (s *Session) PantryQuantity(item domain.PantryItemID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.economy.PantryQuantity(s.progress, item)
}

// CookableRecipes lists the recipes the player can cook right now.
func (s *Session) CookableRecipes() []domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kitchen.CookableRecipes(s.progress)
}

// GrowthProgress reports a plot's growth in [0,1].
func (s *Session) GrowthProgress(plotID int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.garden.GrowthProgress(s.progress, plotID)
}

// PlotState reports a plot's lifecycle state, normalized to now.
func (s *Session) PlotState(plotID int) (domain.PlotState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.garden.PlotState(s.progress, plotID)
}

// Progress exposes the player state for display. The view layer must
// treat it as read-only; all writes go through session intents.
func (s *Session) Progress() *domain.PlayerProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.garden.Refresh(s.progress)
	return s.progress
}

// Save persists the current snapshot. The session lock is held for the
// duration, so the store never serializes a half-applied mutation; a
// failed save leaves in-memory progress untouched and can be retried.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(ctx, s.progress)
}

// Reset discards the player and persists new-player defaults.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Reset(ctx)
	if err != nil {
		return err
	}
	s.progress = p
	return nil
}
