package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/event"
	"github.com/pipstudio/kitchengarden/internal/logger"
)

// CookResult describes the outcome of one successful cook.
type CookResult struct {
	Recipe      domain.RecipeID    `json:"recipe"`
	Stars       int                `json:"stars"`
	NewBest     bool               `json:"new_best"`
	XPAwarded   int                `json:"xp_awarded"`
	CoinsEarned int                `json:"coins_earned"`
	LeveledUp   bool               `json:"leveled_up"`
	OldLevel    int                `json:"old_level"`
	NewLevel    int                `json:"new_level"`
	Health      domain.HealthStats `json:"health"`
}

// Service defines the interface for recipe resolution: which recipes can
// be cooked right now, cooking them, and managing unlocks.
type Service interface {
	CookableRecipes(p *domain.PlayerProgress) []domain.Recipe
	Cook(ctx context.Context, p *domain.PlayerProgress, recipeID domain.RecipeID) (*CookResult, error)
	Unlock(ctx context.Context, p *domain.PlayerProgress, recipeID domain.RecipeID) error
	SyncUnlocks(ctx context.Context, p *domain.PlayerProgress) []domain.RecipeID
}

type service struct {
	catalog    *catalog.Catalog
	bus        event.Bus
	starPolicy StarPolicy
	now        func() time.Time
}

// Option configures the kitchen service.
type Option func(*service)

// WithStarPolicy overrides the default star rating policy.
func WithStarPolicy(policy StarPolicy) Option {
	return func(s *service) {
		s.starPolicy = policy
	}
}

// WithClock injects a deterministic clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a new kitchen service.
func NewService(cat *catalog.Catalog, bus event.Bus, opts ...Option) Service {
	s := &service{
		catalog:    cat,
		bus:        bus,
		starPolicy: DefaultStarPolicy,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// missingIngredient returns a human-readable description of the first
// unmet requirement, or "" when the recipe is fully satisfiable.
func missingIngredient(p *domain.PlayerProgress, recipe domain.Recipe) string {
	for vegID, need := range recipe.Vegetables {
		if have := p.HarvestedCount(vegID); have < need {
			return fmt.Sprintf("need %d %s, have %d", need, vegID, have)
		}
	}
	for itemID, need := range recipe.Pantry {
		if have := p.PantryQuantity(itemID); have < need {
			return fmt.Sprintf("need %d %s, have %d", need, itemID, have)
		}
	}
	return ""
}

// CookableRecipes returns every unlocked recipe whose vegetable and
// pantry requirements are simultaneously satisfied by the current
// inventories. The result is recomputed on every call: inventories may
// have changed since the last one, so nothing is cached.
func (s *service) CookableRecipes(p *domain.PlayerProgress) []domain.Recipe {
	var out []domain.Recipe
	for _, recipe := range s.catalog.Recipes() {
		if !p.IsRecipeUnlocked(recipe.ID) {
			continue
		}
		if missingIngredient(p, recipe) == "" {
			out = append(out, recipe)
		}
	}
	return out
}

// Cook resolves one cooking attempt. The full requirement set is
// re-validated before any mutation, so a failed cook consumes nothing:
// cooking is all-or-nothing.
func (s *service) Cook(ctx context.Context, p *domain.PlayerProgress, recipeID domain.RecipeID) (*CookResult, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	recipe, err := s.catalog.Recipe(recipeID)
	if err != nil {
		return nil, err
	}
	if !p.IsRecipeUnlocked(recipeID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeLocked, recipeID)
	}
	if missing := missingIngredient(p, recipe); missing != "" {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrRecipeNotCookable, recipeID, missing)
	}

	// Requirements verified in full; consume exactly what the recipe asks.
	for vegID, need := range recipe.Vegetables {
		p.Harvested[vegID] -= need
		if p.Harvested[vegID] == 0 {
			delete(p.Harvested, vegID)
		}
	}
	for itemID, need := range recipe.Pantry {
		p.Pantry[itemID] -= need
		if p.Pantry[itemID] == 0 {
			delete(p.Pantry, itemID)
		}
	}

	oldLevel := p.Level
	p.Coins += recipe.CoinReward
	p.XP += recipe.XPReward
	p.Level = CalculateLevel(p.XP)
	p.Health = p.Health.Apply(recipe.Health)
	p.TotalDishes++

	stars := clampStars(s.starPolicy(CookContext{Recipe: recipe, PlayerLevel: oldLevel}))
	newBest := stars > p.StarRating(recipeID)
	if newBest {
		p.StarRatings[recipeID] = stars
	}

	result := &CookResult{
		Recipe:      recipeID,
		Stars:       stars,
		NewBest:     newBest,
		XPAwarded:   recipe.XPReward,
		CoinsEarned: recipe.CoinReward,
		LeveledUp:   p.Level > oldLevel,
		OldLevel:    oldLevel,
		NewLevel:    p.Level,
		Health:      p.Health,
	}

	log.Info("Recipe cooked", "recipe", recipeID, "stars", stars, "xp", recipe.XPReward, "coins", recipe.CoinReward, "level", p.Level)
	s.publish(ctx, event.NewRecipeCookedEvent(recipeID, stars, recipe.XPReward, recipe.CoinReward, now))
	if result.LeveledUp {
		log.Info("Player leveled up", "old_level", oldLevel, "new_level", p.Level)
		s.publish(ctx, event.NewPlayerLevelUpEvent(oldLevel, p.Level, p.XP, now))
	}
	return result, nil
}

// Unlock makes a recipe available for cooking. Unlocking an already
// unlocked recipe is a silent no-op.
func (s *service) Unlock(ctx context.Context, p *domain.PlayerProgress, recipeID domain.RecipeID) error {
	if _, err := s.catalog.Recipe(recipeID); err != nil {
		return err
	}
	if p.IsRecipeUnlocked(recipeID) {
		return nil
	}

	p.UnlockedRecipes[recipeID] = true
	logger.FromContext(ctx).Info("Recipe unlocked", "recipe", recipeID, "reason", UnlockReasonManual)
	s.publish(ctx, event.NewRecipeUnlockedEvent(recipeID, UnlockReasonManual, s.now()))
	return nil
}

// SyncUnlocks grants every recipe whose level or badge threshold the
// player has now met, returning the newly unlocked ids. Starter recipes
// are re-granted as well, which heals snapshots from older versions.
func (s *service) SyncUnlocks(ctx context.Context, p *domain.PlayerProgress) []domain.RecipeID {
	log := logger.FromContext(ctx)
	now := s.now()

	var unlocked []domain.RecipeID
	for _, recipe := range s.catalog.Recipes() {
		if p.IsRecipeUnlocked(recipe.ID) {
			continue
		}

		reason := ""
		switch {
		case recipe.Starter:
			reason = UnlockReasonStarter
		case recipe.UnlockBadge != "":
			if p.HasBadge(recipe.UnlockBadge) {
				reason = UnlockReasonBadge
			}
		case recipe.UnlockLevel > 0 && p.Level >= recipe.UnlockLevel:
			reason = UnlockReasonLevel
		}
		if reason == "" {
			continue
		}

		p.UnlockedRecipes[recipe.ID] = true
		unlocked = append(unlocked, recipe.ID)
		log.Info("Recipe unlocked", "recipe", recipe.ID, "reason", reason)
		s.publish(ctx, event.NewRecipeUnlockedEvent(recipe.ID, reason, now))
	}
	return unlocked
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Event delivery failed", "type", e.Type, "error", err)
	}
}
