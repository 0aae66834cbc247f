// Package badge awards achievement badges from the current player state.
// Rules are pure predicates; the session runs Evaluate after every
// successful mutation, so awarding is idempotent and order-independent.
package badge

import (
	"context"
	"time"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/event"
	"github.com/pipstudio/kitchengarden/internal/logger"
)

// GreenThumbHarvests is how many total harvests earn green_thumb.
const GreenThumbHarvests = 25

// WellFedThreshold is the minimum every health stat must reach for well_fed.
const WellFedThreshold = 80

// Awarder evaluates badge rules against player progress.
type Awarder struct {
	catalog *catalog.Catalog
	bus     event.Bus
	now     func() time.Time
}

// NewAwarder creates a badge awarder.
func NewAwarder(cat *catalog.Catalog, bus event.Bus) *Awarder {
	return &Awarder{
		catalog: cat,
		bus:     bus,
		now:     time.Now,
	}
}

// earned reports whether the rule for one badge is currently satisfied.
func (a *Awarder) earned(id domain.BadgeID, p *domain.PlayerProgress) bool {
	switch id {
	case domain.BadgeFirstHarvest:
		return p.TotalHarvests >= 1
	case domain.BadgeGreenThumb:
		return p.TotalHarvests >= GreenThumbHarvests
	case domain.BadgeFirstDish:
		return p.TotalDishes >= 1
	case domain.BadgeThreeStarChef:
		for _, stars := range p.StarRatings {
			if stars >= domain.StarRatingMax {
				return true
			}
		}
		return false
	case domain.BadgeMasterChef:
		for _, recipe := range a.catalog.Recipes() {
			if p.StarRating(recipe.ID) < domain.StarRatingMax {
				return false
			}
		}
		return true
	case domain.BadgeWellFed:
		return p.Health.Minimum() >= WellFedThreshold
	default:
		return false
	}
}

// Evaluate awards every badge whose rule is now satisfied and returns
// the newly earned ids. Badges are permanent: once recorded they are
// never re-checked or revoked.
func (a *Awarder) Evaluate(ctx context.Context, p *domain.PlayerProgress) []domain.BadgeID {
	log := logger.FromContext(ctx)
	now := a.now()

	var awarded []domain.BadgeID
	for _, id := range domain.AllBadges {
		if p.HasBadge(id) || !a.earned(id, p) {
			continue
		}
		p.Badges[id] = true
		awarded = append(awarded, id)
		log.Info("Badge earned", "badge", id)
		if a.bus != nil {
			if err := a.bus.Publish(ctx, event.NewBadgeEarnedEvent(id, now)); err != nil {
				log.Warn("Event delivery failed", "type", domain.EventBadgeEarned, "error", err)
			}
		}
	}
	return awarded
}
