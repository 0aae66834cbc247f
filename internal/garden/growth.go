package garden

import (
	"time"

	"github.com/pipstudio/kitchengarden/internal/domain"
)

// Growth is computed lazily from wall-clock time on every read instead of
// by a background timer. The arithmetic here is pure: calling it any
// number of times with the same inputs yields the same answer, so the
// engine never drifts and needs no scheduler.
//
// Timing model for a planted plot:
//
//	deadline = lastCaredAt + WaterInterval   (only when the type thirsts)
//
// Before the deadline the plant grows normally. If it ripens first it is
// ready and the deadline stops mattering. Otherwise growth pauses at the
// deadline; the paused span is banked into Plot.Paused when the player
// waters, and effective growing time is wall-clock elapsed minus every
// paused span.

// effectiveElapsed returns how long the plant has actually been growing
// at the given instant, excluding banked and in-progress thirst pauses.
func effectiveElapsed(p *domain.Plot, veg domain.VegetableType, now time.Time) time.Duration {
	if p.PlantedAt == nil {
		return 0
	}
	elapsed := now.Sub(*p.PlantedAt) - p.Paused

	if veg.NeedsWatering() {
		deadline := p.LastCaredAt().Add(veg.WaterInterval)
		if now.After(deadline) && !ripeBy(p, veg, deadline) {
			elapsed -= now.Sub(deadline)
		}
	}

	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// ripeBy reports whether the plant had fully grown at the given instant,
// counting only effective growing time up to it.
func ripeBy(p *domain.Plot, veg domain.VegetableType, at time.Time) bool {
	if p.PlantedAt == nil {
		return false
	}
	grown := at.Sub(*p.PlantedAt) - p.Paused
	return grown >= veg.GrowthDuration
}

// growthProgress returns the plant's progress in [0,1].
func growthProgress(p *domain.Plot, veg domain.VegetableType, now time.Time) float64 {
	if p.PlantedAt == nil || veg.GrowthDuration <= 0 {
		return 0
	}
	progress := float64(effectiveElapsed(p, veg, now)) / float64(veg.GrowthDuration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// stateAt derives the plot state at the given instant. A plot never skips
// ready: once ripe it stays ready until harvested, even if the water
// deadline has long passed.
func stateAt(p *domain.Plot, veg domain.VegetableType, now time.Time) domain.PlotState {
	if p.IsEmpty() || p.PlantedAt == nil {
		return domain.PlotEmpty
	}

	if veg.NeedsWatering() {
		deadline := p.LastCaredAt().Add(veg.WaterInterval)
		if !now.Before(deadline) && !ripeBy(p, veg, deadline) {
			return domain.PlotNeedsWater
		}
	}

	if effectiveElapsed(p, veg, now) >= veg.GrowthDuration {
		return domain.PlotReady
	}
	return domain.PlotGrowing
}
