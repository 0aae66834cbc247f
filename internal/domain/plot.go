package domain

import "time"

// PlotState is the lifecycle state of one garden plot.
type PlotState string

const (
	PlotEmpty      PlotState = "empty"
	PlotGrowing    PlotState = "growing"
	PlotReady      PlotState = "ready"
	PlotNeedsWater PlotState = "needs_water"
)

// Plot is one planting slot in the garden. Plots are created once at game
// start as a fixed-size ordered slice and only ever reset back to empty,
// never destroyed.
//
// Invariant: Vegetable is non-empty iff State != PlotEmpty, and PlantedAt
// is non-nil iff a vegetable is planted.
type Plot struct {
	ID    int       `json:"id"`
	State PlotState `json:"state"`

	Vegetable     VegetableID `json:"vegetable,omitempty"`
	PlantedAt     *time.Time  `json:"planted_at,omitempty"`
	LastWateredAt *time.Time  `json:"last_watered_at,omitempty"`

	// Paused is the total time growth has been suspended while the plot
	// sat in needs_water. Growth progress is computed from wall-clock
	// elapsed time minus Paused, so watering resumes exactly where the
	// plant left off.
	Paused time.Duration `json:"paused,omitempty"`
}

// IsEmpty reports whether nothing is planted in the plot.
func (p *Plot) IsEmpty() bool {
	return p.State == PlotEmpty
}

// Clear resets the plot to its empty state, dropping any planted
// vegetable and timing bookkeeping.
func (p *Plot) Clear() {
	p.State = PlotEmpty
	p.Vegetable = ""
	p.PlantedAt = nil
	p.LastWateredAt = nil
	p.Paused = 0
}

// LastCaredAt is the most recent moment the plant received attention:
// watering if it ever happened, otherwise planting. The neglect timer
// runs from this point.
func (p *Plot) LastCaredAt() time.Time {
	if p.LastWateredAt != nil {
		return *p.LastWateredAt
	}
	if p.PlantedAt != nil {
		return *p.PlantedAt
	}
	return time.Time{}
}

// NewPlots builds the fixed-size garden created for a new player.
func NewPlots(count int) []Plot {
	plots := make([]Plot, count)
	for i := range plots {
		plots[i] = Plot{ID: i, State: PlotEmpty}
	}
	return plots
}
