package domain

// Health stat bounds.
const (
	HealthStatMin = 0
	HealthStatMax = 100
)

// HealthStats holds the six Body Buddy meters, each bounded to [0,100].
type HealthStats struct {
	Energy   int `json:"energy" yaml:"energy"`
	Strength int `json:"strength" yaml:"strength"`
	Brains   int `json:"brains" yaml:"brains"`
	Bones    int `json:"bones" yaml:"bones"`
	Teeth    int `json:"teeth" yaml:"teeth"`
	Tummy    int `json:"tummy" yaml:"tummy"`
}

// HealthDeltas is a per-stat adjustment applied by a cooked recipe.
// Values may be negative (a treat can cost some teeth).
type HealthDeltas struct {
	Energy   int `json:"energy,omitempty" yaml:"energy"`
	Strength int `json:"strength,omitempty" yaml:"strength"`
	Brains   int `json:"brains,omitempty" yaml:"brains"`
	Bones    int `json:"bones,omitempty" yaml:"bones"`
	Teeth    int `json:"teeth,omitempty" yaml:"teeth"`
	Tummy    int `json:"tummy,omitempty" yaml:"tummy"`
}

// Apply returns a copy of h with d added and every stat re-clamped to
// [HealthStatMin, HealthStatMax].
func (h HealthStats) Apply(d HealthDeltas) HealthStats {
	return HealthStats{
		Energy:   ClampStat(h.Energy + d.Energy),
		Strength: ClampStat(h.Strength + d.Strength),
		Brains:   ClampStat(h.Brains + d.Brains),
		Bones:    ClampStat(h.Bones + d.Bones),
		Teeth:    ClampStat(h.Teeth + d.Teeth),
		Tummy:    ClampStat(h.Tummy + d.Tummy),
	}
}

// Clamped returns a copy of h with every stat forced into bounds.
// Used when loading snapshots written by older versions.
func (h HealthStats) Clamped() HealthStats {
	return h.Apply(HealthDeltas{})
}

// Minimum returns the lowest of the six meters.
func (h HealthStats) Minimum() int {
	min := h.Energy
	for _, v := range []int{h.Strength, h.Brains, h.Bones, h.Teeth, h.Tummy} {
		if v < min {
			min = v
		}
	}
	return min
}

// ClampStat bounds a single stat value to [HealthStatMin, HealthStatMax].
func ClampStat(v int) int {
	if v < HealthStatMin {
		return HealthStatMin
	}
	if v > HealthStatMax {
		return HealthStatMax
	}
	return v
}
