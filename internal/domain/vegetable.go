package domain

import "time"

// VegetableID is the stable catalog identifier of a vegetable type.
type VegetableID string

// VegetableType is a catalog entry describing one growable vegetable.
// Catalog entries are immutable reference data; gameplay state lives in
// PlayerProgress.
type VegetableType struct {
	ID             VegetableID
	DisplayName    string
	Icon           string
	GrowthDuration time.Duration
	// WaterInterval is how long a growing plant survives without care
	// before it pauses and asks for water. Zero means the vegetable
	// never thirsts.
	WaterInterval time.Duration
	// Yield is how many units one harvest adds to the harvested inventory.
	Yield     int
	SeedPrice int
	SellValue int
	HarvestXP int
	// StarterSeeds is how many free seeds a brand-new player receives.
	StarterSeeds int
}

// NeedsWatering reports whether this vegetable type participates in the
// needs-water cycle at all.
func (v VegetableType) NeedsWatering() bool {
	return v.WaterInterval > 0
}
