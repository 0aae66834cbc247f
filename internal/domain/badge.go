package domain

// BadgeID identifies one earnable achievement badge.
type BadgeID string

const (
	BadgeFirstHarvest  BadgeID = "first_harvest"
	BadgeGreenThumb    BadgeID = "green_thumb"
	BadgeFirstDish     BadgeID = "first_dish"
	BadgeThreeStarChef BadgeID = "three_star_chef"
	BadgeMasterChef    BadgeID = "master_chef"
	BadgeWellFed       BadgeID = "well_fed"
)

// AllBadges lists every badge the engine can award, in display order.
var AllBadges = []BadgeID{
	BadgeFirstHarvest,
	BadgeGreenThumb,
	BadgeFirstDish,
	BadgeThreeStarChef,
	BadgeMasterChef,
	BadgeWellFed,
}
