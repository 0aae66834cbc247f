package kitchen

const (
	// BaseXP is the base XP value used in level calculations
	BaseXP = 50

	// LevelExponent is the exponent used in the XP formula:
	// XP to climb from level N to N+1 = BaseXP * (N ^ LevelExponent)
	LevelExponent = 1.5

	// MaxLevel is the maximum player level the curve iterates to
	MaxLevel = 50
)

// Unlock reasons recorded on recipe.unlocked events.
const (
	UnlockReasonManual  = "manual"
	UnlockReasonLevel   = "level"
	UnlockReasonBadge   = "badge"
	UnlockReasonStarter = "starter"
)
