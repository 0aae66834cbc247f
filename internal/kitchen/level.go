package kitchen

import "math"

// The level curve is monotonic in XP: more XP never lowers the level.
// Players start at level 1 with zero XP.

// CalculateLevel determines the player level from total XP using the
// formula: XP to climb from level N = BaseXP * (N ^ LevelExponent).
func CalculateLevel(totalXP int) int {
	level, _ := calculateLevelAndNextXP(totalXP)
	return level
}

// XPForLevel returns the cumulative XP required to reach a level from a
// fresh start.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}

	cumulative := 0
	for i := 1; i < level; i++ {
		cumulative += int(BaseXP * math.Pow(float64(i), LevelExponent))
	}
	return cumulative
}

// XPProgress returns the current level and the XP still needed for the
// next one.
func XPProgress(currentXP int) (currentLevel, xpToNext int) {
	level, xpForNext := calculateLevelAndNextXP(currentXP)
	return level, xpForNext - currentXP
}

// calculateLevelAndNextXP computes the level and the cumulative XP
// required for the NEXT level, avoiding double iteration in XPProgress.
func calculateLevelAndNextXP(totalXP int) (int, int) {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	cumulative := 0

	for level < MaxLevel {
		xpForNextLevel := int(BaseXP * math.Pow(float64(level), LevelExponent))
		if cumulative+xpForNextLevel > totalXP {
			return level, cumulative + xpForNextLevel
		}
		cumulative += xpForNextLevel
		level++
	}

	// Max level reached; report the theoretical next requirement.
	xpForNextLevel := int(BaseXP * math.Pow(float64(level), LevelExponent))
	return level, cumulative + xpForNextLevel
}
