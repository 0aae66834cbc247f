package kitchen

import "github.com/pipstudio/kitchengarden/internal/domain"

// CookContext is everything a star policy may inspect when scoring one
// successful cook. The policy must be a deterministic pure function of
// this context.
type CookContext struct {
	Recipe      domain.Recipe
	PlayerLevel int
}

// StarPolicy maps a cook context to a star count in
// [domain.StarRatingMin, domain.StarRatingMax]. It is a product-tunable
// policy, injected via WithStarPolicy.
type StarPolicy func(CookContext) int

// DefaultStarPolicy scores a cook by how far the player has outgrown the
// recipe's difficulty: well past it earns three stars, at it two,
// anything cooked successfully at least one.
func DefaultStarPolicy(cc CookContext) int {
	switch {
	case cc.PlayerLevel >= cc.Recipe.Difficulty+2:
		return 3
	case cc.PlayerLevel >= cc.Recipe.Difficulty:
		return 2
	default:
		return 1
	}
}

func clampStars(stars int) int {
	if stars < domain.StarRatingMin {
		return domain.StarRatingMin
	}
	if stars > domain.StarRatingMax {
		return domain.StarRatingMax
	}
	return stars
}
