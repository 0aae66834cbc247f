// Package naming resolves player-typed names ("tomatoe", "Garden Salad")
// to catalog ids, tolerating small typos.
package naming

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
)

// Finder matches free-form input against the catalog's ids and display
// names.
type Finder struct {
	catalog *catalog.Catalog
}

// NewFinder creates a finder over the given catalog.
func NewFinder(cat *catalog.Catalog) *Finder {
	return &Finder{catalog: cat}
}

// normalize folds case and separators so "Garden Salad" matches
// "garden-salad".
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// maxDistance scales the typo budget with the candidate length: short
// words get one edit, longer names up to three.
func maxDistance(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// closest returns the candidate id nearest to input, or "" when nothing
// is within the typo budget. Candidates map alias -> id; an exact alias
// match always wins.
func closest(input string, candidates map[string]string) string {
	input = normalize(input)
	if input == "" {
		return ""
	}
	if id, ok := candidates[input]; ok {
		return id
	}

	bestID := ""
	bestDist := -1
	for alias, id := range candidates {
		dist := levenshtein.ComputeDistance(input, alias)
		if dist > maxDistance(len(alias)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			bestID, bestDist = id, dist
		}
	}
	return bestID
}

// Vegetable resolves input to a vegetable id.
func (f *Finder) Vegetable(input string) (domain.VegetableID, bool) {
	candidates := make(map[string]string)
	for _, v := range f.catalog.Vegetables() {
		candidates[normalize(string(v.ID))] = string(v.ID)
		candidates[normalize(v.DisplayName)] = string(v.ID)
	}
	id := closest(input, candidates)
	return domain.VegetableID(id), id != ""
}

// PantryItem resolves input to a pantry item id.
func (f *Finder) PantryItem(input string) (domain.PantryItemID, bool) {
	candidates := make(map[string]string)
	for _, item := range f.catalog.PantryItems() {
		candidates[normalize(string(item.ID))] = string(item.ID)
		candidates[normalize(item.DisplayName)] = string(item.ID)
	}
	id := closest(input, candidates)
	return domain.PantryItemID(id), id != ""
}

// Recipe resolves input to a recipe id.
func (f *Finder) Recipe(input string) (domain.RecipeID, bool) {
	candidates := make(map[string]string)
	for _, r := range f.catalog.Recipes() {
		candidates[normalize(string(r.ID))] = string(r.ID)
		candidates[normalize(r.DisplayName)] = string(r.ID)
	}
	id := closest(input, candidates)
	return domain.RecipeID(id), id != ""
}
