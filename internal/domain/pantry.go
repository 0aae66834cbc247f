package domain

// PantryItemID is the stable catalog identifier of a pantry item.
type PantryItemID string

// ShopCategory groups pantry items on the shop screen.
type ShopCategory string

const (
	CategoryDairy     ShopCategory = "dairy"
	CategoryGrains    ShopCategory = "grains"
	CategorySeasoning ShopCategory = "seasoning"
	CategoryTreats    ShopCategory = "treats"
)

// PantryItem is a catalog entry for a purchasable non-grown ingredient.
type PantryItem struct {
	ID          PantryItemID
	DisplayName string
	Icon        string
	Category    ShopCategory
	ShopPrice   int
}

// PantryStock is one quantity-tracked pantry entry as it appears at the
// persistence boundary. In memory the pantry is a map keyed by item id.
type PantryStock struct {
	Item     PantryItemID `json:"item"`
	Quantity int          `json:"quantity"`
}
