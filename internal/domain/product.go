package domain

// CategoryAll is the catalog filter value that matches every category.
const CategoryAll = "All"

// Product is a catalog entry. IDs are assigned monotonically by the catalog
// (max existing id + 1) and are unique within the collection.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
