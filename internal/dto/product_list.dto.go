package dto

// ProductRow is the flattened read model for one catalog product.
type ProductRow struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
}
