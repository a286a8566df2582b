package models

type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name" binding:"required"`
	Price         float64  `json:"price"`
	Description   string   `json:"description"`
	StockQuantity int      `json:"stockQuantity"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	ImageURL      string   `json:"imageUrl"`
	Keywords      []string `json:"keywords"`
}
