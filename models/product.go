package models

// LowStockThreshold marks a product as low stock when its inventory is at or
// below this count. Matches the storefront admin panel.
const LowStockThreshold = 5

// Stock status labels derived from inventory counts.
const (
	StockStatusOut = "out-of-stock"
	StockStatusLow = "low-stock"
	StockStatusIn  = "in-stock"
)

// Product is one record of the read-only product catalog blob. Field names
// match the stored JSON.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images,omitempty"`
	Inventory   int      `json:"inventory"`
}

// StockStatus buckets the product's inventory. A missing inventory decodes
// to 0 and therefore reads as out of stock.
func (p Product) StockStatus() string {
	switch {
	case p.Inventory <= 0:
		return StockStatusOut
	case p.Inventory <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// InventoryRow is the inventory screen's view of a product: the catalog
// record plus its derived stock status.
type InventoryRow struct {
	Product
	StockStatus string `json:"stock_status"`
}
