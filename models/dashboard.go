package models

// ProductSales is a dashboard top seller: the catalog record plus the
// cumulative quantity sold across the order log.
type ProductSales struct {
	Product
	Sold int `json:"sold"`
}

// DashboardSummary is the overview screen payload, derived from a snapshot
// of the order log and the product catalog.
type DashboardSummary struct {
	TotalProducts int            `json:"total_products"`
	TotalOrders   int            `json:"total_orders"`
	TotalRevenue  float64        `json:"total_revenue"`
	LowStockItems int            `json:"low_stock_items"`
	RecentOrders  []Order        `json:"recent_orders"` // most recently appended first, by log position
	TopProducts   []ProductSales `json:"top_products"`
}
