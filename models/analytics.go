package models

// TopProduct is a sales-analytics ranking entry. Revenue is quantity sold
// times the current catalog price, so the number reflects catalog drift
// rather than historical order pricing.
type TopProduct struct {
	Product
	Sold    int     `json:"sold"`
	Revenue float64 `json:"revenue"`
}

// MonthlyRevenuePoint is one bar of the 12-month revenue chart.
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"` // "Jan 2026"
	Revenue float64 `json:"revenue"`
}

// RecentTrends compares the trailing 30-day window against the 30 days
// before it. RevenueChange is a signed percentage and is 0, not infinite,
// when the previous window had no revenue.
type RecentTrends struct {
	RecentRevenue   float64 `json:"recent_revenue"`
	PreviousRevenue float64 `json:"previous_revenue"`
	RevenueChange   float64 `json:"revenue_change"`
	RecentOrders    int     `json:"recent_orders"`
	PreviousOrders  int     `json:"previous_orders"`
}

// SalesAnalyticsReport is the analytics screen payload: headline totals,
// top-10 ranking, category breakdown, monthly series, and the recent trend
// block.
type SalesAnalyticsReport struct {
	TotalRevenue      float64               `json:"total_revenue"`
	TotalOrders       int                   `json:"total_orders"`
	AverageOrderValue float64               `json:"average_order_value"`
	TopProducts       []TopProduct          `json:"top_products"`
	SalesByCategory   map[string]float64    `json:"sales_by_category"`
	MonthlyRevenue    []MonthlyRevenuePoint `json:"monthly_revenue"`
	RecentTrends      RecentTrends          `json:"recent_trends"`
}
