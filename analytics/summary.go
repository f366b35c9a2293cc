package analytics

import (
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

const (
	recentOrderCount     = 5
	summaryTopProductCap = 5
)

// BuildSummary computes the dashboard overview from a snapshot of the order
// log and the product catalog. A missing order total counts as zero and a
// product with no inventory field counts as stock 0, so the summary always
// completes over partial records.
func BuildSummary(orders []models.Order, products []models.Product) models.DashboardSummary {
	summary := models.DashboardSummary{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		RecentOrders:  []models.Order{},
		TopProducts:   []models.ProductSales{},
	}

	for _, order := range orders {
		summary.TotalRevenue += order.Total
	}

	for _, product := range products {
		if product.Inventory <= models.LowStockThreshold {
			summary.LowStockItems++
		}
	}

	// Last five by log position, most recently appended first. This is a
	// positional slice, not a date sort: the log is append-ordered and the
	// overview shows what just came in.
	start := len(orders) - recentOrderCount
	if start < 0 {
		start = 0
	}
	for i := len(orders) - 1; i >= start; i-- {
		summary.RecentOrders = append(summary.RecentOrders, orders[i])
	}

	// Top sellers: rank first, cut to five, then join against the catalog.
	// Entries whose product id is no longer in the catalog are dropped after
	// the cut, with no placeholder.
	byID := indexCatalog(products)
	ranked := accumulateSales(orders)
	if len(ranked) > summaryTopProductCap {
		ranked = ranked[:summaryTopProductCap]
	}
	for _, entry := range ranked {
		product, ok := byID[entry.productID]
		if !ok {
			continue
		}
		summary.TopProducts = append(summary.TopProducts, models.ProductSales{
			Product: product,
			Sold:    entry.sold,
		})
	}

	return summary
}
