package analytics

import (
	"time"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

const (
	analyticsTopProductCap = 10
	monthlySeriesLength    = 12
	trendWindow            = 30 // days
)

// BuildAnalytics computes the sales analytics report from a snapshot of the
// order log and the product catalog. now is an explicit input so the
// time-windowed pieces are reproducible; callers pass the wall clock.
//
// An empty log yields a zeroed report with empty lists. Orders whose
// effective date does not parse still count toward the headline totals but
// are excluded from the monthly series and the trend windows.
func BuildAnalytics(orders []models.Order, products []models.Product, now time.Time) models.SalesAnalyticsReport {
	report := models.SalesAnalyticsReport{
		TopProducts:     []models.TopProduct{},
		SalesByCategory: map[string]float64{},
		MonthlyRevenue:  []models.MonthlyRevenuePoint{},
	}
	if len(orders) == 0 {
		return report
	}

	for _, order := range orders {
		report.TotalRevenue += order.Total
	}
	report.TotalOrders = len(orders)
	report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)

	byID := indexCatalog(products)

	// Top ten by quantity sold. Revenue uses the current catalog price, not
	// the order-time item price: the panel has always reported it this way
	// so the ranking reflects what those sales would be worth today.
	ranked := accumulateSales(orders)
	if len(ranked) > analyticsTopProductCap {
		ranked = ranked[:analyticsTopProductCap]
	}
	for _, entry := range ranked {
		product, ok := byID[entry.productID]
		if !ok {
			continue
		}
		report.TopProducts = append(report.TopProducts, models.TopProduct{
			Product: product,
			Sold:    entry.sold,
			Revenue: float64(entry.sold) * product.Price,
		})
	}

	// Category revenue keeps the order-time item price for historical
	// accuracy. Items that no longer resolve to a catalog product, or whose
	// product has no category, contribute nothing.
	for _, order := range orders {
		for _, item := range order.Items {
			product, ok := byID[item.ID]
			if !ok || product.Category == "" {
				continue
			}
			report.SalesByCategory[product.Category] += item.Price * float64(item.Quantity)
		}
	}

	report.MonthlyRevenue = monthlyRevenue(orders, now)
	report.RecentTrends = recentTrends(orders, now)
	return report
}

// monthlyRevenue emits exactly twelve points, oldest first, ending at the
// month of now. Matching compares calendar month and year, not a rolling
// window, so a month with no orders still gets a zero point.
func monthlyRevenue(orders []models.Order, now time.Time) []models.MonthlyRevenuePoint {
	series := make([]models.MonthlyRevenuePoint, 0, monthlySeriesLength)
	for i := monthlySeriesLength - 1; i >= 0; i-- {
		bucket := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())

		var revenue float64
		for _, order := range orders {
			when, ok := order.EffectiveTime()
			if !ok {
				continue
			}
			if when.Month() == bucket.Month() && when.Year() == bucket.Year() {
				revenue += order.Total
			}
		}

		series = append(series, models.MonthlyRevenuePoint{
			Month:   bucket.Format("Jan 2006"),
			Revenue: revenue,
		})
	}
	return series
}

// recentTrends compares [now-30d, now) against [now-60d, now-30d).
func recentTrends(orders []models.Order, now time.Time) models.RecentTrends {
	recentStart := now.AddDate(0, 0, -trendWindow)
	previousStart := now.AddDate(0, 0, -2*trendWindow)

	var trends models.RecentTrends
	for _, order := range orders {
		when, ok := order.EffectiveTime()
		if !ok {
			continue
		}
		switch {
		case !when.Before(recentStart) && when.Before(now):
			trends.RecentRevenue += order.Total
			trends.RecentOrders++
		case !when.Before(previousStart) && when.Before(recentStart):
			trends.PreviousRevenue += order.Total
			trends.PreviousOrders++
		}
	}

	// Zero, not infinite, when the prior window had no revenue.
	if trends.PreviousRevenue > 0 {
		trends.RevenueChange = (trends.RecentRevenue - trends.PreviousRevenue) / trends.PreviousRevenue * 100
	}
	return trends
}
