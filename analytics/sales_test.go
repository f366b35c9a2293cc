package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// fixedNow anchors every window computation in this file.
var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func datedOrder(id string, total float64, date string) models.Order {
	return models.Order{ID: id, Total: total, Date: date}
}

func TestBuildAnalyticsEmptyLog(t *testing.T) {
	report := BuildAnalytics(nil, []models.Product{catalogProduct("P1", 10, 5)}, fixedNow)

	assert.Equal(t, float64(0), report.TotalRevenue)
	assert.Equal(t, 0, report.TotalOrders)
	assert.Equal(t, float64(0), report.AverageOrderValue)
	assert.NotNil(t, report.TopProducts)
	assert.Empty(t, report.TopProducts)
	assert.NotNil(t, report.SalesByCategory)
	assert.Empty(t, report.SalesByCategory)
	assert.NotNil(t, report.MonthlyRevenue)
	assert.Empty(t, report.MonthlyRevenue)
	assert.Equal(t, models.RecentTrends{}, report.RecentTrends)
}

func TestBuildAnalyticsAverageOrderValue(t *testing.T) {
	orders := []models.Order{
		datedOrder("O1", 100, "2026-08-10"),
		datedOrder("O2", 200, "2026-08-11"),
		datedOrder("O3", 330, "2026-08-12"),
	}

	report := BuildAnalytics(orders, nil, fixedNow)

	assert.Equal(t, float64(630), report.TotalRevenue)
	assert.Equal(t, 3, report.TotalOrders)
	assert.Equal(t, float64(210), report.AverageOrderValue)
}

func TestBuildAnalyticsTopProductRevenueUsesCatalogPrice(t *testing.T) {
	// Quantity 2 then 5 of the same product; catalog price 10. Sold is 7 and
	// revenue is 70 regardless of what the items were charged at order time.
	orders := []models.Order{
		{ID: "O1", Total: 50, Date: "2026-08-10", Items: []models.OrderItem{
			{ID: "P1", Price: 25, Quantity: 2},
		}},
		{ID: "O2", Total: 40, Date: "2026-08-11", Items: []models.OrderItem{
			{ID: "P1", Price: 8, Quantity: 5},
		}},
	}
	products := []models.Product{catalogProduct("P1", 10, 8)}

	report := BuildAnalytics(orders, products, fixedNow)

	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "P1", report.TopProducts[0].ID)
	assert.Equal(t, 7, report.TopProducts[0].Sold)
	assert.Equal(t, float64(70), report.TopProducts[0].Revenue)
}

func TestBuildAnalyticsCategoryRevenueUsesOrderTimePrice(t *testing.T) {
	orders := []models.Order{
		{ID: "O1", Total: 50, Date: "2026-08-10", Items: []models.OrderItem{
			{ID: "P1", Price: 25, Quantity: 2},
			{ID: "P2", Price: 5, Quantity: 1},
			{ID: "gone", Price: 99, Quantity: 1},
		}},
	}
	products := []models.Product{
		{ID: "P1", Name: "Aurora Ring", Category: "Rings", Price: 10},
		{ID: "P2", Name: "Stella Earrings", Category: "Earrings", Price: 40},
	}

	report := BuildAnalytics(orders, products, fixedNow)

	assert.Equal(t, float64(50), report.SalesByCategory["Rings"])
	assert.Equal(t, float64(5), report.SalesByCategory["Earrings"])
	assert.NotContains(t, report.SalesByCategory, "")
}

func TestMonthlyRevenueTwelvePoints(t *testing.T) {
	orders := []models.Order{
		datedOrder("O1", 150, "2026-08-05"),
		datedOrder("O2", 50, "2026-08-20"),
	}

	series := monthlyRevenue(orders, fixedNow)

	require.Len(t, series, monthlySeriesLength)
	assert.Equal(t, "Oct 2025", series[0].Month)
	assert.Equal(t, "Sep 2026", series[len(series)-1].Month)

	var nonZero []models.MonthlyRevenuePoint
	for _, point := range series {
		if point.Revenue != 0 {
			nonZero = append(nonZero, point)
		}
	}
	require.Len(t, nonZero, 1)
	assert.Equal(t, "Aug 2026", nonZero[0].Month)
	assert.Equal(t, float64(200), nonZero[0].Revenue)
}

func TestMonthlyRevenueExcludesUnparsableAndOutOfRange(t *testing.T) {
	orders := []models.Order{
		datedOrder("O1", 100, "garbage"),
		datedOrder("O2", 100, "2024-01-01"), // well before the 12-month span
		datedOrder("O3", 75, "2026-09-01"),
	}

	series := monthlyRevenue(orders, fixedNow)

	require.Len(t, series, monthlySeriesLength)
	var total float64
	for _, point := range series {
		total += point.Revenue
	}
	assert.Equal(t, float64(75), total)
}

func TestRecentTrendsWindows(t *testing.T) {
	orders := []models.Order{
		// Inside [now-30d, now).
		datedOrder("O1", 100, "2026-08-15"),
		datedOrder("O2", 200, "2026-08-30"),
		// Inside [now-60d, now-30d).
		datedOrder("O3", 50, "2026-07-10"),
		// Older than both windows.
		datedOrder("O4", 999, "2026-05-01"),
		// Unparsable, ignored.
		datedOrder("O5", 999, "nope"),
	}

	trends := recentTrends(orders, fixedNow)

	assert.Equal(t, float64(300), trends.RecentRevenue)
	assert.Equal(t, 2, trends.RecentOrders)
	assert.Equal(t, float64(50), trends.PreviousRevenue)
	assert.Equal(t, 1, trends.PreviousOrders)
	assert.Equal(t, float64(500), trends.RevenueChange)
}

func TestRecentTrendsZeroChangeWhenPreviousWindowEmpty(t *testing.T) {
	orders := []models.Order{
		datedOrder("O1", 400, "2026-08-20"),
	}

	trends := recentTrends(orders, fixedNow)

	assert.Equal(t, float64(400), trends.RecentRevenue)
	assert.Equal(t, float64(0), trends.PreviousRevenue)
	assert.Equal(t, float64(0), trends.RevenueChange, "no prior revenue must not divide by zero")
}

func TestBuildAnalyticsTotalsArePermutationInvariant(t *testing.T) {
	// Distinct quantities per product, so the ranking carries no ties and
	// must come out identical regardless of log order.
	orders := []models.Order{
		{ID: "O1", Total: 10, Date: "2026-08-01", Items: []models.OrderItem{
			{ID: "P1", Price: 5, Quantity: 1},
			{ID: "P2", Price: 3, Quantity: 4},
		}},
		{ID: "O2", Total: 20, Date: "2026-08-02", Items: []models.OrderItem{
			{ID: "P2", Price: 3, Quantity: 3},
		}},
		{ID: "O3", Total: 30, Date: "2026-08-03", Items: []models.OrderItem{
			{ID: "P1", Price: 5, Quantity: 1},
		}},
	}
	reversed := []models.Order{orders[2], orders[1], orders[0]}
	products := []models.Product{
		{ID: "P1", Name: "Aurora Ring", Category: "Rings", Price: 10},
		{ID: "P2", Name: "Stella Earrings", Category: "Earrings", Price: 40},
	}

	a := BuildAnalytics(orders, products, fixedNow)
	b := BuildAnalytics(reversed, products, fixedNow)

	assert.Equal(t, a.TotalRevenue, b.TotalRevenue)
	assert.Equal(t, a.AverageOrderValue, b.AverageOrderValue)
	assert.Equal(t, a.TopProducts, b.TopProducts)
	assert.Equal(t, a.SalesByCategory, b.SalesByCategory)
	assert.Equal(t, a.MonthlyRevenue, b.MonthlyRevenue)
	assert.Equal(t, a.RecentTrends, b.RecentTrends)
}

func TestBuildAnalyticsIsDeterministic(t *testing.T) {
	orders := []models.Order{
		{ID: "O1", Total: 100, Date: "2026-08-10", Items: []models.OrderItem{
			{ID: "P1", Price: 25, Quantity: 2},
			{ID: "P2", Price: 10, Quantity: 2},
		}},
	}
	products := []models.Product{
		{ID: "P1", Name: "Aurora Ring", Category: "Rings", Price: 10},
		{ID: "P2", Name: "Stella Earrings", Category: "Earrings", Price: 40},
	}

	first := BuildAnalytics(orders, products, fixedNow)
	second := BuildAnalytics(orders, products, fixedNow)

	assert.Equal(t, first, second)
}
