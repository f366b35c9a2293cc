package analytics

import (
	"sort"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

type salesCount struct {
	productID string
	sold      int
}

// accumulateSales tallies quantity sold per product id across every order's
// items. The result is sorted by quantity descending; ties keep the order in
// which each product id was first seen in the log.
func accumulateSales(orders []models.Order) []salesCount {
	totals := make(map[string]int)
	var firstSeen []string

	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := totals[item.ID]; !ok {
				firstSeen = append(firstSeen, item.ID)
			}
			totals[item.ID] += item.Quantity
		}
	}

	ranked := make([]salesCount, 0, len(firstSeen))
	for _, id := range firstSeen {
		ranked = append(ranked, salesCount{productID: id, sold: totals[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].sold > ranked[j].sold
	})
	return ranked
}

// indexCatalog builds the lookup join side for product resolutions.
func indexCatalog(products []models.Product) map[string]models.Product {
	byID := make(map[string]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	return byID
}
