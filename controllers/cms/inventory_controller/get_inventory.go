package inventory_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

var validStockFilters = map[string]bool{
	"all":                 true,
	models.StockStatusLow: true,
	models.StockStatusOut: true,
}

// GetInventory godoc
// @Summary List products with stock status
// @Description Returns the catalog with a derived stock status per product. Optional q matches name or id; filter narrows to low-stock or out-of-stock.
// @Tags Admin - Inventory
// @Produce json
// @Param q query string false "Case-insensitive name/id filter"
// @Param filter query string false "all | low-stock | out-of-stock" default(all)
// @Success 200 {object} models.ApiResponse{data=[]models.InventoryRow}
// @Failure 400 {object} models.ApiResponse "Unknown stock filter"
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/inventory [get]
func (ctl *Controller) GetInventory(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	filter := strings.ToLower(strings.TrimSpace(c.DefaultQuery("filter", "all")))
	logrus.Infof("[admin.inventory] start q=%q filter=%s", q, filter)

	if !validStockFilters[filter] {
		logrus.Warnf("[admin.inventory] bad request: unknown stock filter %q", filter)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown stock filter"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := ctl.Products.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[admin.inventory] ERROR read products err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Product data unavailable"))
		return
	}

	needle := strings.ToLower(q)
	rows := make([]models.InventoryRow, 0, len(products))
	for _, product := range products {
		status := product.StockStatus()
		if filter != "all" && status != filter {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(product.Name), needle) &&
			!strings.Contains(strings.ToLower(product.ID), needle) {
			continue
		}
		rows = append(rows, models.InventoryRow{Product: product, StockStatus: status})
	}

	logrus.Infof("[admin.inventory] respond 200 catalog=%d matched=%d", len(products), len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory retrieved successfully", rows))
}
