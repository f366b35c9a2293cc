package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/analytics"
	report_cache "github.com/teesvolubiks/volubiks-cms-backend/cache"
	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// GetOverview godoc
// @Summary Get dashboard overview
// @Description Returns product/order counts, total revenue, low stock count, the last 5 orders and the top 5 selling products
// @Tags Admin - Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DashboardSummary}
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/dashboard/overview [get]
func (ctl *Controller) GetOverview(c *gin.Context) {
	logrus.Infof("[admin.dashboard-overview] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := ctl.Orders.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[admin.dashboard-overview] ERROR read orders err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Order data unavailable"))
		return
	}

	products, err := ctl.Products.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[admin.dashboard-overview] ERROR read products err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Product data unavailable"))
		return
	}

	key := report_cache.Key(orders, products)
	summary, hit := report_cache.GetSummary(key)
	if !hit {
		summary = analytics.BuildSummary(orders, products)
		report_cache.SetSummary(key, summary)
	}

	logrus.Infof("[admin.dashboard-overview] respond 200 orders=%d products=%d revenue=%.2f low_stock=%d cache_hit=%v",
		summary.TotalOrders, summary.TotalProducts, summary.TotalRevenue, summary.LowStockItems, hit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard overview retrieved successfully", summary))
}
