package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// GetSalesAnalytics godoc
// @Summary Get the full sales analytics report
// @Description Returns totals, average order value, top 10 products, sales by category, 12-month revenue series and the 30-day trend comparison
// @Tags Admin - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SalesAnalyticsReport}
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/analytics/sales [get]
func (ctl *Controller) GetSalesAnalytics(c *gin.Context) {
	logrus.Infof("[admin.analytics-sales] start")

	report, ok := ctl.loadReport(c, "admin.analytics-sales")
	if !ok {
		return
	}

	logrus.Infof("[admin.analytics-sales] respond 200 revenue=%.2f orders=%d aov=%.2f top_products=%d",
		report.TotalRevenue, report.TotalOrders, report.AverageOrderValue, len(report.TopProducts))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales analytics retrieved successfully", report))
}
