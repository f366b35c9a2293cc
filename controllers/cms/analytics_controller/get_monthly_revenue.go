package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue for the last 12 months
// @Description Returns the 12-point revenue series ending at the current month, oldest first, for chart visualization
// @Tags Admin - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenuePoint}
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/analytics/monthly-revenue [get]
func (ctl *Controller) GetMonthlyRevenue(c *gin.Context) {
	logrus.Infof("[admin.analytics-monthly-revenue] start")

	report, ok := ctl.loadReport(c, "admin.analytics-monthly-revenue")
	if !ok {
		return
	}

	logrus.Infof("[admin.analytics-monthly-revenue] respond 200 months=%d", len(report.MonthlyRevenue))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue retrieved successfully", report.MonthlyRevenue))
}
