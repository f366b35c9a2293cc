package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// GetTopProducts godoc
// @Summary Get top selling products
// @Description Returns the top 10 products by quantity sold, each with its revenue at the current catalog price
// @Tags Admin - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/analytics/top-products [get]
func (ctl *Controller) GetTopProducts(c *gin.Context) {
	logrus.Infof("[admin.analytics-top-products] start")

	report, ok := ctl.loadReport(c, "admin.analytics-top-products")
	if !ok {
		return
	}

	logrus.Infof("[admin.analytics-top-products] respond 200 products=%d", len(report.TopProducts))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", report.TopProducts))
}
