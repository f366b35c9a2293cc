package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/analytics_controller"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, ctl *analytics_controller.Controller) {
	analytics := rg.Group("/analytics")

	analytics.GET("/sales", ctl.GetSalesAnalytics)
	analytics.GET("/monthly-revenue", ctl.GetMonthlyRevenue)
	analytics.GET("/top-products", ctl.GetTopProducts)
}
