package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/dashboard_controller"
)

func SetupDashboardRoutes(rg *gin.RouterGroup, ctl *dashboard_controller.Controller) {
	dashboard := rg.Group("/dashboard")

	dashboard.GET("/overview", ctl.GetOverview)
}
