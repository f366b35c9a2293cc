package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup, ctl *order_controller.Controller) {
	orders := rg.Group("/orders")

	orders.GET("", ctl.GetOrders)

	// Status transition is the only write this backend performs.
	orders.PATCH("/:id/status", ctl.UpdateOrderStatus)
}
