package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/inventory_controller"
)

func SetupInventoryRoutes(rg *gin.RouterGroup, ctl *inventory_controller.Controller) {
	inventory := rg.Group("/inventory")

	inventory.GET("", ctl.GetInventory)
}
