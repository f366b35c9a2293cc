package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/customer_controller"
)

func SetupCustomerRoutes(rg *gin.RouterGroup, ctl *customer_controller.Controller) {
	customers := rg.Group("/customers")

	customers.GET("", ctl.GetCustomers)
	customers.GET("/:email", ctl.GetCustomerDetails)
}
