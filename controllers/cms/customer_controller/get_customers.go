package customer_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/analytics"
	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// GetCustomers godoc
// @Summary List customers derived from the order log
// @Description Returns one profile per shipping email with order history, total spent and first/last order dates. Optional q filters by name or email substring.
// @Tags Admin - Customers
// @Produce json
// @Param q query string false "Case-insensitive name/email filter"
// @Success 200 {object} models.ApiResponse{data=models.CustomerListResponse}
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/customers [get]
func (ctl *Controller) GetCustomers(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	logrus.Infof("[admin.customers] start q=%q", q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := ctl.Orders.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[admin.customers] ERROR read orders err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Order data unavailable"))
		return
	}

	profiles := analytics.AggregateCustomers(orders)

	// Headline numbers cover every known customer, before any filter.
	res := models.CustomerListResponse{
		TotalCustomers: len(profiles),
		Customers:      []models.CustomerProfile{},
	}
	for _, profile := range profiles {
		res.TotalRevenue += profile.TotalSpent
	}

	needle := strings.ToLower(q)
	for _, profile := range profiles {
		if needle != "" &&
			!strings.Contains(strings.ToLower(profile.Name), needle) &&
			!strings.Contains(strings.ToLower(profile.Email), needle) {
			continue
		}
		res.Customers = append(res.Customers, profile)
	}

	logrus.Infof("[admin.customers] respond 200 total=%d matched=%d revenue=%.2f",
		res.TotalCustomers, len(res.Customers), res.TotalRevenue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customers retrieved successfully", res))
}
