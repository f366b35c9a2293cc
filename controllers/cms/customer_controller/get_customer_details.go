package customer_controller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/analytics"
	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// GetCustomerDetails godoc
// @Summary Get one customer profile by email
// @Description Returns the profile for the given shipping email with its order history sorted most recent first
// @Tags Admin - Customers
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} models.ApiResponse{data=models.CustomerProfile}
// @Failure 404 {object} models.ApiResponse "No orders for that email"
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/customers/{email} [get]
func (ctl *Controller) GetCustomerDetails(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	logrus.Infof("[admin.customer-details] start email=%s", email)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := ctl.Orders.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[admin.customer-details] ERROR read orders err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Order data unavailable"))
		return
	}

	for _, profile := range analytics.AggregateCustomers(orders) {
		if profile.Email != email {
			continue
		}

		// Display order: most recent effective date first. Orders without a
		// parsable date sort last, keeping their log order among themselves.
		sort.SliceStable(profile.Orders, func(i, j int) bool {
			ti, oki := profile.Orders[i].EffectiveTime()
			tj, okj := profile.Orders[j].EffectiveTime()
			if oki != okj {
				return oki
			}
			return ti.After(tj)
		})

		logrus.Infof("[admin.customer-details] respond 200 email=%s orders=%d total_spent=%.2f",
			profile.Email, len(profile.Orders), profile.TotalSpent)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer retrieved successfully", profile))
		return
	}

	logrus.Warnf("[admin.customer-details] not found email=%s", email)
	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
}
