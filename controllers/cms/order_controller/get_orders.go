package order_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

var validStatusFilters = map[string]bool{
	"all":                        true,
	models.OrderStatusPending:    true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusCompleted:  true,
	models.OrderStatusCancelled:  true,
}

// GetOrders godoc
// @Summary List orders (CMS)
// @Description Returns the order log in append order. Optional status filter; records without a status count as pending.
// @Tags Admin - Orders
// @Produce json
// @Param status query string false "all | pending | processing | shipped | completed | cancelled" default(all)
// @Success 200 {object} models.ApiResponse{data=[]models.Order}
// @Failure 400 {object} models.ApiResponse "Unknown status filter"
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/orders [get]
func (ctl *Controller) GetOrders(c *gin.Context) {
	filter := strings.ToLower(strings.TrimSpace(c.DefaultQuery("status", "all")))
	logrus.Infof("[admin.orders] start status=%s", filter)

	if !validStatusFilters[filter] {
		logrus.Warnf("[admin.orders] bad request: unknown status filter %q", filter)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown status filter"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := ctl.Orders.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[admin.orders] ERROR read orders err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Order data unavailable"))
		return
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if filter == "all" || order.EffectiveStatus() == filter {
			filtered = append(filtered, order)
		}
	}

	logrus.Infof("[admin.orders] respond 200 total=%d matched=%d", len(orders), len(filtered))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders retrieved successfully", filtered))
}
