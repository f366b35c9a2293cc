package order_controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	report_cache "github.com/teesvolubiks/volubiks-cms-backend/cache"
	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description Moves an order to one of the five states and stamps updatedAt. Transition legality is the admin's call; any state may move to any other.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.UpdateOrderStatusResponse}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 503 {object} models.ApiResponse "Store unreachable or blob corrupt"
// @Router /admin/orders/{id}/status [patch]
func (ctl *Controller) UpdateOrderStatus(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("id"))
	logrus.Infof("[admin.order-update] start id=%s", orderID)

	if orderID == "" {
		logrus.Warnf("[admin.order-update] bad request: empty order id")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order ID is required"))
		return
	}

	// The oneof binding is case-sensitive: statuses are stored lowercase and
	// the admin panel sends them that way.
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Warnf("[admin.order-update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := ctl.Orders.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[admin.order-update] ERROR read orders err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Order data unavailable"))
		return
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		logrus.Warnf("[admin.order-update] order not found id=%s", orderID)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	orders[idx].Status = req.Status
	orders[idx].UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ctl.Orders.WriteAll(ctx, orders); err != nil {
		logrus.Errorf("[admin.order-update] ERROR write orders err=%v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Order data unavailable"))
		return
	}

	// The log changed; memoized reports no longer match it.
	report_cache.Invalidate()

	logrus.Infof("[admin.order-update] success id=%s status=%s", orderID, req.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", models.UpdateOrderStatusResponse{
		ID:        orders[idx].ID,
		Status:    orders[idx].Status,
		UpdatedAt: orders[idx].UpdatedAt,
	}))
}
