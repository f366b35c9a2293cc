package order_controller

import (
	"github.com/teesvolubiks/volubiks-cms-backend/store"
)

// Controller serves the order management screens: listing the log and
// applying status transitions, the only write this backend performs.
type Controller struct {
	Orders store.OrderRepository
}

func NewController(orders store.OrderRepository) *Controller {
	return &Controller{Orders: orders}
}
