package customer_controller

import (
	"github.com/teesvolubiks/volubiks-cms-backend/store"
)

// Controller serves the customer management screens. Profiles are derived
// from the order log on every read; there is no customer table.
type Controller struct {
	Orders store.OrderRepository
}

func NewController(orders store.OrderRepository) *Controller {
	return &Controller{Orders: orders}
}
