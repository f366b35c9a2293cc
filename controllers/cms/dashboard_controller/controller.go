package dashboard_controller

import (
	"github.com/teesvolubiks/volubiks-cms-backend/store"
)

// Controller serves the admin dashboard overview. Stores are injected so the
// controller never reaches into ambient storage.
type Controller struct {
	Orders   store.OrderRepository
	Products store.ProductRepository
}

func NewController(orders store.OrderRepository, products store.ProductRepository) *Controller {
	return &Controller{Orders: orders, Products: products}
}
