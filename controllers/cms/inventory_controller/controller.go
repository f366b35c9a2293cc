package inventory_controller

import (
	"github.com/teesvolubiks/volubiks-cms-backend/store"
)

// Controller serves the read-only inventory screen. Catalog writes stay with
// the storefront tooling.
type Controller struct {
	Products store.ProductRepository
}

func NewController(products store.ProductRepository) *Controller {
	return &Controller{Products: products}
}
