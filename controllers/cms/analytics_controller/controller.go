package analytics_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teesvolubiks/volubiks-cms-backend/analytics"
	report_cache "github.com/teesvolubiks/volubiks-cms-backend/cache"
	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
	"github.com/teesvolubiks/volubiks-cms-backend/store"
)

// Controller serves the sales analytics screens. The clock is injected so
// the time-windowed reports stay reproducible under test.
type Controller struct {
	Orders   store.OrderRepository
	Products store.ProductRepository
	Now      func() time.Time
}

func NewController(orders store.OrderRepository, products store.ProductRepository) *Controller {
	return &Controller{Orders: orders, Products: products, Now: time.Now}
}

// loadReport reads both snapshots and computes (or recalls) the full sales
// analytics report. The monthly series and trend windows depend on the
// clock, so the memoization key includes the current hour bucket.
func (ctl *Controller) loadReport(c *gin.Context, component string) (models.SalesAnalyticsReport, bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := ctl.Orders.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[%s] ERROR read orders err=%v", component, err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Order data unavailable"))
		return models.SalesAnalyticsReport{}, false
	}

	products, err := ctl.Products.ReadAll(ctx)
	if err != nil {
		logrus.Errorf("[%s] ERROR read products err=%v", component, err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Product data unavailable"))
		return models.SalesAnalyticsReport{}, false
	}

	now := ctl.Now()
	key := report_cache.Key(orders, products, now.Truncate(time.Hour))
	report, hit := report_cache.GetAnalytics(key)
	if !hit {
		report = analytics.BuildAnalytics(orders, products, now)
		report_cache.SetAnalytics(key, report)
	}
	return report, true
}
