package dashboard_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	report_cache "github.com/teesvolubiks/volubiks-cms-backend/cache"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

type stubOrders struct {
	orders  []models.Order
	readErr error
}

func (s *stubOrders) ReadAll(ctx context.Context) ([]models.Order, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.orders, nil
}

func (s *stubOrders) WriteAll(ctx context.Context, orders []models.Order) error {
	return nil
}

type stubProducts struct {
	products []models.Product
	readErr  error
}

func (s *stubProducts) ReadAll(ctx context.Context) ([]models.Product, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.products, nil
}

func newTestRouter(ctl *Controller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard/overview", ctl.GetOverview)
	return r
}

func TestGetOverview(t *testing.T) {
	report_cache.Invalidate()

	ctl := NewController(
		&stubOrders{orders: []models.Order{
			{ID: "O1", Total: 150},
			{ID: "O2", Total: 50},
		}},
		&stubProducts{products: []models.Product{
			{ID: "P1", Name: "Aurora Ring", Inventory: 12},
			{ID: "P2", Name: "Luna Ring", Inventory: 2},
		}},
	)
	r := newTestRouter(ctl)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/overview", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data models.DashboardSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	assert.Equal(t, 2, env.Data.TotalProducts)
	assert.Equal(t, 2, env.Data.TotalOrders)
	assert.Equal(t, float64(200), env.Data.TotalRevenue)
	assert.Equal(t, 1, env.Data.LowStockItems)
	require.Len(t, env.Data.RecentOrders, 2)
	assert.Equal(t, "O2", env.Data.RecentOrders[0].ID)
}

func TestGetOverviewOrderStoreFailureIs503(t *testing.T) {
	report_cache.Invalidate()

	ctl := NewController(&stubOrders{readErr: assert.AnError}, &stubProducts{})
	r := newTestRouter(ctl)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/overview", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetOverviewProductStoreFailureIs503(t *testing.T) {
	report_cache.Invalidate()

	ctl := NewController(&stubOrders{}, &stubProducts{readErr: assert.AnError})
	r := newTestRouter(ctl)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/overview", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
