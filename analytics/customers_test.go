package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

func customerOrder(id, email string, total float64, date string) models.Order {
	return models.Order{
		ID:    id,
		Date:  date,
		Total: total,
		Shipping: models.ShippingInfo{
			FullName: "Ada Obi",
			Email:    email,
			Address:  "1 Main St",
			City:     "Lagos",
			Country:  "Nigeria",
		},
	}
}

func TestAggregateCustomersGroupsByEmail(t *testing.T) {
	orders := []models.Order{
		customerOrder("O1", "ada@example.com", 100, "2026-07-01"),
		customerOrder("O2", "ada@example.com", 200, "2026-07-15"),
		customerOrder("O3", "ada@example.com", 300, "2026-08-01"),
	}

	profiles := AggregateCustomers(orders)

	require.Len(t, profiles, 1)
	profile := profiles[0]
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, float64(600), profile.TotalSpent)
	assert.Len(t, profile.Orders, 3)
	require.NotNil(t, profile.FirstOrder)
	require.NotNil(t, profile.LastOrder)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), *profile.FirstOrder)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *profile.LastOrder)
}

func TestAggregateCustomersLastContactFieldsWin(t *testing.T) {
	first := customerOrder("O1", "ada@example.com", 50, "2026-07-01")
	second := customerOrder("O2", "ada@example.com", 50, "2026-07-02")
	second.Shipping.FullName = "Ada Obi-Martins"
	second.Shipping.Address = "7 New Crescent"
	second.Shipping.City = "Abuja"

	profiles := AggregateCustomers([]models.Order{first, second})

	require.Len(t, profiles, 1)
	assert.Equal(t, "Ada Obi-Martins", profiles[0].Name)
	assert.Equal(t, "7 New Crescent", profiles[0].Address)
	assert.Equal(t, "Abuja", profiles[0].City)
}

func TestAggregateCustomersSkipsMissingEmail(t *testing.T) {
	orders := []models.Order{
		customerOrder("O1", "", 100, "2026-07-01"),
		customerOrder("O2", "ada@example.com", 200, "2026-07-02"),
	}

	profiles := AggregateCustomers(orders)

	require.Len(t, profiles, 1)
	assert.Equal(t, "ada@example.com", profiles[0].Email)
	assert.Equal(t, float64(200), profiles[0].TotalSpent)
}

func TestAggregateCustomersUnparsableDateLeavesBoundsUntouched(t *testing.T) {
	orders := []models.Order{
		customerOrder("O1", "ada@example.com", 100, "not-a-date"),
		customerOrder("O2", "ada@example.com", 200, "2026-07-02"),
	}

	profiles := AggregateCustomers(orders)

	require.Len(t, profiles, 1)
	profile := profiles[0]
	assert.Equal(t, float64(300), profile.TotalSpent, "unparsable date still counts toward spend")
	require.NotNil(t, profile.FirstOrder)
	assert.Equal(t, time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), *profile.FirstOrder)
	assert.Equal(t, *profile.FirstOrder, *profile.LastOrder)
}

func TestAggregateCustomersFirstSeenOrdering(t *testing.T) {
	orders := []models.Order{
		customerOrder("O1", "zara@example.com", 10, "2026-07-01"),
		customerOrder("O2", "ada@example.com", 20, "2026-07-02"),
		customerOrder("O3", "zara@example.com", 30, "2026-07-03"),
	}

	profiles := AggregateCustomers(orders)

	require.Len(t, profiles, 2)
	assert.Equal(t, "zara@example.com", profiles[0].Email)
	assert.Equal(t, "ada@example.com", profiles[1].Email)
}

func TestAggregateCustomersDateFallsBackToCreatedAt(t *testing.T) {
	order := customerOrder("O1", "ada@example.com", 100, "")
	order.CreatedAt = "2026-06-15T10:30:00Z"

	profiles := AggregateCustomers([]models.Order{order})

	require.Len(t, profiles, 1)
	require.NotNil(t, profiles[0].FirstOrder)
	assert.Equal(t, time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC), *profiles[0].FirstOrder)
}

func TestAggregateCustomersConservesSpend(t *testing.T) {
	orders := []models.Order{
		customerOrder("O1", "ada@example.com", 100, "2026-07-01"),
		customerOrder("O2", "zara@example.com", 250, "2026-07-02"),
		customerOrder("O3", "ada@example.com", 300, "2026-07-03"),
		customerOrder("O4", "", 999, "2026-07-04"), // no email, belongs to nobody
		customerOrder("O5", "dan@example.com", 50, "2026-07-05"),
	}

	profiles := AggregateCustomers(orders)

	var attributed float64
	for _, profile := range profiles {
		attributed += profile.TotalSpent
	}
	var owned float64
	for _, order := range orders {
		if order.Shipping.Email != "" {
			owned += order.Total
		}
	}
	assert.Equal(t, owned, attributed, "every emailed order's total lands in exactly one profile")
	assert.Equal(t, float64(700), attributed)
}

func TestAggregateCustomersIsDeterministic(t *testing.T) {
	orders := []models.Order{
		customerOrder("O1", "ada@example.com", 100, "2026-07-01"),
		customerOrder("O2", "zara@example.com", 200, "2026-07-02"),
		customerOrder("O3", "ada@example.com", 300, "2026-07-03"),
	}

	first := AggregateCustomers(orders)
	second := AggregateCustomers(orders)

	assert.Equal(t, first, second)
}

func TestAggregateCustomersSpendIsPermutationInvariant(t *testing.T) {
	orders := []models.Order{
		customerOrder("O1", "ada@example.com", 100, "2026-07-01"),
		customerOrder("O2", "ada@example.com", 200, "2026-07-02"),
		customerOrder("O3", "ada@example.com", 300, "2026-07-03"),
	}
	reversed := []models.Order{orders[2], orders[1], orders[0]}

	a := AggregateCustomers(orders)
	b := AggregateCustomers(reversed)

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].TotalSpent, b[0].TotalSpent)
	assert.Equal(t, *a[0].FirstOrder, *b[0].FirstOrder)
	assert.Equal(t, *a[0].LastOrder, *b[0].LastOrder)
}
