package repo

import (
	"testing"

	"github.com/rogerio-castellano/product-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryMetricsRepository_GetDashboardMetrics(t *testing.T) {
	products := NewInMemoryProductRepository()
	metrics := NewInMemoryMetricsRepository(products)

	m, err := metrics.GetDashboardMetrics()
	require.NoError(t, err)
	assert.Equal(t, Metrics{}, m)

	for _, p := range []models.Product{
		{Title: "Phone", Code: "PH1", Price: 100, Stock: 2},
		{Title: "Mouse", Code: "MS1", Price: 10, Stock: 0},
		{Title: "Cable", Code: "CB1", Price: 5, Stock: 4},
	} {
		_, err := products.AddProduct(p)
		require.NoError(t, err)
	}

	m, err = metrics.GetDashboardMetrics()
	require.NoError(t, err)
	assert.Equal(t, 3, m.TotalProducts)
	assert.Equal(t, 6, m.TotalStock)
	assert.Equal(t, 1, m.OutOfStockCount)
	assert.InDelta(t, 220.0, m.InventoryValue, 0.0001)
}
