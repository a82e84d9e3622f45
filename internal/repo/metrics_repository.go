package repo

// Metrics summarizes the catalog for the admin dashboard.
type Metrics struct {
	TotalProducts   int     `json:"total_products"`
	TotalStock      int     `json:"total_stock"`
	OutOfStockCount int     `json:"out_of_stock_count"`
	InventoryValue  float64 `json:"inventory_value"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
