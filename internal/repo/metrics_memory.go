package repo

// InMemoryMetricsRepository derives dashboard metrics from a ProductRepository.
type InMemoryMetricsRepository struct {
	productRepo ProductRepository
}

func NewInMemoryMetricsRepository(productRepo ProductRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{productRepo: productRepo}
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{}

	products, err := i.productRepo.GetProducts()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)

	for _, p := range products {
		m.TotalStock += p.Stock
		m.InventoryValue += p.Price * float64(p.Stock)
		if p.Stock <= 0 {
			m.OutOfStockCount++
		}
	}

	return m, nil
}
