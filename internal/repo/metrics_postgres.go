package repo

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var m Metrics
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(stock), 0),
			COUNT(*) FILTER (WHERE stock <= 0),
			COALESCE(SUM(price * stock), 0)
		FROM products
	`).Scan(&m.TotalProducts, &m.TotalStock, &m.OutOfStockCount, &m.InventoryValue)
	if err != nil {
		return Metrics{}, fmt.Errorf("dashboard metrics: %w", err)
	}

	return m, nil
}
