package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

// Stats is the inventory summary snapshot. Low and out-of-stock are mutually
// exclusive classes.
type Stats struct {
	TotalProducts      int
	TotalValue         decimal.Decimal
	LowStockProducts   int
	OutOfStockProducts int
}

// Aggregate computes the inventory summary over a record snapshot. Pure:
// it never mutates the input and the same input always yields the same
// output.
func Aggregate(products []domain.Product) Stats {
	stats := Stats{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range products {
		stats.TotalValue = stats.TotalValue.Add(p.StockValue())
		switch p.StockStatus() {
		case domain.StockLow:
			stats.LowStockProducts++
		case domain.StockOut:
			stats.OutOfStockProducts++
		}
	}
	return stats
}

// Stats aggregates the full collection, independent of the current filters,
// so the summary cards stay stable while the user types a search term.
func (s *Service) Stats() Stats {
	return Aggregate(s.products.All())
}
