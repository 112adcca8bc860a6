package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

const topProductsLimit = 5

// PeriodStats summarizes the sales inside one calendar bucket.
type PeriodStats struct {
	Count int
	Total decimal.Decimal
	Items int
}

// ProductRank is one entry of the best-seller ranking.
type ProductRank struct {
	ProductCode string
	ProductName string
	Quantity    int
}

// Stats is the sales summary snapshot as of a given instant.
type Stats struct {
	Today PeriodStats
	Week  PeriodStats
	Month PeriodStats

	PaymentMethods map[string]int
	TopProducts    []ProductRank
}

// Aggregate computes the sales summary over a record snapshot. Buckets are
// bounded by start of day, start of week (Sunday), and start of month
// relative to asOf. The top-product ranking sums item quantities by product
// code; ties keep first-encountered order.
func Aggregate(sales []domain.Sale, asOf time.Time) Stats {
	dayStart := domain.StartOfDay(asOf)
	weekStart := domain.StartOfWeek(asOf)
	monthStart := domain.StartOfMonth(asOf)

	stats := Stats{
		Today:          PeriodStats{Total: decimal.Zero},
		Week:           PeriodStats{Total: decimal.Zero},
		Month:          PeriodStats{Total: decimal.Zero},
		PaymentMethods: map[string]int{},
	}

	type rankEntry struct {
		rank  ProductRank
		order int
	}
	ranking := map[string]*rankEntry{}
	var rankOrder []string

	for _, sale := range sales {
		if !sale.CreatedAt.Before(dayStart) {
			stats.Today = addToPeriod(stats.Today, sale)
		}
		if !sale.CreatedAt.Before(weekStart) {
			stats.Week = addToPeriod(stats.Week, sale)
		}
		if !sale.CreatedAt.Before(monthStart) {
			stats.Month = addToPeriod(stats.Month, sale)
		}

		if sale.PaymentMethod != "" {
			stats.PaymentMethods[sale.PaymentMethod]++
		}

		for _, item := range sale.Items {
			entry, ok := ranking[item.ProductCode]
			if !ok {
				entry = &rankEntry{
					rank:  ProductRank{ProductCode: item.ProductCode, ProductName: item.ProductName},
					order: len(rankOrder),
				}
				ranking[item.ProductCode] = entry
				rankOrder = append(rankOrder, item.ProductCode)
			}
			entry.rank.Quantity += item.Quantity
		}
	}

	entries := make([]*rankEntry, 0, len(rankOrder))
	for _, code := range rankOrder {
		entries = append(entries, ranking[code])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].rank.Quantity > entries[j].rank.Quantity
	})
	limit := topProductsLimit
	if limit > len(entries) {
		limit = len(entries)
	}
	stats.TopProducts = make([]ProductRank, limit)
	for i := 0; i < limit; i++ {
		stats.TopProducts[i] = entries[i].rank
	}

	return stats
}

func addToPeriod(p PeriodStats, sale domain.Sale) PeriodStats {
	p.Count++
	p.Total = p.Total.Add(sale.Total)
	p.Items += sale.TotalItems
	return p
}

// Stats aggregates the full collection as of the injected clock's now.
func (s *Service) Stats() Stats {
	return Aggregate(s.sales.All(), s.clock.Now())
}
