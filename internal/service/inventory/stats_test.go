package inventory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

func sized(qty int) []domain.SizeStock {
	return []domain.SizeStock{{Size: "38", Quantity: qty}}
}

func TestAggregate(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Sizes: sized(5), MinStock: 10, PurchasePrice: decimal.NewFromInt(10)}, // low
		{ID: 2, Sizes: sized(0), MinStock: 10, PurchasePrice: decimal.NewFromInt(99)}, // out
		{ID: 3, Sizes: sized(20), MinStock: 10, PurchasePrice: decimal.NewFromInt(2)}, // good
	}

	stats := Aggregate(products)

	if stats.TotalProducts != 3 {
		t.Errorf("total: got %d, want 3", stats.TotalProducts)
	}
	// 5*10 + 0*99 + 20*2 = 90
	if want := decimal.NewFromInt(90); !stats.TotalValue.Equal(want) {
		t.Errorf("value: got %s, want %s", stats.TotalValue, want)
	}
	if stats.LowStockProducts != 1 {
		t.Errorf("low: got %d, want 1", stats.LowStockProducts)
	}
	if stats.OutOfStockProducts != 1 {
		t.Errorf("out: got %d, want 1", stats.OutOfStockProducts)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.TotalProducts != 0 || !stats.TotalValue.IsZero() {
		t.Errorf("empty aggregate: %+v", stats)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Sizes: sized(5), MinStock: 10, PurchasePrice: decimal.NewFromInt(10)},
		{ID: 2, Sizes: sized(0), MinStock: 10, PurchasePrice: decimal.NewFromInt(99)},
		{ID: 3, Sizes: sized(20), MinStock: 10, PurchasePrice: decimal.NewFromInt(2)},
	}
	reversed := []domain.Product{products[2], products[1], products[0]}

	a, b := Aggregate(products), Aggregate(reversed)
	if a.TotalProducts != b.TotalProducts ||
		!a.TotalValue.Equal(b.TotalValue) ||
		a.LowStockProducts != b.LowStockProducts ||
		a.OutOfStockProducts != b.OutOfStockProducts {
		t.Errorf("aggregation must be order independent: %+v vs %+v", a, b)
	}
}

func TestStatsIgnoreFilters(t *testing.T) {
	mock := &mockProductBackend{}
	svc := newTestService(t, mock)
	seed(t, svc, mock, []domain.Product{
		{ID: 1, Code: "ZAP01", Name: "Zapato", CreatedAt: testNow},
		{ID: 2, Code: "BOT01", Name: "Bota", CreatedAt: testNow},
	})

	svc.SetSearch("zapato")
	if got := len(svc.Filtered()); got != 1 {
		t.Fatalf("filtered: got %d, want 1", got)
	}
	if got := svc.Stats().TotalProducts; got != 2 {
		t.Errorf("stats must cover the full collection, got %d", got)
	}
}
