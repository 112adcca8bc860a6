package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeStock is the stock held for one size of a product.
type SizeStock struct {
	Size     string
	Quantity int
}

// Product is one inventory record. Stock is tracked per size; the totals and
// the stock classification are always derived, never stored.
type Product struct {
	ID            int64
	Code          string
	Name          string
	Brand         string
	Category      string
	Sizes         []SizeStock
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	MinStock      int
	IsActive      bool
	CreatedAt     time.Time
}

// RecordID returns the backend-assigned identity.
func (p Product) RecordID() int64 { return p.ID }

// TotalStock sums the per-size quantities.
func (p Product) TotalStock() int {
	total := 0
	for _, s := range p.Sizes {
		total += s.Quantity
	}
	return total
}

// StockStatus classifies the product's stock level. A product is "out" when
// total stock is exactly zero regardless of MinStock, and "low" when stock is
// positive but at or under MinStock. The classes are mutually exclusive.
func (p Product) StockStatus() StockStatus {
	total := p.TotalStock()
	switch {
	case total == 0:
		return StockOut
	case total <= p.MinStock:
		return StockLow
	default:
		return StockGood
	}
}

// IsLowStock reports whether the product is in the "low" class.
func (p Product) IsLowStock() bool { return p.StockStatus() == StockLow }

// StockValue is the purchase value of the stock on hand.
func (p Product) StockValue() decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.TotalStock())))
}

// SearchText implements Filterable.
func (p Product) SearchText() []string {
	return []string{p.Name, p.Code, p.Brand, p.Category}
}

// FilterValue implements Filterable.
func (p Product) FilterValue(key string) (string, bool) {
	switch key {
	case "category":
		return p.Category, true
	case "brand":
		return p.Brand, true
	case "active":
		if p.IsActive {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// FilterDate implements Filterable.
func (p Product) FilterDate() time.Time { return p.CreatedAt }
