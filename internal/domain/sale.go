package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is one line of a sale.
type SaleItem struct {
	ProductCode string
	ProductName string
	Size        string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Sale is one completed point-of-sale transaction. Cancellation removes the
// record outright; there is no soft-deleted sale state.
type Sale struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Items         []SaleItem
	Total         decimal.Decimal
	TotalItems    int
	PaymentMethod string
	CreatedAt     time.Time
}

// RecordID returns the backend-assigned identity.
func (s Sale) RecordID() int64 { return s.ID }

// SearchText implements Filterable. The sale's own ID is searchable as text
// so a receipt number typed into the search box finds it.
func (s Sale) SearchText() []string {
	fields := make([]string, 0, 3+2*len(s.Items))
	fields = append(fields, s.CustomerName, s.CustomerPhone, strconv.FormatInt(s.ID, 10))
	for _, it := range s.Items {
		fields = append(fields, it.ProductName, it.ProductCode)
	}
	return fields
}

// FilterValue implements Filterable.
func (s Sale) FilterValue(key string) (string, bool) {
	switch key {
	case "paymentMethod":
		return s.PaymentMethod, true
	default:
		return "", false
	}
}

// FilterDate implements Filterable.
func (s Sale) FilterDate() time.Time { return s.CreatedAt }
