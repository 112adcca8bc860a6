package sales

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
)

// SaleItemInput is one line of a sale being registered. The subtotal is
// computed, never submitted.
type SaleItemInput struct {
	ProductCode string
	ProductName string
	Size        string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// SaleInput carries the fields of a sale registration. Total and item count
// are derived from the lines.
type SaleInput struct {
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	Items         []SaleItemInput
}

func (in SaleInput) validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.CustomerName) == "" {
		errs = append(errs, domain.FieldError{Field: "customerName", Message: "required"})
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		errs = append(errs, domain.FieldError{Field: "paymentMethod", Message: "required"})
	}
	if len(in.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item"})
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductCode) == "" {
			errs = append(errs, domain.FieldError{Field: "items", Message: "product code required"})
			break
		}
		if it.Quantity <= 0 {
			errs = append(errs, domain.FieldError{Field: "items", Message: "quantity must be positive"})
			break
		}
		if it.UnitPrice.IsNegative() {
			errs = append(errs, domain.FieldError{Field: "items", Message: "unit price must not be negative"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// payload derives the wire body: per-line subtotals, the sale total, and the
// total item count.
func (in SaleInput) payload() backend.SalePayload {
	items := make([]backend.SaleItemPayload, len(in.Items))
	total := decimal.Zero
	totalItems := 0
	for i, it := range in.Items {
		subtotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items[i] = backend.SaleItemPayload{
			ProductCode: strings.TrimSpace(it.ProductCode),
			ProductName: strings.TrimSpace(it.ProductName),
			Size:        strings.TrimSpace(it.Size),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    subtotal,
		}
		total = total.Add(subtotal)
		totalItems += it.Quantity
	}
	return backend.SalePayload{
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Items:         items,
		Total:         total,
		TotalItems:    totalItems,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
	}
}
