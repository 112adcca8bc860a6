package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
)

// ProductInput carries the editable fields of a product for create and
// update calls. The ID and creation timestamp are always backend-assigned.
type ProductInput struct {
	Code          string
	Name          string
	Brand         string
	Category      string
	Sizes         []domain.SizeStock
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	MinStock      int
}

func (in ProductInput) validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Code) == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if in.PurchasePrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "purchasePrice", Message: "must not be negative"})
	}
	if in.SalePrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "salePrice", Message: "must not be negative"})
	}
	if in.MinStock < 0 {
		errs = append(errs, domain.FieldError{Field: "minStock", Message: "must not be negative"})
	}
	for _, s := range in.Sizes {
		if s.Quantity < 0 {
			errs = append(errs, domain.FieldError{Field: "sizes", Message: "quantities must not be negative"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (in ProductInput) payload() backend.ProductPayload {
	sizes := make([]backend.SizeStockPayload, len(in.Sizes))
	for i, s := range in.Sizes {
		sizes[i] = backend.SizeStockPayload{Size: s.Size, Quantity: s.Quantity}
	}
	return backend.ProductPayload{
		Code:          strings.TrimSpace(in.Code),
		Name:          strings.TrimSpace(in.Name),
		Brand:         strings.TrimSpace(in.Brand),
		Category:      strings.TrimSpace(in.Category),
		Sizes:         sizes,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		MinStock:      in.MinStock,
	}
}
