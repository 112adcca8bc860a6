package accounting

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
)

// InvoiceInput carries the fields of an invoice registration. New invoices
// always start pending with a zero paid amount and the full total as balance.
type InvoiceInput struct {
	Number           string
	CustomerName     string
	CustomerDocument string
	IssueDate        time.Time
	DueDate          time.Time
	Total            decimal.Decimal
}

func (in InvoiceInput) validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Number) == "" {
		errs = append(errs, domain.FieldError{Field: "number", Message: "required"})
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		errs = append(errs, domain.FieldError{Field: "customerName", Message: "required"})
	}
	if in.IssueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "issueDate", Message: "required"})
	}
	if in.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "dueDate", Message: "required"})
	} else if !in.IssueDate.IsZero() && in.DueDate.Before(in.IssueDate) {
		errs = append(errs, domain.FieldError{Field: "dueDate", Message: "must not precede issue date"})
	}
	if !in.Total.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "total", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (in InvoiceInput) payload() backend.InvoicePayload {
	return backend.InvoicePayload{
		Number:           strings.TrimSpace(in.Number),
		CustomerName:     strings.TrimSpace(in.CustomerName),
		CustomerDocument: strings.TrimSpace(in.CustomerDocument),
		IssueDate:        in.IssueDate,
		DueDate:          in.DueDate,
		Total:            in.Total,
		PaidAmount:       decimal.Zero,
		Balance:          in.Total,
		Status:           string(domain.InvoicePending),
		Payments:         []backend.PaymentPayload{},
	}
}
