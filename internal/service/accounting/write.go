package accounting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
)

// CreateInvoice validates the input, asks the backend to create the invoice,
// and inserts the confirmed record into the collection. The in-memory state
// is only touched after the backend reports success.
func (s *Service) CreateInvoice(ctx context.Context, input InvoiceInput) (domain.Invoice, error) {
	if err := input.validate(); err != nil {
		return domain.Invoice{}, err
	}
	if !s.IsNumberUnique(input.Number, 0) {
		return domain.Invoice{}, domain.NewValidationError("number", "already in use")
	}

	created, err := s.backend.CreateInvoice(ctx, input.payload())
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	if err := s.invoices.Insert(created); err != nil {
		return domain.Invoice{}, fmt.Errorf("create invoice: insert %d: %w", created.ID, err)
	}

	s.log.InfoContext(ctx, "invoice created",
		slog.Int64("id", created.ID),
		slog.String("number", created.Number),
	)
	return created, nil
}

// RegisterPayment applies a partial or full payment to an invoice: it appends
// the payment, recomputes paid amount, balance, and status, sends the full
// replacement to the backend, and swaps the confirmed record in. A payment
// that settles the balance marks the invoice paid, otherwise partial.
func (s *Service) RegisterPayment(ctx context.Context, id int64, amount decimal.Decimal, method string) (domain.Invoice, error) {
	current, ok := s.invoices.FindByID(id)
	if !ok {
		return domain.Invoice{}, fmt.Errorf("register payment %d: %w", id, domain.ErrNotFound)
	}
	if !amount.IsPositive() {
		return domain.Invoice{}, domain.NewValidationError("amount", "must be positive")
	}
	if amount.GreaterThan(current.Balance) {
		return domain.Invoice{}, domain.NewValidationError("amount", "exceeds outstanding balance")
	}
	if current.Status == domain.InvoicePaid || current.Status == domain.InvoiceCancelled {
		return domain.Invoice{}, domain.NewValidationError("status", "invoice not open for payments")
	}

	paid := current.PaidAmount.Add(amount)
	balance := current.Total.Sub(paid)
	status := domain.InvoicePartial
	if balance.IsZero() {
		status = domain.InvoicePaid
	}

	payments := make([]backend.PaymentPayload, 0, len(current.Payments)+1)
	for _, p := range current.Payments {
		payments = append(payments, backend.PaymentPayload{Amount: p.Amount, Method: p.Method, Date: p.Date})
	}
	payments = append(payments, backend.PaymentPayload{
		Amount: amount,
		Method: method,
		Date:   s.clock.Now(),
	})

	payload := backend.InvoicePayload{
		Number:           current.Number,
		CustomerName:     current.CustomerName,
		CustomerDocument: current.CustomerDocument,
		IssueDate:        current.IssueDate,
		DueDate:          current.DueDate,
		Total:            current.Total,
		PaidAmount:       paid,
		Balance:          balance,
		Status:           string(status),
		Payments:         payments,
	}

	updated, err := s.backend.UpdateInvoice(ctx, id, payload)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("register payment %d: %w", id, err)
	}

	if err := s.invoices.Replace(id, updated); err != nil {
		return domain.Invoice{}, fmt.Errorf("register payment %d: replace: %w", id, err)
	}

	s.log.InfoContext(ctx, "payment registered",
		slog.Int64("id", id),
		slog.String("amount", amount.String()),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}
