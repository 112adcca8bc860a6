package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

type rawInvoice struct {
	ID               int64           `json:"id"`
	Number           string          `json:"number"`
	CustomerName     string          `json:"customerName"`
	CustomerDocument string          `json:"customerDocument"`
	IssueDate        time.Time       `json:"issueDate"`
	DueDate          time.Time       `json:"dueDate"`
	Total            decimal.Decimal `json:"total"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	Balance          decimal.Decimal `json:"balance"`
	Status           string          `json:"status"`
	Payments         []rawPayment    `json:"payments"`
}

type rawPayment struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Date   time.Time       `json:"date"`
}

// InvoicePayload is the body of an invoice create/update call. Updates carry
// the full recomputed state, including the payment list.
type InvoicePayload struct {
	Number           string           `json:"number"`
	CustomerName     string           `json:"customerName"`
	CustomerDocument string           `json:"customerDocument,omitempty"`
	IssueDate        time.Time        `json:"issueDate"`
	DueDate          time.Time        `json:"dueDate"`
	Total            decimal.Decimal  `json:"total"`
	PaidAmount       decimal.Decimal  `json:"paidAmount"`
	Balance          decimal.Decimal  `json:"balance"`
	Status           string           `json:"status"`
	Payments         []PaymentPayload `json:"payments"`
}

type PaymentPayload struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Date   time.Time       `json:"date"`
}

// ListInvoices fetches the full invoice collection.
func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var raw []rawInvoice
	if err := c.do(ctx, http.MethodGet, "/invoices", nil, &raw); err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, len(raw))
	for i, r := range raw {
		invoices[i] = mapInvoice(r)
	}
	return invoices, nil
}

// CreateInvoice creates an invoice and returns it with its assigned ID.
func (c *Client) CreateInvoice(ctx context.Context, payload InvoicePayload) (domain.Invoice, error) {
	var raw rawInvoice
	if err := c.do(ctx, http.MethodPost, "/invoices", payload, &raw); err != nil {
		return domain.Invoice{}, err
	}
	return mapInvoice(raw), nil
}

// UpdateInvoice replaces an invoice wholesale, typically after registering a
// payment.
func (c *Client) UpdateInvoice(ctx context.Context, id int64, payload InvoicePayload) (domain.Invoice, error) {
	var raw rawInvoice
	path := fmt.Sprintf("/invoices/%d", id)
	if err := c.do(ctx, http.MethodPut, path, payload, &raw); err != nil {
		return domain.Invoice{}, err
	}
	return mapInvoice(raw), nil
}

func mapInvoice(r rawInvoice) domain.Invoice {
	payments := make([]domain.Payment, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = domain.Payment{Amount: p.Amount, Method: p.Method, Date: p.Date}
	}
	status := domain.InvoiceStatus(r.Status)
	if status == "" {
		status = domain.InvoicePending
	}
	return domain.Invoice{
		ID:               r.ID,
		Number:           r.Number,
		CustomerName:     r.CustomerName,
		CustomerDocument: r.CustomerDocument,
		IssueDate:        r.IssueDate,
		DueDate:          r.DueDate,
		Total:            r.Total,
		PaidAmount:       r.PaidAmount,
		Balance:          r.Balance,
		Status:           status,
		Payments:         payments,
	}
}
