package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one payment applied to an invoice.
type Payment struct {
	Amount decimal.Decimal
	Method string
	Date   time.Time
}

// Invoice is one accounts-receivable record. Status holds the stored payment
// state (PENDING, PARTIAL, PAID, CANCELLED); the overdue classification is
// never stored and must be derived from DueDate at read time.
type Invoice struct {
	ID               int64
	Number           string
	CustomerName     string
	CustomerDocument string
	IssueDate        time.Time
	DueDate          time.Time
	Total            decimal.Decimal
	PaidAmount       decimal.Decimal
	Balance          decimal.Decimal
	Status           InvoiceStatus
	Payments         []Payment
}

// RecordID returns the backend-assigned identity.
func (i Invoice) RecordID() int64 { return i.ID }

// IsOverdue reports whether the invoice is past due as of the given instant.
// The stored status is consulted only to exempt fully paid invoices; a stale
// PENDING status never hides an overdue invoice.
func (i Invoice) IsOverdue(asOf time.Time) bool {
	return i.DueDate.Before(asOf) && i.Status != InvoicePaid
}

// EffectiveStatus is the display status: OVERDUE when past due, otherwise the
// stored status.
func (i Invoice) EffectiveStatus(asOf time.Time) InvoiceStatus {
	if i.IsOverdue(asOf) {
		return InvoiceOverdue
	}
	return i.Status
}

// SearchText implements Filterable.
func (i Invoice) SearchText() []string {
	return []string{i.Number, i.CustomerName, i.CustomerDocument, strconv.FormatInt(i.ID, 10)}
}

// FilterValue implements Filterable. The status filter matches the stored
// status; overdue is a derived classification surfaced through stats and
// EffectiveStatus, not a storable filter value.
func (i Invoice) FilterValue(key string) (string, bool) {
	switch key {
	case "status":
		return string(i.Status), true
	default:
		return "", false
	}
}

// FilterDate implements Filterable.
func (i Invoice) FilterDate() time.Time { return i.IssueDate }
