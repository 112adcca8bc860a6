package accounting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dnieto/retailcore/internal/domain"
)

// BucketStats counts the invoices in one payment-state bucket. Amount is the
// outstanding balance for open buckets and the settled total for the paid
// bucket.
type BucketStats struct {
	Count  int
	Amount decimal.Decimal
}

// PeriodStats counts the invoices issued inside one calendar bucket.
type PeriodStats struct {
	Count int
	Total decimal.Decimal
}

// Stats is the receivables summary snapshot as of a given instant.
type Stats struct {
	Pending BucketStats
	Partial BucketStats
	Paid    BucketStats

	OverdueInvoices int

	Month PeriodStats
	Year  PeriodStats
}

// Aggregate computes the receivables summary over a record snapshot. The
// overdue count is derived from due dates as of asOf, never read from stored
// statuses. Calendar buckets go by issue date.
func Aggregate(invoices []domain.Invoice, asOf time.Time) Stats {
	monthStart := domain.StartOfMonth(asOf)
	yearStart := domain.StartOfYear(asOf)

	stats := Stats{
		Pending: BucketStats{Amount: decimal.Zero},
		Partial: BucketStats{Amount: decimal.Zero},
		Paid:    BucketStats{Amount: decimal.Zero},
		Month:   PeriodStats{Total: decimal.Zero},
		Year:    PeriodStats{Total: decimal.Zero},
	}

	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoicePending:
			stats.Pending.Count++
			stats.Pending.Amount = stats.Pending.Amount.Add(inv.Balance)
		case domain.InvoicePartial:
			stats.Partial.Count++
			stats.Partial.Amount = stats.Partial.Amount.Add(inv.Balance)
		case domain.InvoicePaid:
			stats.Paid.Count++
			stats.Paid.Amount = stats.Paid.Amount.Add(inv.Total)
		}

		if inv.IsOverdue(asOf) {
			stats.OverdueInvoices++
		}

		if !inv.IssueDate.Before(monthStart) {
			stats.Month.Count++
			stats.Month.Total = stats.Month.Total.Add(inv.Total)
		}
		if !inv.IssueDate.Before(yearStart) {
			stats.Year.Count++
			stats.Year.Total = stats.Year.Total.Add(inv.Total)
		}
	}

	return stats
}

// Stats aggregates the full collection as of the injected clock's now.
func (s *Service) Stats() Stats {
	return Aggregate(s.invoices.All(), s.clock.Now())
}
