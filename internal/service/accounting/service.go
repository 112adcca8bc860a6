// Package accounting is the derived-view coordinator for supplier invoices:
// collection, filter state, pagination, payment registration, and the
// receivables summary.
package accounting

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
	"github.com/dnieto/retailcore/internal/store"
	"github.com/dnieto/retailcore/internal/view"
)

// invoiceBackend defines the data-backend operations the accounting service
// needs. Satisfied by *backend.Client.
type invoiceBackend interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	CreateInvoice(ctx context.Context, payload backend.InvoicePayload) (domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, payload backend.InvoicePayload) (domain.Invoice, error)
}

// Service coordinates the invoice collection and its derived views.
type Service struct {
	*view.State[domain.Invoice]

	log      *slog.Logger
	backend  invoiceBackend
	clock    clockwork.Clock
	invoices *store.Collection[domain.Invoice]
}

// NewService creates an accounting service with an empty collection.
func NewService(logger *slog.Logger, b invoiceBackend, clock clockwork.Clock, pageSize int) *Service {
	invoices := store.New[domain.Invoice]()
	return &Service{
		State:    view.NewState(invoices, clock, pageSize),
		log:      logger.With("service", "accounting"),
		backend:  b,
		clock:    clock,
		invoices: invoices,
	}
}

// Load replaces the collection with a fresh backend fetch. On failure the
// previous collection is left untouched.
func (s *Service) Load(ctx context.Context) error {
	invoices, err := s.backend.ListInvoices(ctx)
	if err != nil {
		return err
	}
	s.invoices.ReplaceAll(invoices)
	s.log.DebugContext(ctx, "invoices loaded", slog.Int("count", len(invoices)))
	return nil
}

// FindInvoice looks up an invoice in the collection without touching the
// backend.
func (s *Service) FindInvoice(id int64) (domain.Invoice, bool) {
	return s.invoices.FindByID(id)
}

// IsNumberUnique reports whether no other invoice carries the number. Exact
// match; invoice numbers are treated as case-sensitive identifiers.
func (s *Service) IsNumberUnique(number string, excludeID int64) bool {
	return store.Unique(s.invoices, excludeID, number,
		func(inv domain.Invoice) string { return inv.Number }, false)
}
