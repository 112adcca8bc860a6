package accounting

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockInvoiceBackend struct {
	ListInvoicesFunc  func(ctx context.Context) ([]domain.Invoice, error)
	CreateInvoiceFunc func(ctx context.Context, payload backend.InvoicePayload) (domain.Invoice, error)
	UpdateInvoiceFunc func(ctx context.Context, id int64, payload backend.InvoicePayload) (domain.Invoice, error)
}

func (m *mockInvoiceBackend) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return m.ListInvoicesFunc(ctx)
}

func (m *mockInvoiceBackend) CreateInvoice(ctx context.Context, payload backend.InvoicePayload) (domain.Invoice, error) {
	return m.CreateInvoiceFunc(ctx, payload)
}

func (m *mockInvoiceBackend) UpdateInvoice(ctx context.Context, id int64, payload backend.InvoicePayload) (domain.Invoice, error) {
	return m.UpdateInvoiceFunc(ctx, id, payload)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, mock *mockInvoiceBackend) *Service {
	t.Helper()
	return NewService(slog.Default(), mock, clockwork.NewFakeClockAt(testNow), 10)
}

func seed(t *testing.T, svc *Service, mock *mockInvoiceBackend, invoices []domain.Invoice) {
	t.Helper()
	mock.ListInvoicesFunc = func(ctx context.Context) ([]domain.Invoice, error) {
		return invoices, nil
	}
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("seed load: %v", err)
	}
}
