package sales

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

type mockSaleBackend struct {
	ListSalesFunc  func(ctx context.Context) ([]domain.Sale, error)
	CreateSaleFunc func(ctx context.Context, payload backend.SalePayload) (domain.Sale, error)
	DeleteSaleFunc func(ctx context.Context, id int64) error
}

func (m *mockSaleBackend) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return m.ListSalesFunc(ctx)
}

func (m *mockSaleBackend) CreateSale(ctx context.Context, payload backend.SalePayload) (domain.Sale, error) {
	return m.CreateSaleFunc(ctx, payload)
}

func (m *mockSaleBackend) DeleteSale(ctx context.Context, id int64) error {
	return m.DeleteSaleFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2025, time.June, 18, 15, 0, 0, 0, time.UTC) // Wednesday

func newTestService(t *testing.T, mock *mockSaleBackend) *Service {
	t.Helper()
	return NewService(slog.Default(), mock, clockwork.NewFakeClockAt(testNow), 10)
}

func seed(t *testing.T, svc *Service, mock *mockSaleBackend, sales []domain.Sale) {
	t.Helper()
	mock.ListSalesFunc = func(ctx context.Context) ([]domain.Sale, error) {
		return sales, nil
	}
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("seed load: %v", err)
	}
}
