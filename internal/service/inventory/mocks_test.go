package inventory

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

type mockProductBackend struct {
	ListProductsFunc  func(ctx context.Context) ([]domain.Product, error)
	CreateProductFunc func(ctx context.Context, payload backend.ProductPayload) (domain.Product, error)
	UpdateProductFunc func(ctx context.Context, id int64, payload backend.ProductPayload) (domain.Product, error)
	PatchProductFunc  func(ctx context.Context, id int64, fields map[string]any) (domain.Product, error)
}

func (m *mockProductBackend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return m.ListProductsFunc(ctx)
}

func (m *mockProductBackend) CreateProduct(ctx context.Context, payload backend.ProductPayload) (domain.Product, error) {
	return m.CreateProductFunc(ctx, payload)
}

func (m *mockProductBackend) UpdateProduct(ctx context.Context, id int64, payload backend.ProductPayload) (domain.Product, error) {
	return m.UpdateProductFunc(ctx, id, payload)
}

func (m *mockProductBackend) PatchProduct(ctx context.Context, id int64, fields map[string]any) (domain.Product, error) {
	return m.PatchProductFunc(ctx, id, fields)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, mock *mockProductBackend) *Service {
	t.Helper()
	return NewService(slog.Default(), mock, clockwork.NewFakeClockAt(testNow), 10)
}

// seed loads the service with the given products through the mock backend.
func seed(t *testing.T, svc *Service, mock *mockProductBackend, products []domain.Product) {
	t.Helper()
	mock.ListProductsFunc = func(ctx context.Context) ([]domain.Product, error) {
		return products, nil
	}
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("seed load: %v", err)
	}
}
