package employee

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

type mockEmployeeBackend struct {
	ListEmployeesFunc  func(ctx context.Context) ([]domain.Employee, error)
	CreateEmployeeFunc func(ctx context.Context, payload backend.EmployeePayload) (domain.Employee, error)
	UpdateEmployeeFunc func(ctx context.Context, id int64, payload backend.EmployeePayload) (domain.Employee, error)
	PatchEmployeeFunc  func(ctx context.Context, id int64, fields map[string]any) (domain.Employee, error)
}

func (m *mockEmployeeBackend) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return m.ListEmployeesFunc(ctx)
}

func (m *mockEmployeeBackend) CreateEmployee(ctx context.Context, payload backend.EmployeePayload) (domain.Employee, error) {
	return m.CreateEmployeeFunc(ctx, payload)
}

func (m *mockEmployeeBackend) UpdateEmployee(ctx context.Context, id int64, payload backend.EmployeePayload) (domain.Employee, error) {
	return m.UpdateEmployeeFunc(ctx, id, payload)
}

func (m *mockEmployeeBackend) PatchEmployee(ctx context.Context, id int64, fields map[string]any) (domain.Employee, error) {
	return m.PatchEmployeeFunc(ctx, id, fields)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, mock *mockEmployeeBackend) *Service {
	t.Helper()
	return NewService(slog.Default(), mock, clockwork.NewFakeClockAt(testNow), 10)
}

func seed(t *testing.T, svc *Service, mock *mockEmployeeBackend, employees []domain.Employee) {
	t.Helper()
	mock.ListEmployeesFunc = func(ctx context.Context) ([]domain.Employee, error) {
		return employees, nil
	}
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("seed load: %v", err)
	}
}
