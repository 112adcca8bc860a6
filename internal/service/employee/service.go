// Package employee is the derived-view coordinator for staff records:
// collection, filter state, pagination, soft deactivation, and the workforce
// summary.
package employee

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
	"github.com/dnieto/retailcore/internal/store"
	"github.com/dnieto/retailcore/internal/view"
)

// employeeBackend defines the data-backend operations the employee service
// needs. Satisfied by *backend.Client.
type employeeBackend interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, payload backend.EmployeePayload) (domain.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, payload backend.EmployeePayload) (domain.Employee, error)
	PatchEmployee(ctx context.Context, id int64, fields map[string]any) (domain.Employee, error)
}

// Service coordinates the employee collection and its derived views.
type Service struct {
	*view.State[domain.Employee]

	log       *slog.Logger
	backend   employeeBackend
	employees *store.Collection[domain.Employee]
}

// NewService creates an employee service with an empty collection.
func NewService(logger *slog.Logger, b employeeBackend, clock clockwork.Clock, pageSize int) *Service {
	employees := store.New[domain.Employee]()
	return &Service{
		State:     view.NewState(employees, clock, pageSize),
		log:       logger.With("service", "employee"),
		backend:   b,
		employees: employees,
	}
}

// Load replaces the collection with a fresh backend fetch. On failure the
// previous collection is left untouched.
func (s *Service) Load(ctx context.Context) error {
	employees, err := s.backend.ListEmployees(ctx)
	if err != nil {
		return err
	}
	s.employees.ReplaceAll(employees)
	s.log.DebugContext(ctx, "employees loaded", slog.Int("count", len(employees)))
	return nil
}

// FindEmployee looks up an employee in the collection without touching the
// backend.
func (s *Service) FindEmployee(id int64) (domain.Employee, bool) {
	return s.employees.FindByID(id)
}

// IsEmailUnique reports whether no other employee carries the email address.
// Case-insensitive.
func (s *Service) IsEmailUnique(email string, excludeID int64) bool {
	return store.Unique(s.employees, excludeID, email,
		func(e domain.Employee) string { return e.Email }, true)
}

// IsDocumentUnique reports whether no other employee carries the identity
// document. Exact match.
func (s *Service) IsDocumentUnique(document string, excludeID int64) bool {
	return store.Unique(s.employees, excludeID, document,
		func(e domain.Employee) string { return e.Document }, false)
}
