package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dnieto/retailcore/internal/domain"
)

// CreateEmployee validates the input, checks email and document collisions
// against the collection, and inserts the backend-confirmed record. The
// in-memory state is only touched after the backend reports success.
func (s *Service) CreateEmployee(ctx context.Context, input EmployeeInput) (domain.Employee, error) {
	if err := input.validate(); err != nil {
		return domain.Employee{}, err
	}
	if !s.IsEmailUnique(input.Email, 0) {
		return domain.Employee{}, domain.NewValidationError("email", "already in use")
	}
	if !s.IsDocumentUnique(input.Document, 0) {
		return domain.Employee{}, domain.NewValidationError("document", "already in use")
	}

	created, err := s.backend.CreateEmployee(ctx, input.payload())
	if err != nil {
		return domain.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	if err := s.employees.Insert(created); err != nil {
		return domain.Employee{}, fmt.Errorf("create employee: insert %d: %w", created.ID, err)
	}

	s.log.InfoContext(ctx, "employee created",
		slog.Int64("id", created.ID),
		slog.String("document", created.Document),
	)
	return created, nil
}

// UpdateEmployee validates the input, sends the full replacement to the
// backend, and swaps the confirmed record into the collection.
func (s *Service) UpdateEmployee(ctx context.Context, id int64, input EmployeeInput) (domain.Employee, error) {
	if _, ok := s.employees.FindByID(id); !ok {
		return domain.Employee{}, fmt.Errorf("update employee %d: %w", id, domain.ErrNotFound)
	}
	if err := input.validate(); err != nil {
		return domain.Employee{}, err
	}
	if !s.IsEmailUnique(input.Email, id) {
		return domain.Employee{}, domain.NewValidationError("email", "already in use")
	}
	if !s.IsDocumentUnique(input.Document, id) {
		return domain.Employee{}, domain.NewValidationError("document", "already in use")
	}

	updated, err := s.backend.UpdateEmployee(ctx, id, input.payload())
	if err != nil {
		return domain.Employee{}, fmt.Errorf("update employee %d: %w", id, err)
	}

	if err := s.employees.Replace(id, updated); err != nil {
		return domain.Employee{}, fmt.Errorf("update employee %d: replace: %w", id, err)
	}

	s.log.InfoContext(ctx, "employee updated", slog.Int64("id", id))
	return updated, nil
}

// DeactivateEmployee soft-deletes an employee by flipping the status to
// INACTIVE on the backend and mirroring the confirmed record locally. The
// record stays in the collection.
func (s *Service) DeactivateEmployee(ctx context.Context, id int64) (domain.Employee, error) {
	if _, ok := s.employees.FindByID(id); !ok {
		return domain.Employee{}, fmt.Errorf("deactivate employee %d: %w", id, domain.ErrNotFound)
	}

	patched, err := s.backend.PatchEmployee(ctx, id, map[string]any{"status": string(domain.EmployeeInactive)})
	if err != nil {
		return domain.Employee{}, fmt.Errorf("deactivate employee %d: %w", id, err)
	}

	if err := s.employees.Replace(id, patched); err != nil {
		return domain.Employee{}, fmt.Errorf("deactivate employee %d: replace: %w", id, err)
	}

	s.log.InfoContext(ctx, "employee deactivated", slog.Int64("id", id))
	return patched, nil
}
