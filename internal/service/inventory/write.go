package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dnieto/retailcore/internal/domain"
)

// CreateProduct validates the input, asks the backend to create the product,
// and inserts the confirmed record into the collection. The in-memory state
// is only touched after the backend reports success.
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (domain.Product, error) {
	if err := input.validate(); err != nil {
		return domain.Product{}, err
	}
	if !s.IsCodeUnique(input.Code, 0) {
		return domain.Product{}, domain.NewValidationError("code", "already in use")
	}

	created, err := s.backend.CreateProduct(ctx, input.payload())
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	if err := s.products.Insert(created); err != nil {
		return domain.Product{}, fmt.Errorf("create product: insert %d: %w", created.ID, err)
	}

	s.log.InfoContext(ctx, "product created",
		slog.Int64("id", created.ID),
		slog.String("code", created.Code),
	)
	return created, nil
}

// UpdateProduct validates the input, sends the full replacement to the
// backend, and swaps the confirmed record into the collection.
func (s *Service) UpdateProduct(ctx context.Context, id int64, input ProductInput) (domain.Product, error) {
	if _, ok := s.products.FindByID(id); !ok {
		return domain.Product{}, fmt.Errorf("update product %d: %w", id, domain.ErrNotFound)
	}
	if err := input.validate(); err != nil {
		return domain.Product{}, err
	}
	if !s.IsCodeUnique(input.Code, id) {
		return domain.Product{}, domain.NewValidationError("code", "already in use")
	}

	updated, err := s.backend.UpdateProduct(ctx, id, input.payload())
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}

	if err := s.products.Replace(id, updated); err != nil {
		return domain.Product{}, fmt.Errorf("update product %d: replace: %w", id, err)
	}

	s.log.InfoContext(ctx, "product updated", slog.Int64("id", id))
	return updated, nil
}

// DeactivateProduct soft-deletes a product by flipping its active flag on the
// backend and mirroring the confirmed record locally. The record stays in the
// collection.
func (s *Service) DeactivateProduct(ctx context.Context, id int64) (domain.Product, error) {
	if _, ok := s.products.FindByID(id); !ok {
		return domain.Product{}, fmt.Errorf("deactivate product %d: %w", id, domain.ErrNotFound)
	}

	patched, err := s.backend.PatchProduct(ctx, id, map[string]any{"isActive": false})
	if err != nil {
		return domain.Product{}, fmt.Errorf("deactivate product %d: %w", id, err)
	}

	if err := s.products.Replace(id, patched); err != nil {
		return domain.Product{}, fmt.Errorf("deactivate product %d: replace: %w", id, err)
	}

	s.log.InfoContext(ctx, "product deactivated", slog.Int64("id", id))
	return patched, nil
}
