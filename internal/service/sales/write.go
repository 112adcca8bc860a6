package sales

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dnieto/retailcore/internal/domain"
)

// RegisterSale validates the input, derives the totals, asks the backend to
// create the sale, and inserts the confirmed record into the collection.
func (s *Service) RegisterSale(ctx context.Context, input SaleInput) (domain.Sale, error) {
	if err := input.validate(); err != nil {
		return domain.Sale{}, err
	}

	created, err := s.backend.CreateSale(ctx, input.payload())
	if err != nil {
		return domain.Sale{}, fmt.Errorf("register sale: %w", err)
	}

	if err := s.sales.Insert(created); err != nil {
		return domain.Sale{}, fmt.Errorf("register sale: insert %d: %w", created.ID, err)
	}

	s.log.InfoContext(ctx, "sale registered",
		slog.Int64("id", created.ID),
		slog.String("total", created.Total.String()),
		slog.Int("items", created.TotalItems),
	)
	return created, nil
}

// CancelSale hard-removes a sale: first the backend delete, then the local
// removal once confirmed.
func (s *Service) CancelSale(ctx context.Context, id int64) error {
	if _, ok := s.sales.FindByID(id); !ok {
		return fmt.Errorf("cancel sale %d: %w", id, domain.ErrNotFound)
	}

	if err := s.backend.DeleteSale(ctx, id); err != nil {
		return fmt.Errorf("cancel sale %d: %w", id, err)
	}

	if err := s.sales.Remove(id); err != nil {
		return fmt.Errorf("cancel sale %d: remove: %w", id, err)
	}

	s.log.InfoContext(ctx, "sale cancelled", slog.Int64("id", id))
	return nil
}
