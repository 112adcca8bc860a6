// Package sales is the derived-view coordinator for point-of-sale
// transactions. The visible list is sorted newest-first after filtering;
// cancelling a sale removes it outright.
package sales

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
	"github.com/dnieto/retailcore/internal/store"
	"github.com/dnieto/retailcore/internal/view"
)

// saleBackend defines the data-backend operations the sales service needs.
// Satisfied by *backend.Client.
type saleBackend interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	CreateSale(ctx context.Context, payload backend.SalePayload) (domain.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
}

// Service coordinates the sales collection and its derived views.
type Service struct {
	*view.State[domain.Sale]

	log     *slog.Logger
	backend saleBackend
	clock   clockwork.Clock
	sales   *store.Collection[domain.Sale]
}

// NewService creates a sales service with an empty collection.
func NewService(logger *slog.Logger, b saleBackend, clock clockwork.Clock, pageSize int) *Service {
	sales := store.New[domain.Sale]()
	return &Service{
		State: view.NewState(sales, clock, pageSize,
			view.WithSort[domain.Sale](func(a, b domain.Sale) bool {
				return a.CreatedAt.After(b.CreatedAt)
			})),
		log:     logger.With("service", "sales"),
		backend: b,
		clock:   clock,
		sales:   sales,
	}
}

// Load replaces the collection with a fresh backend fetch. On failure the
// previous collection is left untouched.
func (s *Service) Load(ctx context.Context) error {
	sales, err := s.backend.ListSales(ctx)
	if err != nil {
		return err
	}
	s.sales.ReplaceAll(sales)
	s.log.DebugContext(ctx, "sales loaded", slog.Int("count", len(sales)))
	return nil
}

// FindSale looks up a sale in the collection without touching the backend.
func (s *Service) FindSale(id int64) (domain.Sale, bool) {
	return s.sales.FindByID(id)
}
