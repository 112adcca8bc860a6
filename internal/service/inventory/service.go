// Package inventory is the derived-view coordinator for products: it owns the
// canonical product collection, the current filter state, and the pagination
// cursor, and recomputes the visible subset and the stock statistics from the
// collection on every read.
package inventory

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/domain"
	"github.com/dnieto/retailcore/internal/store"
	"github.com/dnieto/retailcore/internal/view"
)

// productBackend defines the data-backend operations the inventory service
// needs. Satisfied by *backend.Client.
type productBackend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, payload backend.ProductPayload) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, payload backend.ProductPayload) (domain.Product, error)
	PatchProduct(ctx context.Context, id int64, fields map[string]any) (domain.Product, error)
}

// Service coordinates the product collection and its derived views.
type Service struct {
	*view.State[domain.Product]

	log      *slog.Logger
	backend  productBackend
	products *store.Collection[domain.Product]
}

// NewService creates an inventory service with an empty collection.
func NewService(logger *slog.Logger, b productBackend, clock clockwork.Clock, pageSize int) *Service {
	products := store.New[domain.Product]()
	return &Service{
		State:    view.NewState(products, clock, pageSize),
		log:      logger.With("service", "inventory"),
		backend:  b,
		products: products,
	}
}

// Load replaces the collection with a fresh backend fetch. On failure the
// previous collection is left untouched.
func (s *Service) Load(ctx context.Context) error {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return err
	}
	s.products.ReplaceAll(products)
	s.log.DebugContext(ctx, "products loaded", slog.Int("count", len(products)))
	return nil
}

// FindProduct looks up a product in the collection without touching the
// backend.
func (s *Service) FindProduct(id int64) (domain.Product, bool) {
	return s.products.FindByID(id)
}

// IsCodeUnique reports whether no other product carries the reference code.
// Case-insensitive; a client-side pre-check only.
func (s *Service) IsCodeUnique(code string, excludeID int64) bool {
	return store.Unique(s.products, excludeID, code,
		func(p domain.Product) string { return p.Code }, true)
}
