// Package view materializes the filtered, paginated projection of one
// domain's collection. The projection is recomputed from the collection on
// every read, so it can never be stale relative to the last completed
// mutation; the only cached state is the filter spec and the pagination
// cursor. Any change to the filter spec resets the cursor to page 1.
package view

import (
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dnieto/retailcore/internal/domain"
	"github.com/dnieto/retailcore/internal/filter"
	"github.com/dnieto/retailcore/internal/store"
)

// Record is a repository record the predicate engine can evaluate.
type Record interface {
	store.Record
	domain.Filterable
}

// Option configures a State.
type Option[T Record] func(*State[T])

// WithSort applies a fixed ordering to the filtered projection. The sort is
// stable, so records the comparison ties keep their collection order.
func WithSort[T Record](less func(a, b T) bool) Option[T] {
	return func(s *State[T]) { s.less = less }
}


// State holds the filter spec and pagination cursor for one collection.
type State[T Record] struct {
	coll  *store.Collection[T]
	clock clockwork.Clock
	less  func(a, b T) bool

	mu      sync.Mutex
	spec    domain.FilterSpec
	page    int
	size    int
	maxSize int
}

// NewState creates a view over the collection, starting at page 1 with no
// filters.
func NewState[T Record](coll *store.Collection[T], clock clockwork.Clock, pageSize int, opts ...Option[T]) *State[T] {
	s := &State[T]{coll: coll, clock: clock, page: 1, size: pageSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetSearch updates the free-text term and resets to page 1.
func (s *State[T]) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.Search = term
	s.page = 1
}

// SetFilter sets a named field filter and resets to page 1. An empty value
// clears the key.
func (s *State[T]) SetFilter(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = s.spec.WithField(key, value)
	s.page = 1
}

// SetDateRange selects a relative date window and resets to page 1.
func (s *State[T]) SetDateRange(r domain.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.Range = r
	s.spec.From, s.spec.To = time.Time{}, time.Time{}
	s.page = 1
}

// SetCustomRange selects an inclusive [from, to] window and resets to page 1.
func (s *State[T]) SetCustomRange(from, to time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.Range = domain.RangeCustom
	s.spec.From, s.spec.To = from, to
	s.page = 1
}

// ClearFilters drops every constraint and resets to page 1.
func (s *State[T]) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = domain.FilterSpec{}
	s.page = 1
}

// Spec returns a copy of the current filter spec.
func (s *State[T]) Spec() domain.FilterSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec
}

// SetPage moves the pagination cursor. Values below 1 clamp to 1.
func (s *State[T]) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.page = n
}

// CurrentPage returns the 1-indexed pagination cursor.
func (s *State[T]) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// PageSize returns the configured page size.
func (s *State[T]) PageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// LimitPageSize caps the page size a caller can request through Page. Zero
// removes the cap.
func (s *State[T]) LimitPageSize(max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxSize = max
}

// Filtered applies the current spec to a fresh snapshot of the collection,
// preserving collection order unless a sort was configured.
func (s *State[T]) Filtered() []T {
	spec := s.Spec()
	kept := filter.Apply(s.coll.All(), spec, s.clock.Now())
	if s.less != nil {
		sort.SliceStable(kept, func(i, j int) bool { return s.less(kept[i], kept[j]) })
	}
	return kept
}

// Page slices the filtered projection into the given 1-indexed page.
// Out-of-range pages yield an empty slice, never an error.
func (s *State[T]) Page(n, size int) []T {
	if n < 1 || size < 1 {
		return nil
	}
	s.mu.Lock()
	if s.maxSize > 0 && size > s.maxSize {
		size = s.maxSize
	}
	s.mu.Unlock()
	kept := s.Filtered()
	start := (n - 1) * size
	if start >= len(kept) {
		return []T{}
	}
	end := start + size
	if end > len(kept) {
		end = len(kept)
	}
	return kept[start:end]
}

// View returns the page at the current cursor with the configured page size.
func (s *State[T]) View() []T {
	s.mu.Lock()
	page, size := s.page, s.size
	s.mu.Unlock()
	return s.Page(page, size)
}
