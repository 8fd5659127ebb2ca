// Package cart holds the authoritative session-side view of the items a
// customer intends to buy. Every mutation enforces the stock ceiling known at
// that moment and is written through to durable storage before returning.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/odualeSamsonSolomon/JoTech/models"
)

// Store owns the cart lines for one session. Mutations are serialized by a
// mutex so two near-simultaneous adds for the same product cannot jointly
// pass the stock-ceiling check.
//
// The Store never performs network I/O; the catalog it validates against is
// passed in by the caller.
type Store struct {
	mu      sync.Mutex
	lines   []models.CartLine
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load replaces the in-memory cart with the persisted state. It fails soft:
// an absent slot, a storage error or malformed JSON all yield an empty cart
// rather than an error. Called once when the session starts.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil

	data, err := s.storage.Read(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotPersisted) {
			zap.L().Warn("cart: failed to read persisted cart, starting empty", zap.Error(err))
		}
		return
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		zap.L().Warn("cart: persisted cart is unreadable, starting empty", zap.Error(err))
		return
	}
	s.lines = lines
}

// AddItem adds one unit of the given product to the cart, validated against
// the supplied catalog. Unknown ids, zero stock and lines already at the
// stock ceiling are silent no-ops: the storefront disables those affordances,
// so there is nothing actionable to report. After a structural change the
// full cart is persisted.
func (s *Store) AddItem(ctx context.Context, productID string, catalog models.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := catalog[productID]
	if !ok || product.Stock == 0 {
		return
	}

	for i := range s.lines {
		if s.lines[i].ProductID != productID {
			continue
		}
		if s.lines[i].Qty >= product.Stock {
			// Clamp at the ceiling, not an error.
			return
		}
		s.lines[i].Qty++
		s.persist(ctx)
		return
	}

	s.lines = append(s.lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       1,
	})
	s.persist(ctx)
}

// TotalQuantity returns the sum of all line quantities.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.lines {
		total += l.Qty
	}
	return total
}

// TotalAmount sums price*qty over all lines using the frozen per-line price,
// so the amount shown at review time is immune to concurrent catalog price
// changes.
func (s *Store) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// Lines returns a copy of the current cart lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine(nil), s.lines...)
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Clear empties the cart and persists the empty state. Called after a
// confirmed successful order submission.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist(ctx)
}

// persist writes the full cart through to storage. Best-effort: on failure
// the in-memory cart stays authoritative for the rest of the session, it just
// may not survive a restart. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	lines := s.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		zap.L().Warn("cart: failed to serialize cart", zap.Error(err))
		return
	}
	if err := s.storage.Write(ctx, data); err != nil {
		zap.L().Warn("cart: failed to persist cart", zap.Error(err))
	}
}
