package core

import (
	"sync"
	"time"
)

// StockStore holds the in-memory stock collection. Every mutation recomputes
// the derived status through the StockItem methods, so a stored status can
// never drift from the quantity/reorder-point rule.
type StockStore struct {
	mu    sync.Mutex
	items []StockItem
}

// NewStockStore seeds the collection, normalizing each item's derived
// status in case the seed carries a stale one.
func NewStockStore(seed []StockItem) *StockStore {
	s := &StockStore{items: make([]StockItem, len(seed))}
	copy(s.items, seed)
	for i := range s.items {
		s.items[i].Status = DeriveStockStatus(s.items[i].Quantity, s.items[i].ReorderPoint)
	}
	return s
}

// List returns a copy of all stock items in insertion order.
func (s *StockStore) List() []StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StockItem, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the stock item with the given id.
func (s *StockStore) Get(id string) (StockItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return StockItem{}, false
}

// Restock applies a goods receipt to the matching item and returns the
// updated record. Unknown ids are a no-op reported through the bool.
func (s *StockStore) Restock(id string, qty int, at time.Time) (StockItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Restock(qty, at)
			return s.items[i], true
		}
	}
	return StockItem{}, false
}

// Deduct applies a stock decrease to the matching item and returns the
// updated record. Unknown ids are a no-op reported through the bool.
func (s *StockStore) Deduct(id string, qty int, at time.Time) (StockItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Deduct(qty, at)
			return s.items[i], true
		}
	}
	return StockItem{}, false
}

// LowStock returns the items at or below their reorder point, the set the
// Stock page surfaces as restock alerts.
func (s *StockStore) LowStock() []StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StockItem, 0, len(s.items))
	for _, it := range s.items {
		if it.Status != StockOptimal {
			out = append(out, it)
		}
	}
	return out
}
