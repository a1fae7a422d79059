package core

import (
	"fmt"
	"sync"
	"time"
)

// OrderStore holds the in-memory order collection. Reads return copies;
// mutations go through the store's methods so derived state stays
// consistent. Mutating a missing id is a silent no-op.
type OrderStore struct {
	mu     sync.Mutex
	orders []Order
	nextID int
}

// NewOrderStore seeds the collection and derives the next id from the seed.
func NewOrderStore(seed []Order) *OrderStore {
	s := &OrderStore{orders: make([]Order, len(seed)), nextID: 1}
	copy(s.orders, seed)
	for _, o := range seed {
		var n int
		if _, err := fmt.Sscanf(o.ID, "%d", &n); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

// List returns a copy of all orders in insertion order.
func (s *OrderStore) List() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the order with the given id.
func (s *OrderStore) Get(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Create assigns an id and order number, recomputes totals, starts the
// timeline, and appends the order.
func (s *OrderStore) Create(o Order, at time.Time) Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = fmt.Sprintf("%03d", s.nextID)
	o.OrderNumber = fmt.Sprintf("ORD-%04d", s.nextID)
	s.nextID++
	if o.OrderDate.IsZero() {
		o.OrderDate = at
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	o.RecomputeTotals()
	o.Timeline = []TimelineStep{{Status: o.Status, Date: at, Completed: true}}
	s.orders = append(s.orders, o)
	return o
}

// UpdateStatus transitions an order and appends the step to its timeline.
// A missing id or a repeat of the current status is a no-op.
func (s *OrderStore) UpdateStatus(id string, status OrderStatus, at time.Time) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if s.orders[i].Status != status {
			s.orders[i].Status = status
			s.orders[i].Timeline = append(s.orders[i].Timeline, TimelineStep{
				Status:    status,
				Date:      at,
				Completed: true,
			})
		}
		return s.orders[i], true
	}
	return Order{}, false
}

// Delete removes the order with the given id; unknown ids are a no-op.
func (s *OrderStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return
		}
	}
}

// SearchHits projects the collection into global-search candidates. The hit
// title carries the order number so "Order #ORD-0001" style queries match.
func (s *OrderStore) SearchHits() []SearchHit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SearchHit, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, SearchHit{
			Type:   "order",
			ID:     o.ID,
			Title:  fmt.Sprintf("Order %s", o.OrderNumber),
			Status: string(o.Status),
		})
	}
	return out
}

// CustomerHits projects the distinct order customers into global-search
// candidates for the customers category.
func (s *OrderStore) CustomerHits() []SearchHit {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool, len(s.orders))
	out := make([]SearchHit, 0, len(s.orders))
	for _, o := range s.orders {
		key := o.Customer.Email
		if key == "" {
			key = o.Customer.Name
		}
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, SearchHit{
			Type:  "customer",
			ID:    key,
			Title: o.Customer.Name,
			Email: o.Customer.Email,
		})
	}
	return out
}
