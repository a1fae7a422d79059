package core

import (
	"fmt"
	"sync"
)

// ProductStore holds the in-memory product catalog.
type ProductStore struct {
	mu       sync.Mutex
	products []Product
	nextID   int
}

// NewProductStore seeds the catalog and derives the next id from the seed.
func NewProductStore(seed []Product) *ProductStore {
	s := &ProductStore{products: make([]Product, len(seed)), nextID: 1}
	copy(s.products, seed)
	for _, p := range seed {
		var n int
		if _, err := fmt.Sscanf(p.ID, "p%d", &n); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

// List returns a copy of the catalog in insertion order.
func (s *ProductStore) List() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *ProductStore) Get(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Create assigns an id and appends the product.
func (s *ProductStore) Create(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = fmt.Sprintf("p%03d", s.nextID)
	s.nextID++
	s.products = append(s.products, p)
	return p
}

// Update replaces the mutable fields of the matching product. Unknown ids
// are a no-op reported through the bool.
func (s *ProductStore) Update(id string, p Product) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p.ID = id
		s.products[i] = p
		return p, true
	}
	return Product{}, false
}

// SetStock sets the on-hand quantity shown on the product card. Unknown ids
// are a no-op.
func (s *ProductStore) SetStock(id string, stock int) {
	if stock < 0 {
		stock = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock = stock
			return
		}
	}
}

// Delete removes the product with the given id; unknown ids are a no-op.
func (s *ProductStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// SearchHits projects the catalog into global-search candidates.
func (s *ProductStore) SearchHits() []SearchHit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SearchHit, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, SearchHit{Type: "product", ID: p.ID, Title: p.Name})
	}
	return out
}
