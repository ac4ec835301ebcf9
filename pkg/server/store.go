package server

import (
	"sync"

	"github.com/grooveshop/storefront/pkg/types"
)

// ProductStore is the in-memory catalog. Insertion order is preserved
// so the featured sort has a stable base ordering.
type ProductStore struct {
	mu    sync.RWMutex
	order []string
	byId  map[string]*types.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{byId: make(map[string]*types.Product)}
}

// UpsertProducts inserts or replaces products. New ids go to the end of
// the base ordering; existing ids keep their slot.
func (s *ProductStore) UpsertProducts(items []types.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range items {
		item := items[i]
		if item.Id == "" {
			continue
		}
		if _, ok := s.byId[item.Id]; !ok {
			s.order = append(s.order, item.Id)
		}
		s.byId[item.Id] = &item
	}
}

func (s *ProductStore) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byId[id]; !ok {
		return
	}
	delete(s.byId, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Product implements the lookup used by the cart quick-add path.
func (s *ProductStore) Product(id string) (*types.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byId[id]
	if !ok {
		return nil, false
	}
	copied := *p
	return &copied, true
}

// Products returns a snapshot of the catalog in base order.
func (s *ProductStore) Products() []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Product, 0, len(s.order))
	for _, id := range s.order {
		if p, ok := s.byId[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}

func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byId)
}
