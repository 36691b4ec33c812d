package store

import "sync"

// Store holds the partner's order collection in memory. Orders enter once
// at construction; afterwards only their status field may change. The
// mutex guards against concurrent readers while a status update runs,
// since the HTTP server serves requests in parallel.
type Store struct {
	mu     sync.RWMutex
	orders []Order
}

// New creates a Store over the given orders. The slice is copied so the
// caller cannot alias the store's backing array.
func New(orders []Order) *Store {
	s := &Store{orders: make([]Order, len(orders))}
	copy(s.orders, orders)
	return s
}

// List returns a copy of all orders in insertion order.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the order with the given id.
func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Len returns the number of orders held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// UpdateStatus replaces the status of the order with the given id and
// returns the updated order. An unknown id is a silent no-op: ok is
// false and nothing changes. All other fields are left untouched.
func (s *Store) UpdateStatus(id, status string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], true
		}
	}
	return Order{}, false
}
