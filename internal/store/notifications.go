package store

import (
	"sync"
	"time"
)

// Notification is one entry in the partner's notification feed.
type Notification struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationStore holds the feed in memory. Entries are seeded at
// startup; the only mutation is marking everything read.
type NotificationStore struct {
	mu    sync.RWMutex
	items []Notification
}

func NewNotificationStore(items []Notification) *NotificationStore {
	s := &NotificationStore{items: make([]Notification, len(items))}
	copy(s.items, items)
	return s
}

// List returns a copy of the feed, newest first as seeded.
func (s *NotificationStore) List() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// HasUnread reports whether any entry is still unread.
func (s *NotificationStore) HasUnread() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.items {
		if !n.Read {
			return true
		}
	}
	return false
}

// MarkAllRead flags every entry as read.
func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
}
