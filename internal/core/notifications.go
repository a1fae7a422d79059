package core

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"inventory-dashboard/internal/localstore"
)

// UnreadPreviewLimit caps the derived unread view shown in the navbar.
const UnreadPreviewLimit = 5

// Notification is one entry of the notification center.
type Notification struct {
	ID          int              `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Timestamp   time.Time        `json:"timestamp"`
	Priority    Priority         `json:"priority"`
	Read        bool             `json:"read"`
}

// NotificationStore holds the canonical notification collection. All reads
// return copies and all mutations go through the store; the unread view is
// always derived from the collection, never cached. Every mutation snapshots
// the whole collection to the local store, and construction restores the
// snapshot, falling back silently to the seed on any load failure.
type NotificationStore struct {
	mu     sync.Mutex
	kv     localstore.KV
	items  []Notification
	nextID int
}

// NewNotificationStore loads the persisted snapshot from kv, or seeds the
// collection when the snapshot is absent or unreadable. kv may be nil for a
// purely in-memory store.
func NewNotificationStore(ctx context.Context, kv localstore.KV, seed []Notification) *NotificationStore {
	s := &NotificationStore{kv: kv}
	s.items = loadNotificationSnapshot(ctx, kv, seed)
	for _, n := range s.items {
		if n.ID >= s.nextID {
			s.nextID = n.ID + 1
		}
	}
	if s.nextID == 0 {
		s.nextID = 1
	}
	return s
}

func loadNotificationSnapshot(ctx context.Context, kv localstore.KV, seed []Notification) []Notification {
	fallback := func() []Notification {
		out := make([]Notification, len(seed))
		copy(out, seed)
		return out
	}
	if kv == nil {
		return fallback()
	}
	raw, ok, err := kv.Get(ctx, localstore.KeyNotifications)
	if err != nil {
		log.Printf("notifications: snapshot load failed, using seed: %v", err)
		return fallback()
	}
	if !ok {
		return fallback()
	}
	var items []Notification
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("notifications: corrupt snapshot, using seed: %v", err)
		return fallback()
	}
	return items
}

// All returns a copy of the full collection in insertion order.
func (s *NotificationStore) All() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Unread returns the derived unread view: the first UnreadPreviewLimit
// unread entries in insertion order.
func (s *NotificationStore) Unread() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, 0, UnreadPreviewLimit)
	for _, n := range s.items {
		if n.Read {
			continue
		}
		out = append(out, n)
		if len(out) == UnreadPreviewLimit {
			break
		}
	}
	return out
}

// UnreadCount returns the total number of unread entries, uncapped.
func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Add appends a notification, assigning it the next id, and returns that id.
func (s *NotificationStore) Add(ctx context.Context, n Notification) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.nextID
	s.nextID++
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	s.items = append(s.items, n)
	s.persistLocked(ctx)
	return n.ID
}

// MarkRead marks the matching entry read. Unknown ids are a no-op and the
// operation is idempotent.
func (s *NotificationStore) MarkRead(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			if !s.items[i].Read {
				s.items[i].Read = true
				s.persistLocked(ctx)
			}
			return
		}
	}
}

// MarkAllRead marks every entry read.
func (s *NotificationStore) MarkAllRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for i := range s.items {
		if !s.items[i].Read {
			s.items[i].Read = true
			changed = true
		}
	}
	if changed {
		s.persistLocked(ctx)
	}
}

// Delete removes the matching entry. Unknown ids are a no-op.
func (s *NotificationStore) Delete(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// ClearAll empties the collection.
func (s *NotificationStore) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return
	}
	s.items = s.items[:0]
	s.persistLocked(ctx)
}

// persistLocked snapshots the collection to the local store. Persistence
// failures are logged and swallowed: the in-memory state stays authoritative
// and the caller never sees a storage error.
func (s *NotificationStore) persistLocked(ctx context.Context) {
	if s.kv == nil {
		return
	}
	raw, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("notifications: snapshot encode failed: %v", err)
		return
	}
	if err := s.kv.Put(ctx, localstore.KeyNotifications, raw); err != nil {
		log.Printf("notifications: snapshot write failed: %v", err)
	}
}
