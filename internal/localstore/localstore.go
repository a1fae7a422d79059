// Package localstore provides the durable key-value storage behind the
// dashboard's persisted state: notification snapshots, theme preferences,
// and user records. Values are JSON-serialized blobs; a missing key is a
// valid initial state, never an error.
package localstore

import "context"

// KV is the storage contract. Get reports (value, found, error); absence is
// found=false with a nil error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Well-known keys.
const (
	KeyNotifications = "notifications"
	KeyUsers         = "users"
	ThemeKeyPrefix   = "theme:"
)

// ThemeKey returns the storage key for one user's theme preference.
func ThemeKey(userID string) string { return ThemeKeyPrefix + userID }
