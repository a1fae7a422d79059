package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"inventory-dashboard/internal/localstore"
)

// Theme values persisted per user.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeStore persists each user's theme preference in the local store.
// Absence of a stored value is the valid initial state and yields the
// light default.
type ThemeStore struct {
	kv localstore.KV
}

// NewThemeStore constructs a theme store over kv; kv may be nil, in which
// case preferences only live for the process lifetime defaults.
func NewThemeStore(kv localstore.KV) *ThemeStore {
	return &ThemeStore{kv: kv}
}

// Get returns the user's theme, defaulting to light when unset or
// unreadable.
func (s *ThemeStore) Get(ctx context.Context, userID string) string {
	if s.kv == nil {
		return ThemeLight
	}
	raw, ok, err := s.kv.Get(ctx, localstore.ThemeKey(userID))
	if err != nil {
		log.Printf("theme: load failed, using default: %v", err)
		return ThemeLight
	}
	if !ok {
		return ThemeLight
	}
	if theme := strings.TrimSpace(string(raw)); theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Set stores the user's theme. Only the two known values are accepted.
func (s *ThemeStore) Set(ctx context.Context, userID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Put(ctx, localstore.ThemeKey(userID), []byte(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Toggle flips the user's theme and returns the new value.
func (s *ThemeStore) Toggle(ctx context.Context, userID string) (string, error) {
	next := ThemeDark
	if s.Get(ctx, userID) == ThemeDark {
		next = ThemeLight
	}
	if err := s.Set(ctx, userID, next); err != nil {
		return "", err
	}
	return next, nil
}
