package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inventory-dashboard/internal/localstore"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike so login failures do not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// User is a dashboard account. PasswordHash never crosses the API boundary;
// adapters expose Profile instead.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the API-safe view of a user.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Role        string `json:"role"`
}

// Profile returns the API-safe view of u.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, PhotoURL: u.PhotoURL, Role: u.Role}
}

// UserStore manages accounts in the local store under a single snapshot
// key, mirroring how the rest of the persisted state is kept.
type UserStore struct {
	mu    sync.Mutex
	kv    localstore.KV
	users map[string]User // keyed by lowercased email
}

// NewUserStore loads the persisted account snapshot; a missing or
// unreadable snapshot starts empty.
func NewUserStore(ctx context.Context, kv localstore.KV) *UserStore {
	s := &UserStore{kv: kv, users: make(map[string]User)}
	if kv == nil {
		return s
	}
	raw, ok, err := kv.Get(ctx, localstore.KeyUsers)
	if err != nil || !ok {
		if err != nil {
			log.Printf("users: snapshot load failed, starting empty: %v", err)
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.users); err != nil {
		log.Printf("users: corrupt snapshot, starting empty: %v", err)
		s.users = make(map[string]User)
	}
	return s
}

// SignUp creates an account with a bcrypt-hashed password.
func (s *UserStore) SignUp(ctx context.Context, email, password, displayName string) (*User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return nil, fmt.Errorf("account %s already exists", email)
	}
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		Role:         "Admin",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.users[email] = u
	s.persistLocked(ctx)
	return &u, nil
}

// Authenticate verifies credentials and returns the account.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*User, error) {
	s.mu.Lock()
	u, ok := s.users[normalizeEmail(email)]
	s.mu.Unlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// GetByID returns the account with the given id.
func (s *UserStore) GetByID(_ context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user id=%s not found", id)
}

// ResetPassword replaces the password of an existing account. The reset
// token flow lives at the adapter boundary; unknown emails are reported so
// the endpoint can still answer generically.
func (s *UserStore) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = normalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return fmt.Errorf("account %s not found", email)
	}
	u.PasswordHash = string(hash)
	s.users[email] = u
	s.persistLocked(ctx)
	return nil
}

// UpdateProfile overwrites the mutable profile fields of an account.
func (s *UserStore) UpdateProfile(ctx context.Context, id, displayName, photoURL string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, u := range s.users {
		if u.ID != id {
			continue
		}
		if displayName != "" {
			u.DisplayName = displayName
		}
		if photoURL != "" {
			u.PhotoURL = photoURL
		}
		s.users[email] = u
		s.persistLocked(ctx)
		return &u, nil
	}
	return nil, fmt.Errorf("user id=%s not found", id)
}

func (s *UserStore) persistLocked(ctx context.Context) {
	if s.kv == nil {
		return
	}
	raw, err := json.Marshal(s.users)
	if err != nil {
		log.Printf("users: snapshot encode failed: %v", err)
		return
	}
	if err := s.kv.Put(ctx, localstore.KeyUsers, raw); err != nil {
		log.Printf("users: snapshot write failed: %v", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
