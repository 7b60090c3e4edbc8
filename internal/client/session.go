package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"blogCPT/internal/models"
)

const (
	userKey  = "blog_user"
	tokenKey = "blog_token"
)

// Session caches the signed-in user and their token in a Store so they
// survive restarts.
type Session struct {
	store  Store
	logger *slog.Logger

	mu    sync.RWMutex
	user  *models.User
	token string
}

// NewSession restores any saved user from store.
func NewSession(store Store, logger *slog.Logger) (*Session, error) {
	s := &Session{store: store, logger: logger}
	if err := s.Restore(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restore loads the saved user and token. A half-saved or unreadable session
// drops both keys and leaves the session signed out.
func (s *Session) Restore() error {
	rawUser, hasUser, err := s.store.Get(userKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	token, hasToken, err := s.store.Get(tokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user, s.token = nil, ""
	if !hasUser && !hasToken {
		return nil
	}
	if !hasUser || !hasToken || token == "" {
		if err := s.store.Delete(userKey, tokenKey); err != nil {
			return fmt.Errorf("clear partial session: %w", err)
		}
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.logger.Warn("discarding corrupt session", "error", err)
		if err := s.store.Delete(userKey, tokenKey); err != nil {
			return fmt.Errorf("clear corrupt session: %w", err)
		}
		return nil
	}

	s.user, s.token = &user, token
	s.logger.Debug("restored session", "email", user.Email)
	return nil
}

func (s *Session) Save(user *models.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(userKey, string(raw)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := s.store.Set(tokenKey, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	copied := *user
	s.user, s.token = &copied, token
	return nil
}

func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user, s.token = nil, ""
	if err := s.store.Delete(userKey, tokenKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// User returns the signed-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}
