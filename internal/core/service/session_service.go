package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shopcart/internal/core/domain"
	"shopcart/internal/port"
)

// SessionKey is the fixed storage key for the persisted session.
const SessionKey = "shopcart:session"

var ErrEmptyCredentials = errors.New("email and password are required")

// SessionService owns the demo login state. At most one session exists at a
// time; logout removes the stored key entirely rather than writing an empty
// value. The cart is independent and survives logout.
type SessionService struct {
	store   port.KeyValueStore
	current *domain.Session
}

// NewSessionService loads any persisted session from store. A missing or
// undecodable blob means logged out.
func NewSessionService(ctx context.Context, store port.KeyValueStore) *SessionService {
	s := &SessionService{store: store}
	if raw, err := store.Load(ctx, SessionKey); err == nil {
		var sess domain.Session
		if json.Unmarshal([]byte(raw), &sess) == nil && sess.Email != "" {
			s.current = &sess
		}
	}
	return s
}

// Login creates and persists a session for email. This is a demo login: the
// only check is that both fields are non-empty, and the password is neither
// verified against anything nor stored.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if email == "" || password == "" {
		return domain.Session{}, ErrEmptyCredentials
	}

	sess := domain.Session{
		ID:      uuid.NewString(),
		Email:   email,
		LoginAt: time.Now(),
	}

	blob, err := json.Marshal(sess)
	if err != nil {
		return domain.Session{}, fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Save(ctx, SessionKey, string(blob)); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.current = &sess
	return sess, nil
}

// Logout discards the session and removes the stored key.
func (s *SessionService) Logout(ctx context.Context) error {
	s.current = nil
	if err := s.store.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// Current reports the active session, if any.
func (s *SessionService) Current() (domain.Session, bool) {
	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}
