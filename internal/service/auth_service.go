package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/osa911/clipdesk/internal/identity"
	"github.com/osa911/clipdesk/internal/logging"
	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/repository"
)

// LoginMeta describes the client a session is opened for.
type LoginMeta struct {
	UserAgent string
	IPAddress string
}

// AuthService exchanges identity-provider tokens for local users and sessions.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	verifier identity.Verifier
	ttl      time.Duration
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, verifier identity.Verifier, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		verifier: verifier,
		ttl:      ttl,
	}
}

// Login verifies the ID token, syncs the user profile and opens a session.
func (s *AuthService) Login(ctx context.Context, idToken string, meta LoginMeta) (*models.User, *models.Session, error) {
	id, err := s.verify(ctx, idToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.sync(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	sid, err := newSessionID()
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		SID: sid,
		Data: models.SessionData{
			UserID:    user.ID,
			Provider:  id.Provider,
			UserAgent: meta.UserAgent,
			IPAddress: meta.IPAddress,
			LoginAt:   now,
		},
		Expire: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	logging.GetGlobalLogger().Info("User %s logged in from %s", user.ID, meta.IPAddress)
	return user, session, nil
}

// Logout deletes the session. Unknown sessions are ignored.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}

// SessionUser resolves the user owning an unexpired session.
func (s *AuthService) SessionUser(ctx context.Context, sid string) (*models.User, error) {
	session, err := s.sessions.Get(ctx, sid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, session.Data.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	return user, err
}

// TokenUser resolves a bearer ID token, creating the user on first sight.
func (s *AuthService) TokenUser(ctx context.Context, idToken string) (*models.User, error) {
	id, err := s.verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, id.UID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.sync(ctx, id)
	}
	return user, err
}

func (s *AuthService) verify(ctx context.Context, idToken string) (*identity.Identity, error) {
	if idToken == "" {
		return nil, ErrUnauthenticated
	}
	id, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		logging.GetGlobalLogger().Warn("Rejected ID token: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return id, nil
}

func (s *AuthService) sync(ctx context.Context, id *identity.Identity) (*models.User, error) {
	user, err := s.users.Upsert(ctx, &models.User{
		ID:              id.UID,
		Email:           optional(id.Email),
		FirstName:       optional(id.FirstName),
		LastName:        optional(id.LastName),
		ProfileImageURL: optional(id.PictureURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", storeError(err, "user"))
	}
	return user, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
