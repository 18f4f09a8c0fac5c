package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/you/credsvc/domain"
)

// SessionServiceImpl implements domain.SessionService.
type SessionServiceImpl struct {
	sessions domain.SessionRepository
	users    domain.UserRepository
	now      func() int64
}

// NewSessionService creates a new session service.
func NewSessionService(sessions domain.SessionRepository, users domain.UserRepository) *SessionServiceImpl {
	return &SessionServiceImpl{
		sessions: sessions,
		users:    users,
		now:      unixNow,
	}
}

// Create mints an opaque bearer token valid for maxAgeDays from now. The
// caller owns transport (cookie, header); possession of the token is
// authentication for the owning user until expiry.
func (s *SessionServiceImpl) Create(ctx context.Context, userID uint, maxAgeDays int) (string, error) {
	token, err := randomHexToken()
	if err != nil {
		return "", err
	}

	session := &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.now() + int64(maxAgeDays)*86400,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

// Resolve maps a presented token to its owning user's public fields.
// Expired sessions are deleted on this read path and reported as not found;
// absent and expired are the same observable state. The delete is safe to
// race, removing an already-removed row is a no-op.
func (s *SessionServiceImpl) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.now() > session.ExpiresAt {
		if err := s.sessions.Delete(ctx, token); err != nil {
			return nil, err
		}
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}

// Delete revokes a session unconditionally. Deleting a missing token is a
// no-op, not an error.
func (s *SessionServiceImpl) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// PurgeExpired is a hygiene sweep. Lazy deletion on Resolve already keeps
// correctness without it.
func (s *SessionServiceImpl) PurgeExpired(ctx context.Context) error {
	return s.sessions.DeleteExpired(ctx, s.now())
}
