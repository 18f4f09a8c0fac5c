package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/credsvc/domain"
)

// UserServiceImpl implements domain.UserService.
type UserServiceImpl struct {
	users  domain.UserRepository
	hasher domain.PasswordService
	now    func() int64
}

// NewUserService creates a new user service.
func NewUserService(users domain.UserRepository, hasher domain.PasswordService) *UserServiceImpl {
	return &UserServiceImpl{
		users:  users,
		hasher: hasher,
		now:    unixNow,
	}
}

func unixNow() int64 { return time.Now().Unix() }

// Register hashes the password and inserts the record with the current
// timestamp. Duplicate emails are rejected by the store's unique index, not
// by a prior lookup, so concurrent registrations of the same address cannot
// both succeed.
func (s *UserServiceImpl) Register(ctx context.Context, email, password string, isAdmin bool) (uint, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	cred := &domain.Credential{
		User: domain.User{Email: email, IsAdmin: isAdmin, CreatedAt: s.now()},
		Hash: hash,
	}
	if err := s.users.Create(ctx, cred); err != nil {
		return 0, err
	}
	return cred.ID, nil
}

// GetByEmail returns the full record including hash material. It exists for
// the verification path; external callers get the public projection from
// List or Authenticate instead.
func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	return s.users.FindByEmail(ctx, email)
}

// Authenticate verifies a password against the stored material. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	cred, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(cred.Hash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	user := cred.User
	return &user, nil
}

// List returns the public projection of every user.
func (s *UserServiceImpl) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Delete removes the user and cascades to that user's sessions.
func (s *UserServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

// SetAdmin updates the admin flag; an absent user is a silent no-op.
func (s *UserServiceImpl) SetAdmin(ctx context.Context, id uint, isAdmin bool) error {
	return s.users.SetAdmin(ctx, id, isAdmin)
}

// SetPassword recomputes hash material for the new password and overwrites
// the stored record.
func (s *UserServiceImpl) SetPassword(ctx context.Context, id uint, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.users.SetPassword(ctx, id, hash)
}
