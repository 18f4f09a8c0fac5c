package services

import (
	"context"
	"errors"

	"github.com/you/credsvc/domain"
)

// Bootstrap guarantees a root administrator account exists before the
// serving layer accepts traffic.
type Bootstrap struct {
	users domain.UserService
}

// NewBootstrap creates a new bootstrapper.
func NewBootstrap(users domain.UserService) *Bootstrap {
	return &Bootstrap{users: users}
}

// EnsureRootAdmin is idempotent: an existing account is returned untouched,
// its password and admin flag are never rewritten. Otherwise the account is
// created with the admin flag set.
func (b *Bootstrap) EnsureRootAdmin(ctx context.Context, email, password string) (uint, error) {
	cred, err := b.users.GetByEmail(ctx, email)
	if err == nil {
		return cred.ID, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, err
	}

	id, err := b.users.Register(ctx, email, password, true)
	if err != nil {
		// Lost a race with a concurrent bootstrap; the account exists now.
		if errors.Is(err, domain.ErrEmailTaken) {
			if cred, ferr := b.users.GetByEmail(ctx, email); ferr == nil {
				return cred.ID, nil
			}
		}
		return 0, err
	}
	return id, nil
}
