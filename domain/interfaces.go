package domain

import "context"

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, cred *Credential) error
	FindByEmail(ctx context.Context, email string) (*Credential, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id uint) error
	SetAdmin(ctx context.Context, id uint, isAdmin bool) error
	SetPassword(ctx context.Context, id uint, hash HashRecord) error
}

// SessionRepository defines session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Find(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now int64) error
}

// TokenRepository defines one-time token persistence operations. Consume is
// the atomic check-and-set: the backend must mark the token consumed in the
// same step that verifies it is live, so two concurrent redemptions cannot
// both observe an unconsumed row.
type TokenRepository interface {
	Create(ctx context.Context, rec *TokenRecord) error
	Find(ctx context.Context, token string) (*TokenRecord, error)
	Consume(ctx context.Context, token string, now int64) (*TokenRecord, error)
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (HashRecord, error)
	Verify(rec HashRecord, password string) bool
}

// UserService defines credential management business logic.
type UserService interface {
	Register(ctx context.Context, email, password string, isAdmin bool) (uint, error)
	GetByEmail(ctx context.Context, email string) (*Credential, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id uint) error
	SetAdmin(ctx context.Context, id uint, isAdmin bool) error
	SetPassword(ctx context.Context, id uint, password string) error
}

// SessionService defines login session operations.
type SessionService interface {
	Create(ctx context.Context, userID uint, maxAgeDays int) (string, error)
	Resolve(ctx context.Context, token string) (*User, error)
	Delete(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) error
}

// TokenService defines one-time token operations.
type TokenService interface {
	Issue(ctx context.Context, userID uint, tokenType string, ttlSeconds int64) (string, error)
	Peek(ctx context.Context, token string) (*TokenRecord, error)
	TryConsume(ctx context.Context, token string) (*TokenGrant, error)
}
