package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/you/credsvc/domain"
)

// DBSession is the database model for a session row. The token string is
// the primary key, matching the reference schema.
type DBSession struct {
	Token     string `gorm:"primaryKey;size:128"`
	UserID    uint   `gorm:"index;not null"`
	ExpiresAt int64  `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (DBSession) TableName() string { return "sessions" }

// SessionRepositoryImpl implements domain.SessionRepository using GORM.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create persists a freshly minted session.
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	row := &DBSession{Token: session.Token, UserID: session.UserID, ExpiresAt: session.ExpiresAt}
	return r.db.WithContext(ctx).Create(row).Error
}

// Find looks a session up by token. Expiry is the caller's concern; the row
// is returned as stored.
func (r *SessionRepositoryImpl) Find(ctx context.Context, token string) (*domain.Session, error) {
	var row DBSession
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &domain.Session{Token: row.Token, UserID: row.UserID, ExpiresAt: row.ExpiresAt}, nil
}

// Delete removes a session unconditionally. A missing token is a no-op.
func (r *SessionRepositoryImpl) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&DBSession{}).Error
}

// DeleteExpired removes every session whose expiry has passed. Lazy
// deletion on the read path keeps correctness without this sweep.
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context, now int64) error {
	return r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&DBSession{}).Error
}
