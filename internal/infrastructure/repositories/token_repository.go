package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/you/credsvc/domain"
)

// DBToken is the database model for a one-time token row, primary-keyed by
// the token string with a free-form type tag and a consumed flag, matching
// the reference schema.
type DBToken struct {
	Token     string `gorm:"primaryKey;size:128"`
	UserID    uint   `gorm:"index;not null"`
	Type      string `gorm:"size:64;not null"`
	ExpiresAt int64  `gorm:"not null"`
	Consumed  bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM.
func (DBToken) TableName() string { return "tokens" }

// TokenRepositoryImpl implements domain.TokenRepository using GORM.
type TokenRepositoryImpl struct {
	db *gorm.DB
}

// NewTokenRepository creates a new one-time token repository.
func NewTokenRepository(db *gorm.DB) domain.TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// Create persists a freshly issued token with consumed=false.
func (r *TokenRepositoryImpl) Create(ctx context.Context, rec *domain.TokenRecord) error {
	row := tokenToDB(rec)
	return r.db.WithContext(ctx).Create(row).Error
}

// Find is a read-only lookup of a token record, consumed or not.
func (r *TokenRepositoryImpl) Find(ctx context.Context, token string) (*domain.TokenRecord, error) {
	var row DBToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return dbToToken(&row), nil
}

// Consume marks the token consumed with a single conditional UPDATE, so two
// concurrent redemptions cannot both observe an unconsumed row. The
// follow-up read only classifies a failed attempt as not found, consumed,
// or expired.
func (r *TokenRepositoryImpl) Consume(ctx context.Context, token string, now int64) (*domain.TokenRecord, error) {
	res := r.db.WithContext(ctx).Model(&DBToken{}).
		Where("token = ? AND consumed = ? AND expires_at >= ?", token, false, now).
		Update("consumed", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 1 {
		return r.Find(ctx, token)
	}

	rec, err := r.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if rec.Consumed {
		return nil, domain.ErrTokenConsumed
	}
	return nil, domain.ErrTokenExpired
}

func tokenToDB(rec *domain.TokenRecord) *DBToken {
	return &DBToken{
		Token:     rec.Token,
		UserID:    rec.UserID,
		Type:      rec.Type,
		ExpiresAt: rec.ExpiresAt,
		Consumed:  rec.Consumed,
	}
}

func dbToToken(row *DBToken) *domain.TokenRecord {
	return &domain.TokenRecord{
		Token:     row.Token,
		UserID:    row.UserID,
		Type:      row.Type,
		ExpiresAt: row.ExpiresAt,
		Consumed:  row.Consumed,
	}
}
