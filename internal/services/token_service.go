package services

import (
	"context"
	"fmt"

	"github.com/you/credsvc/domain"
)

// TokenServiceImpl implements domain.TokenService.
type TokenServiceImpl struct {
	tokens domain.TokenRepository
	now    func() int64
}

// NewTokenService creates a new one-time token service.
func NewTokenService(tokens domain.TokenRepository) *TokenServiceImpl {
	return &TokenServiceImpl{
		tokens: tokens,
		now:    unixNow,
	}
}

// Issue mints a typed single-use token valid for ttlSeconds from now.
// Callers without a stronger policy pass domain.DefaultTokenTTL.
func (s *TokenServiceImpl) Issue(ctx context.Context, userID uint, tokenType string, ttlSeconds int64) (string, error) {
	token, err := randomURLToken()
	if err != nil {
		return "", err
	}

	rec := &domain.TokenRecord{
		Token:     token,
		UserID:    userID,
		Type:      tokenType,
		ExpiresAt: s.now() + ttlSeconds,
	}
	if err := s.tokens.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to create token: %w", err)
	}
	return token, nil
}

// Peek is a read-only lookup so a caller can inspect type, owner, expiry
// and consumed status before acting.
func (s *TokenServiceImpl) Peek(ctx context.Context, token string) (*domain.TokenRecord, error) {
	return s.tokens.Find(ctx, token)
}

// TryConsume redeems the token exactly once. The repository performs the
// backend-atomic check-and-set; of any number of concurrent attempts on the
// same token exactly one succeeds, the rest report why they failed.
func (s *TokenServiceImpl) TryConsume(ctx context.Context, token string) (*domain.TokenGrant, error) {
	rec, err := s.tokens.Consume(ctx, token, s.now())
	if err != nil {
		return nil, err
	}
	return &domain.TokenGrant{UserID: rec.UserID, Type: rec.Type}, nil
}
