package mocks

import (
	"context"

	"github.com/you/credsvc/domain"
)

// MockTokenRepository implements domain.TokenRepository for testing.
type MockTokenRepository struct {
	CreateFunc  func(ctx context.Context, rec *domain.TokenRecord) error
	FindFunc    func(ctx context.Context, token string) (*domain.TokenRecord, error)
	ConsumeFunc func(ctx context.Context, token string, now int64) (*domain.TokenRecord, error)
}

// NewMockTokenRepository creates a new MockTokenRepository with default behaviors.
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{}
}

func (m *MockTokenRepository) Create(ctx context.Context, rec *domain.TokenRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	return nil
}

func (m *MockTokenRepository) Find(ctx context.Context, token string) (*domain.TokenRecord, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, token)
	}
	return nil, domain.ErrTokenNotFound
}

func (m *MockTokenRepository) Consume(ctx context.Context, token string, now int64) (*domain.TokenRecord, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, token, now)
	}
	return nil, domain.ErrTokenNotFound
}
