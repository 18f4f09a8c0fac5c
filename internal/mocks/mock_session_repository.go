package mocks

import (
	"context"

	"github.com/you/credsvc/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing.
type MockSessionRepository struct {
	CreateFunc        func(ctx context.Context, session *domain.Session) error
	FindFunc          func(ctx context.Context, token string) (*domain.Session, error)
	DeleteFunc        func(ctx context.Context, token string) error
	DeleteExpiredFunc func(ctx context.Context, now int64) error
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors.
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) Find(ctx context.Context, token string) (*domain.Session, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, token)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	return nil
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now int64) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, now)
	}
	return nil
}
