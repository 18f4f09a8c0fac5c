package mocks

import (
	"context"

	"github.com/you/credsvc/domain"
)

// MockUserRepository implements domain.UserRepository for testing.
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, cred *domain.Credential) error
	FindByEmailFunc func(ctx context.Context, email string) (*domain.Credential, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.User, error)
	ListFunc        func(ctx context.Context) ([]domain.User, error)
	DeleteFunc      func(ctx context.Context, id uint) error
	SetAdminFunc    func(ctx context.Context, id uint, isAdmin bool) error
	SetPasswordFunc func(ctx context.Context, id uint, hash domain.HashRecord) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, cred *domain.Credential) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cred)
	}
	// Default behavior: success, assign an id
	cred.ID = 1
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) SetAdmin(ctx context.Context, id uint, isAdmin bool) error {
	if m.SetAdminFunc != nil {
		return m.SetAdminFunc(ctx, id, isAdmin)
	}
	return nil
}

func (m *MockUserRepository) SetPassword(ctx context.Context, id uint, hash domain.HashRecord) error {
	if m.SetPasswordFunc != nil {
		return m.SetPasswordFunc(ctx, id, hash)
	}
	return nil
}
