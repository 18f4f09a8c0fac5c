package mocks

import (
	"context"

	"github.com/you/credsvc/domain"
)

// MockUserService implements domain.UserService for testing.
type MockUserService struct {
	RegisterFunc     func(ctx context.Context, email, password string, isAdmin bool) (uint, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*domain.Credential, error)
	AuthenticateFunc func(ctx context.Context, email, password string) (*domain.User, error)
	ListFunc         func(ctx context.Context) ([]domain.User, error)
	DeleteFunc       func(ctx context.Context, id uint) error
	SetAdminFunc     func(ctx context.Context, id uint, isAdmin bool) error
	SetPasswordFunc  func(ctx context.Context, id uint, password string) error
}

// NewMockUserService creates a new MockUserService with default behaviors.
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

func (m *MockUserService) Register(ctx context.Context, email, password string, isAdmin bool) (uint, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, isAdmin)
	}
	return 1, nil
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockUserService) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserService) SetAdmin(ctx context.Context, id uint, isAdmin bool) error {
	if m.SetAdminFunc != nil {
		return m.SetAdminFunc(ctx, id, isAdmin)
	}
	return nil
}

func (m *MockUserService) SetPassword(ctx context.Context, id uint, password string) error {
	if m.SetPasswordFunc != nil {
		return m.SetPasswordFunc(ctx, id, password)
	}
	return nil
}
