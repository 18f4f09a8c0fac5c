package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/credsvc/domain"
	"github.com/you/credsvc/internal/mocks"
)

func TestBootstrap_EnsureRootAdmin(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserService)
		expectedID    uint
		expectedError error
	}{
		{
			name: "creates missing root admin",
			setupMocks: func(users *mocks.MockUserService) {
				users.RegisterFunc = func(ctx context.Context, email, password string, isAdmin bool) (uint, error) {
					if !isAdmin {
						t.Error("root account must be created with the admin flag")
					}
					return 1, nil
				}
			},
			expectedID: 1,
		},
		{
			name: "existing account returned untouched",
			setupMocks: func(users *mocks.MockUserService) {
				users.GetByEmailFunc = func(ctx context.Context, email string) (*domain.Credential, error) {
					return &domain.Credential{User: domain.User{ID: 5, Email: email, IsAdmin: true}}, nil
				}
				users.RegisterFunc = func(ctx context.Context, email, password string, isAdmin bool) (uint, error) {
					t.Error("must not re-register an existing root account")
					return 0, nil
				}
			},
			expectedID: 5,
		},
		{
			name: "lost creation race falls back to lookup",
			setupMocks: func(users *mocks.MockUserService) {
				first := true
				users.GetByEmailFunc = func(ctx context.Context, email string) (*domain.Credential, error) {
					if first {
						first = false
						return nil, domain.ErrUserNotFound
					}
					return &domain.Credential{User: domain.User{ID: 3, Email: email, IsAdmin: true}}, nil
				}
				users.RegisterFunc = func(ctx context.Context, email, password string, isAdmin bool) (uint, error) {
					return 0, domain.ErrEmailTaken
				}
			},
			expectedID: 3,
		},
		{
			name: "backend failure propagates",
			setupMocks: func(users *mocks.MockUserService) {
				users.GetByEmailFunc = func(ctx context.Context, email string) (*domain.Credential, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectedError: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewMockUserService()
			tt.setupMocks(users)

			boot := NewBootstrap(users)
			id, err := boot.EnsureRootAdmin(context.Background(), "root", "root")

			if tt.expectedError != nil {
				if err == nil || err.Error() != tt.expectedError.Error() {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.expectedID {
				t.Errorf("expected id %d, got %d", tt.expectedID, id)
			}
		})
	}
}
