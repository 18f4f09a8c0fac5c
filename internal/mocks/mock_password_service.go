package mocks

import (
	"github.com/you/credsvc/domain"
)

// MockPasswordService implements domain.PasswordService for testing.
type MockPasswordService struct {
	HashFunc   func(password string) (domain.HashRecord, error)
	VerifyFunc func(rec domain.HashRecord, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors.
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (domain.HashRecord, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: a recognizable fake record
	return domain.HashRecord{Algorithm: domain.AlgoPBKDF2, Digest: "hashed_" + password}, nil
}

func (m *MockPasswordService) Verify(rec domain.HashRecord, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(rec, password)
	}
	return rec.Digest == "hashed_"+password
}
