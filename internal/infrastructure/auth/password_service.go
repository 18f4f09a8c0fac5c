package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"

	"github.com/you/credsvc/domain"
)

// DefaultIterations is the PBKDF2 iteration count for newly hashed passwords.
const DefaultIterations = 200000

const (
	saltBytes   = 16 // 128 bits
	digestBytes = 32
)

// PasswordServiceImpl implements domain.PasswordService. It prefers bcrypt
// and falls back to PBKDF2-HMAC-SHA256; the algorithm used for new hashes
// is negotiated once at construction.
type PasswordServiceImpl struct {
	algo       domain.HashAlgorithm
	cost       int
	iterations int
}

// NewPasswordService probes the available algorithms and binds the service
// to the preferred working one. When neither algorithm is usable it returns
// domain.ErrHashingUnavailable, which callers treat as fatal at startup.
func NewPasswordService() (*PasswordServiceImpl, error) {
	s := &PasswordServiceImpl{cost: bcrypt.DefaultCost, iterations: DefaultIterations}
	if _, err := bcrypt.GenerateFromPassword([]byte("probe"), bcrypt.MinCost); err == nil {
		s.algo = domain.AlgoBcrypt
		return s, nil
	}
	if _, err := randomSalt(); err == nil {
		s.algo = domain.AlgoPBKDF2
		return s, nil
	}
	return nil, domain.ErrHashingUnavailable
}

// Hash turns a plaintext password into verifiable, non-reversible storage
// material. The plaintext never appears in errors or logs.
func (s *PasswordServiceImpl) Hash(password string) (domain.HashRecord, error) {
	switch s.algo {
	case domain.AlgoBcrypt:
		digest, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return domain.HashRecord{}, fmt.Errorf("bcrypt hash: %w", err)
		}
		return domain.HashRecord{Algorithm: domain.AlgoBcrypt, Digest: string(digest)}, nil
	default:
		salt, err := randomSalt()
		if err != nil {
			return domain.HashRecord{}, fmt.Errorf("generate salt: %w", err)
		}
		digest := pbkdf2.Key([]byte(password), salt, s.iterations, digestBytes, sha256.New)
		return domain.HashRecord{
			Algorithm:  domain.AlgoPBKDF2,
			Digest:     hex.EncodeToString(digest),
			Salt:       hex.EncodeToString(salt),
			Iterations: s.iterations,
		}, nil
	}
}

// Verify checks a plaintext against stored material. Dispatch is on the
// record's algorithm tag, so records hashed under either scheme keep
// verifying after the preferred algorithm changes.
func (s *PasswordServiceImpl) Verify(rec domain.HashRecord, password string) bool {
	switch rec.Algorithm {
	case domain.AlgoBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(rec.Digest), []byte(password)) == nil
	case domain.AlgoPBKDF2:
		salt, err := hex.DecodeString(rec.Salt)
		if err != nil || len(salt) == 0 {
			return false
		}
		iterations := rec.Iterations
		if iterations <= 0 {
			iterations = DefaultIterations
		}
		want, err := hex.DecodeString(rec.Digest)
		if err != nil || len(want) == 0 {
			return false
		}
		got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
		// Ordinary equality short-circuits and leaks the matching prefix
		// length through timing.
		return subtle.ConstantTimeCompare(got, want) == 1
	default:
		return false
	}
}

func randomSalt() ([]byte, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}
