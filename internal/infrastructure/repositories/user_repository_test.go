package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/credsvc/domain"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBSession{}, &DBToken{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func bcryptCred(email string, isAdmin bool) *domain.Credential {
	return &domain.Credential{
		User: domain.User{Email: email, IsAdmin: isAdmin, CreatedAt: 1700000000},
		Hash: domain.HashRecord{Algorithm: domain.AlgoBcrypt, Digest: "$2a$10$fakehashfakehashfakehash"},
	}
}

func TestUserRepositoryImpl_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	cred := bcryptCred("test@example.com", false)
	if err := repo.Create(ctx, cred); err != nil {
		t.Fatalf("create: %v", err)
	}
	if cred.ID == 0 {
		t.Error("expected assigned id")
	}

	second := bcryptCred("other@example.com", true)
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.ID == cred.ID {
		t.Error("expected distinct ids")
	}
}

func TestUserRepositoryImpl_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, bcryptCred("dup@example.com", false)); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repo.Create(ctx, bcryptCred("dup@example.com", false))
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// The failed insert must not leave a second row behind.
	var count int64
	db.Model(&DBUser{}).Where("email = ?", "dup@example.com").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		setupData     func()
		email         string
		expectedAlgo  domain.HashAlgorithm
		expectedError error
	}{
		{
			name: "bcrypt record",
			setupData: func() {
				db.Create(&DBUser{Email: "b@example.com", PasswordHash: "$2a$10$somebcryptmaterial", CreatedAt: 1700000000})
			},
			email:        "b@example.com",
			expectedAlgo: domain.AlgoBcrypt,
		},
		{
			name: "pbkdf2 record",
			setupData: func() {
				db.Create(&DBUser{Email: "p@example.com", PasswordHash: "deadbeef", Salt: "00112233", Iterations: 200000, CreatedAt: 1700000000})
			},
			email:        "p@example.com",
			expectedAlgo: domain.AlgoPBKDF2,
		},
		{
			name:          "not found",
			setupData:     func() {},
			email:         "missing@example.com",
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupData()

			cred, err := repo.FindByEmail(ctx, tt.email)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cred.Email != tt.email {
				t.Errorf("expected email %q, got %q", tt.email, cred.Email)
			}
			if cred.Hash.Algorithm != tt.expectedAlgo {
				t.Errorf("expected algorithm %q, got %q", tt.expectedAlgo, cred.Hash.Algorithm)
			}
		})
	}
}

func TestUserRepositoryImpl_FindByEmail_CaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, bcryptCred("User@Example.com", false)); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.FindByEmail(ctx, "user@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("lookup is exact-match; expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByEmail(ctx, "User@Example.com"); err != nil {
		t.Errorf("exact lookup failed: %v", err)
	}
}

func TestUserRepositoryImpl_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if err := repo.Create(ctx, bcryptCred(email, false)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Email != "a@example.com" || users[1].Email != "b@example.com" {
		t.Errorf("unexpected ordering: %v", users)
	}
}

func TestUserRepositoryImpl_Delete_CascadesSessions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	sessions := NewSessionRepository(db)
	ctx := context.Background()

	cred := bcryptCred("gone@example.com", false)
	if err := repo.Create(ctx, cred); err != nil {
		t.Fatalf("create: %v", err)
	}
	keep := bcryptCred("stays@example.com", false)
	if err := repo.Create(ctx, keep); err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, s := range []*domain.Session{
		{Token: "tok-1", UserID: cred.ID, ExpiresAt: 2000000000},
		{Token: "tok-2", UserID: cred.ID, ExpiresAt: 2000000000},
		{Token: "tok-3", UserID: keep.ID, ExpiresAt: 2000000000},
	} {
		if err := sessions.Create(ctx, s); err != nil {
			t.Fatalf("create session: %v", err)
		}
	}

	if err := repo.Delete(ctx, cred.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.FindByID(ctx, cred.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected user gone, got %v", err)
	}
	var count int64
	db.Model(&DBSession{}).Where("user_id = ?", cred.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected deleted user's sessions gone, found %d", count)
	}
	db.Model(&DBSession{}).Where("user_id = ?", keep.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected other user's session kept, found %d", count)
	}
}

func TestUserRepositoryImpl_SetAdmin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	cred := bcryptCred("admin@example.com", false)
	if err := repo.Create(ctx, cred); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SetAdmin(ctx, cred.ID, true); err != nil {
		t.Fatalf("set admin: %v", err)
	}
	user, err := repo.FindByID(ctx, cred.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !user.IsAdmin {
		t.Error("expected admin flag set")
	}

	// Absent user is a silent no-op, not an error.
	if err := repo.SetAdmin(ctx, 9999, true); err != nil {
		t.Errorf("expected no-op success for absent user, got %v", err)
	}
}

func TestUserRepositoryImpl_SetPassword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	cred := &domain.Credential{
		User: domain.User{Email: "pw@example.com", CreatedAt: 1700000000},
		Hash: domain.HashRecord{Algorithm: domain.AlgoPBKDF2, Digest: "olddigest", Salt: "00ff", Iterations: 100000},
	}
	if err := repo.Create(ctx, cred); err != nil {
		t.Fatalf("create: %v", err)
	}

	next := domain.HashRecord{Algorithm: domain.AlgoBcrypt, Digest: "$2a$10$newbcryptmaterial"}
	if err := repo.SetPassword(ctx, cred.ID, next); err != nil {
		t.Fatalf("set password: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "pw@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Hash.Algorithm != domain.AlgoBcrypt || got.Hash.Digest != next.Digest {
		t.Errorf("expected overwritten hash material, got %+v", got.Hash)
	}
	if got.Hash.Salt != "" || got.Hash.Iterations != 0 {
		t.Errorf("expected pbkdf2 sibling fields cleared, got %+v", got.Hash)
	}
	if got.CreatedAt != 1700000000 {
		t.Errorf("creation timestamp must stay immutable, got %d", got.CreatedAt)
	}
}
