package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/you/credsvc/domain"
)

// DBUser is the database model for a user row (with GORM tags). The column
// set matches the reference schema: bcrypt digests live in password_hash
// with an empty salt, PBKDF2 digests carry salt and iterations alongside.
type DBUser struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Salt         string `gorm:"size:64"`
	Iterations   int
	IsAdmin      bool  `gorm:"not null;default:false"`
	CreatedAt    int64 `gorm:"not null"` // unix seconds, never updated
}

// TableName returns the table name for GORM.
func (DBUser) TableName() string { return "users" }

// UserRepositoryImpl implements domain.UserRepository using GORM.
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create inserts the credential and assigns its id. Email uniqueness rides
// on the unique index, so concurrent inserts of the same address cannot
// both win.
func (r *UserRepositoryImpl) Create(ctx context.Context, cred *domain.Credential) error {
	row := credentialToDB(cred)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	cred.ID = row.ID
	return nil
}

// FindByEmail returns the full record including hash material. Only the
// password verification path may see the result.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var row DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return dbToCredential(&row), nil
}

// FindByID returns the public projection of a user.
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var row DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := dbToUser(&row)
	return &user, nil
}

// List returns the public projection of every user, ordered by id.
func (r *UserRepositoryImpl) List(ctx context.Context) ([]domain.User, error) {
	var rows []DBUser
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, dbToUser(&rows[i]))
	}
	return users, nil
}

// Delete removes the user and that user's sessions in one transaction.
// Deleting an absent user is a no-op.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&DBSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&DBUser{}, id).Error
	})
}

// SetAdmin updates the admin flag. Updating an absent user affects zero
// rows and is still a success.
func (r *UserRepositoryImpl) SetAdmin(ctx context.Context, id uint, isAdmin bool) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("is_admin", isAdmin).Error
}

// SetPassword overwrites all hash material columns for the user.
func (r *UserRepositoryImpl) SetPassword(ctx context.Context, id uint, hash domain.HashRecord) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": hash.Digest,
		"salt":          hash.Salt,
		"iterations":    hash.Iterations,
	}).Error
}

func credentialToDB(cred *domain.Credential) *DBUser {
	return &DBUser{
		ID:           cred.ID,
		Email:        cred.Email,
		PasswordHash: cred.Hash.Digest,
		Salt:         cred.Hash.Salt,
		Iterations:   cred.Hash.Iterations,
		IsAdmin:      cred.IsAdmin,
		CreatedAt:    cred.CreatedAt,
	}
}

func dbToUser(row *DBUser) domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		IsAdmin:   row.IsAdmin,
		CreatedAt: row.CreatedAt,
	}
}

// dbToCredential rebuilds the algorithm tag from the stored material:
// bcrypt output is self-describing ("$2" prefix), anything else is PBKDF2
// with its salt and iteration count in the sibling columns.
func dbToCredential(row *DBUser) *domain.Credential {
	rec := domain.HashRecord{
		Digest:     row.PasswordHash,
		Salt:       row.Salt,
		Iterations: row.Iterations,
	}
	if strings.HasPrefix(row.PasswordHash, "$2") {
		rec.Algorithm = domain.AlgoBcrypt
	} else {
		rec.Algorithm = domain.AlgoPBKDF2
	}
	return &domain.Credential{User: dbToUser(row), Hash: rec}
}
