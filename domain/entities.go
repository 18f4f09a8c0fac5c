package domain

// HashAlgorithm tags the scheme that produced a HashRecord.
type HashAlgorithm string

const (
	AlgoBcrypt HashAlgorithm = "bcrypt"
	AlgoPBKDF2 HashAlgorithm = "pbkdf2"
)

// User is the public projection of an identity record. It never carries
// password hash material.
type User struct {
	ID        uint
	Email     string
	IsAdmin   bool
	CreatedAt int64 // unix seconds, immutable once set
}

// HashRecord is self-describing password hash material. Bcrypt embeds its
// salt and cost inside Digest; PBKDF2 keeps them in the sibling fields.
type HashRecord struct {
	Algorithm  HashAlgorithm
	Digest     string
	Salt       string // hex-encoded, empty for bcrypt
	Iterations int    // 0 for bcrypt
}

// Credential couples a user with its hash material. It is handed only to
// the password verification path, never to external callers.
type Credential struct {
	User
	Hash HashRecord
}

// Session is an active login. Possession of Token is authentication for the
// owning user until ExpiresAt.
type Session struct {
	Token     string
	UserID    uint
	ExpiresAt int64
}

// TokenRecord is a single-use capability grant for an out-of-band flow such
// as email verification or a password reset.
type TokenRecord struct {
	Token     string
	UserID    uint
	Type      string
	ExpiresAt int64
	Consumed  bool
}

// TokenGrant is what a successfully consumed token authorizes.
type TokenGrant struct {
	UserID uint
	Type   string
}

// Defaults applied by callers that have no stronger policy of their own.
const (
	DefaultSessionAgeDays = 30
	DefaultTokenTTL       = 3600 // seconds
)
