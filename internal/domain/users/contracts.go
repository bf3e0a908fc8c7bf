package users

import (
	"context"
	"time"
)

// AuthService covers sign up, sign in, sessions and passwords.
type AuthService interface {
	// SignUp registers a user and creates its profile.
	SignUp(ctx context.Context, input SignUpInput) (*User, *Profile, error)

	// SignIn checks credentials and opens a session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// GetSession returns the session behind a still valid access token.
	GetSession(ctx context.Context, accessToken string) (*Session, error)

	// SignOut revokes the access token.
	SignOut(ctx context.Context, accessToken string) error

	// ValidateToken verifies an access token and returns its bearer.
	ValidateToken(ctx context.Context, accessToken string) (*Identity, error)

	// UpdatePassword replaces the password after checking the current one.
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error

	// RequestPasswordReset mails a reset link. Unknown addresses are ignored.
	RequestPasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset sets a new password using a reset token.
	ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error
}

// ProfileService covers profile fetch, update and user search.
type ProfileService interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	UpdateByUserID(ctx context.Context, userID string, update ProfileUpdate) (*Profile, error)
	SearchUsers(ctx context.Context, query string, excludeIDs []string, limit int) ([]*ProfileSummary, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create stores the user and its profile atomically.
	Create(ctx context.Context, user *User, profile *Profile) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// ProfileRepository defines the interface for Profile-related operations
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Search(ctx context.Context, query string, excludeIDs []string, limit int) ([]*Profile, error)
	ListUserIDsByType(ctx context.Context, userType UserType) ([]string, error)
	// Summaries returns the summaries of the given users keyed by user id.
	Summaries(ctx context.Context, userIDs []string) (map[string]*ProfileSummary, error)
}

// RevokedTokenRepository keeps signed out token ids until they expire.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenPurpose separates access tokens from password reset tokens
type TokenPurpose string

// Token purposes
const (
	TokenPurposeAccess TokenPurpose = "access"
	TokenPurposeReset  TokenPurpose = "password_reset"
)

// TokenManager signs and verifies bearer tokens.
type TokenManager interface {
	Generate(identity Identity, purpose TokenPurpose, ttl time.Duration) (token string, expiresAt time.Time, err error)
	Validate(token string, purpose TokenPurpose) (*Identity, error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Mailer sends transactional mail.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, toName, resetLink string) error
}
