package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"
	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"

	"github.com/google/uuid"
)

// TokenTypeBearer is the token type of every session
const TokenTypeBearer = "bearer"

// authService implements the AuthService interface
type authService struct {
	userRepo    users.UserRepository
	profileRepo users.ProfileRepository
	revokedRepo users.RevokedTokenRepository
	tokens      users.TokenManager
	hasher      users.PasswordHasher
	mailer      users.Mailer
	tokenTTL    time.Duration
	resetTTL    time.Duration
	resetURL    string
	logger      logger.Logger
	now         func() time.Time
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo users.UserRepository,
	profileRepo users.ProfileRepository,
	revokedRepo users.RevokedTokenRepository,
	tokens users.TokenManager,
	hasher users.PasswordHasher,
	mailer users.Mailer,
	settings *config.AuthSettings,
	resetURL string,
	logger logger.Logger,
) (users.AuthService, error) {
	if settings == nil {
		return nil, fmt.Errorf("auth settings are required")
	}
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		revokedRepo: revokedRepo,
		tokens:      tokens,
		hasher:      hasher,
		mailer:      mailer,
		tokenTTL:    settings.TokenDuration,
		resetTTL:    settings.ResetTokenDuration,
		resetURL:    resetURL,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

// SignUp registers a user and its profile. Admin accounts cannot sign up.
func (s *authService) SignUp(ctx context.Context, input users.SignUpInput) (*users.User, *users.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, shared.Invalid(err)
	}
	if input.UserType == users.UserTypeAdmin {
		return nil, nil, shared.Forbidden("admin accounts are created by an administrator")
	}

	email := users.NormalizeEmail(input.Email)
	if err := validators.CheckPassword(input.Password, email, input.FirstName, input.LastName); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", users.ErrWeakPassword, err)
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, nil, users.ErrEmailExists
	case !errors.Is(err, shared.ErrNotFound):
		return nil, nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	user := &users.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &users.Profile{
		ID:                 uuid.NewString(),
		UserID:             user.ID,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Institution:        input.Institution,
		UserType:           input.UserType,
		IsActive:           true,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.userRepo.Create(ctx, user, profile); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Signed up user with id ", user.ID, " as ", profile.UserType)
	return user, profile, nil
}

// SignIn checks the credentials and issues an access token
func (s *authService) SignIn(ctx context.Context, email, password string) (*users.Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, users.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, users.ErrInactiveAccount
	}

	token, expiresAt, err := s.tokens.Generate(identityOf(user, profile), users.TokenPurposeAccess, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Signed in user with id ", user.ID)
	return &users.Session{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        user,
		Profile:     profile,
	}, nil
}

// GetSession returns the session behind a valid access token
func (s *authService) GetSession(ctx context.Context, accessToken string) (*users.Session, error) {
	identity, err := s.ValidateToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, users.ErrInvalidToken
		}
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, users.ErrInactiveAccount
	}

	return &users.Session{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   identity.ExpiresAt,
		User:        user,
		Profile:     profile,
	}, nil
}

// SignOut revokes the access token until it expires
func (s *authService) SignOut(ctx context.Context, accessToken string) error {
	identity, err := s.ValidateToken(ctx, accessToken)
	if err != nil {
		return err
	}
	if err := s.revokedRepo.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return err
	}

	s.logger.Info("Signed out user with id ", identity.UserID)
	return nil
}

// ValidateToken verifies an access token and checks it was not revoked
func (s *authService) ValidateToken(ctx context.Context, accessToken string) (*users.Identity, error) {
	identity, err := s.tokens.Validate(accessToken, users.TokenPurposeAccess)
	if err != nil {
		return nil, err
	}
	if err := s.checkNotRevoked(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// UpdatePassword replaces the password after checking the current one
func (s *authService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(user.PasswordHash, currentPassword); err != nil {
		return err
	}
	return s.setPassword(ctx, user, newPassword)
}

// RequestPasswordReset mails a reset link. Unknown or inactive accounts are ignored.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, users.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Info("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	if !profile.IsActive {
		s.logger.Warn("Password reset requested for inactive user ", user.ID)
		return nil
	}

	token, _, err := s.tokens.Generate(identityOf(user, profile), users.TokenPurposeReset, s.resetTTL)
	if err != nil {
		return err
	}

	link, err := resetLink(s.resetURL, token)
	if err != nil {
		return err
	}

	name := profile.FirstName
	if err := s.mailer.SendPasswordReset(ctx, user.Email, name, link); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	s.logger.Info("Password reset requested for user ", user.ID)
	return nil
}

// ConfirmPasswordReset sets a new password. A reset token works once.
func (s *authService) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	identity, err := s.tokens.Validate(resetToken, users.TokenPurposeReset)
	if err != nil {
		return err
	}
	if err := s.checkNotRevoked(ctx, identity); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return users.ErrInvalidToken
		}
		return err
	}
	if err := s.setPassword(ctx, user, newPassword); err != nil {
		return err
	}

	return s.revokedRepo.Revoke(ctx, identity.TokenID, identity.ExpiresAt)
}

func (s *authService) checkNotRevoked(ctx context.Context, identity *users.Identity) error {
	revoked, err := s.revokedRepo.IsRevoked(ctx, identity.TokenID)
	if err != nil {
		return err
	}
	if revoked {
		return fmt.Errorf("%w: token revoked", users.ErrInvalidToken)
	}
	return nil
}

func (s *authService) setPassword(ctx context.Context, user *users.User, password string) error {
	attrs := []string{user.Email}
	if profile, err := s.profileRepo.GetByUserID(ctx, user.ID); err == nil {
		attrs = append(attrs, profile.FirstName, profile.LastName)
	}
	if err := validators.CheckPassword(password, attrs...); err != nil {
		return fmt.Errorf("%w: %v", users.ErrWeakPassword, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Info("Updated password of user ", user.ID)
	return nil
}

func identityOf(user *users.User, profile *users.Profile) users.Identity {
	return users.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: profile.UserType,
	}
}

func resetLink(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid reset url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
