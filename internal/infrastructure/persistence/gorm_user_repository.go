package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence/models"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User, profile *users.Profile) error {
	if err := user.Validate(); err != nil {
		return shared.Invalid(err)
	}
	if err := profile.Validate(); err != nil {
		return shared.Invalid(err)
	}

	userModel := &models.UserModel{}
	userModel.FromDomain(user)
	profileModel := &models.ProfileModel{}
	profileModel.FromDomain(profile)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return users.ErrEmailExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := tx.Create(profileModel).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "user", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", users.NormalizeEmail(email)).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "user", email)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"password_hash": passwordHash, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("user", userID)
	}

	r.logger.Info("Updated password of user with id ", userID)
	return nil
}

type gormRevokedTokenRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRevokedTokenRepository creates a new GORM-based RevokedTokenRepository implementation
func NewGormRevokedTokenRepository(db *gorm.DB, logger logger.Logger) (users.RevokedTokenRepository, error) {
	return &gormRevokedTokenRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRevokedTokenRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	model := &models.RevokedTokenModel{TokenID: tokenID, ExpiresAt: expiresAt.UTC()}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *gormRevokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RevokedTokenModel{}).Where("token_id = ?", tokenID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return count > 0, nil
}

func (r *gormRevokedTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", now.UTC()).Delete(&models.RevokedTokenModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		r.logger.Info("Purged expired revoked tokens: ", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
