package persistence

import (
	"context"
	"fmt"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence/models"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (users.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProfileRepository) GetByUserID(ctx context.Context, userID string) (*users.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "profile", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) Update(ctx context.Context, profile *users.Profile) error {
	if err := profile.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.ProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	r.logger.Info("Updated profile of user with id ", profile.UserID)
	return nil
}

func (r *gormProfileRepository) Search(ctx context.Context, query string, excludeIDs []string, limit int) ([]*users.Profile, error) {
	var modelList []*models.ProfileModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProfileModel{}).Where("is_active = ?", true)

	if query != "" {
		pattern := containsPattern(query)
		dbQuery = dbQuery.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}
	if len(excludeIDs) > 0 {
		dbQuery = dbQuery.Where("user_id NOT IN ?", excludeIDs)
	}
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	if err := dbQuery.Order("last_name, first_name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	domainList := make([]*users.Profile, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormProfileRepository) ListUserIDsByType(ctx context.Context, userType users.UserType) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.ProfileModel{}).
		Where("user_type = ? AND is_active = ?", string(userType), true).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users of type %s: %w", userType, err)
	}
	return ids, nil
}

func (r *gormProfileRepository) Summaries(ctx context.Context, userIDs []string) (map[string]*users.ProfileSummary, error) {
	summaries := make(map[string]*users.ProfileSummary, len(userIDs))
	if len(userIDs) == 0 {
		return summaries, nil
	}

	var modelList []*models.ProfileModel
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch profile summaries: %w", err)
	}
	for _, model := range modelList {
		summaries[model.UserID] = model.Summary()
	}
	return summaries, nil
}
