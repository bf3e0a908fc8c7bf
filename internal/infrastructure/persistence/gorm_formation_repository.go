package persistence

import (
	"context"
	"fmt"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence/models"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormFormationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFormationRepository creates a new GORM-based FormationRepository implementation
func NewGormFormationRepository(db *gorm.DB, logger logger.Logger) (universities.FormationRepository, error) {
	return &gormFormationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFormationRepository) Create(ctx context.Context, formation *universities.Formation) error {
	if err := formation.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.FormationModel{}
	model.FromDomain(formation)

	if err := r.db.WithContext(ctx).Omit("University").Create(model).Error; err != nil {
		return wrapWriteError(err, "create", "formation")
	}

	r.logger.Info("Created formation with id ", formation.ID)
	return nil
}

func (r *gormFormationRepository) List(ctx context.Context, query *universities.FormationQuery) ([]*universities.Formation, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	var modelList []*models.FormationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.FormationModel{}).
		Preload("University").
		Where("formations.is_active = ?", true)

	if query.Search != "" {
		pattern := containsPattern(query.Search)
		dbQuery = dbQuery.Where("LOWER(formations.name) LIKE ? OR LOWER(formations.description) LIKE ?", pattern, pattern)
	}
	if query.Domain != "" {
		dbQuery = dbQuery.Where("formations.domain = ?", query.Domain)
	}
	if query.Level != "" {
		dbQuery = dbQuery.Where("formations.level = ?", query.Level)
	}
	if query.UniversityID != "" {
		dbQuery = dbQuery.Where("formations.university_id = ?", query.UniversityID)
	}
	if query.City != "" {
		dbQuery = dbQuery.
			Joins("JOIN universities ON universities.id = formations.university_id").
			Where("universities.city = ?", query.City)
	}

	dbQuery = dbQuery.Order("formations.name")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch formations: %w", err)
	}

	domainList := make([]*universities.Formation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormFormationRepository) GetByID(ctx context.Context, formationID string) (*universities.Formation, error) {
	var model models.FormationModel
	if err := r.db.WithContext(ctx).Preload("University").Where("id = ?", formationID).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "formation", formationID)
	}
	return model.ToDomain(), nil
}

func (r *gormFormationRepository) UpdateByID(ctx context.Context, formation *universities.Formation) error {
	if err := formation.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.FormationModel{}
	model.FromDomain(formation)

	if err := r.db.WithContext(ctx).Omit("University").Save(model).Error; err != nil {
		return wrapWriteError(err, "update", "formation")
	}

	r.logger.Info("Updated formation with id ", formation.ID)
	return nil
}

func (r *gormFormationRepository) DistinctDomains(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "domain")
}

func (r *gormFormationRepository) DistinctLevels(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "level")
}

func (r *gormFormationRepository) distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).Model(&models.FormationModel{}).
		Where("is_active = ?", true).
		Distinct(column).Order(column).Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s values: %w", column, err)
	}
	return values, nil
}
