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

type gormUniversityRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUniversityRepository creates a new GORM-based UniversityRepository implementation
func NewGormUniversityRepository(db *gorm.DB, logger logger.Logger) (universities.UniversityRepository, error) {
	return &gormUniversityRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUniversityRepository) Create(ctx context.Context, university *universities.University) error {
	if err := university.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.UniversityModel{}
	model.FromDomain(university)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapWriteError(err, "create", "university")
	}

	r.logger.Info("Created university with id ", university.ID)
	return nil
}

func (r *gormUniversityRepository) List(ctx context.Context, query *universities.UniversityQuery) ([]*universities.University, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	var modelList []*models.UniversityModel
	dbQuery := r.db.WithContext(ctx).Model(&models.UniversityModel{})

	if query.City != "" {
		dbQuery = dbQuery.Where("city = ?", query.City)
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.Search != "" {
		pattern := containsPattern(query.Search)
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", pattern, pattern)
	}

	dbQuery = dbQuery.Order("name")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch universities: %w", err)
	}

	domainList := make([]*universities.University, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUniversityRepository) GetByID(ctx context.Context, universityID string) (*universities.University, error) {
	var model models.UniversityModel
	if err := r.db.WithContext(ctx).Where("id = ?", universityID).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "university", universityID)
	}
	return model.ToDomain(), nil
}

func (r *gormUniversityRepository) GetByName(ctx context.Context, name string) (*universities.University, error) {
	var model models.UniversityModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "university", name)
	}
	return model.ToDomain(), nil
}

func (r *gormUniversityRepository) UpdateByID(ctx context.Context, university *universities.University) error {
	if err := university.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.UniversityModel{}
	model.FromDomain(university)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return wrapWriteError(err, "update", "university")
	}

	r.logger.Info("Updated university with id ", university.ID)
	return nil
}

func (r *gormUniversityRepository) DeleteByID(ctx context.Context, universityID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var applicationCount int64
		err := tx.Model(&models.ApplicationModel{}).
			Where("formation_id IN (?)", tx.Model(&models.FormationModel{}).Select("id").Where("university_id = ?", universityID)).
			Count(&applicationCount).Error
		if err != nil {
			return fmt.Errorf("failed to count applications: %w", err)
		}
		if applicationCount > 0 {
			return fmt.Errorf("university %s has %d application(s) on its formations: %w", universityID, applicationCount, shared.ErrConflict)
		}

		if err := tx.Where("university_id = ?", universityID).Delete(&models.FormationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete formations: %w", err)
		}
		result := tx.Where("id = ?", universityID).Delete(&models.UniversityModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete university: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.NotFound("university", universityID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted university with id ", universityID)
	return nil
}

func (r *gormUniversityRepository) DistinctCities(ctx context.Context) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).Model(&models.UniversityModel{}).
		Distinct("city").Order("city").Pluck("city", &cities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cities: %w", err)
	}
	return cities, nil
}
