package persistence

import (
	"context"
	"fmt"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence/models"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormApplicationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormApplicationRepository creates a new GORM-based ApplicationRepository implementation
func NewGormApplicationRepository(db *gorm.DB, logger logger.Logger) (applications.ApplicationRepository, error) {
	return &gormApplicationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormApplicationRepository) Create(ctx context.Context, application *applications.Application) error {
	if err := application.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.ApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Omit("Formation").Create(model).Error; err != nil {
		return wrapWriteError(err, "create", "application")
	}

	r.logger.Info("Created application with id ", application.ID)
	return nil
}

func (r *gormApplicationRepository) ListByStudent(ctx context.Context, studentID string) ([]*applications.Application, error) {
	var modelList []*models.ApplicationModel
	err := r.db.WithContext(ctx).
		Preload("Formation.University").
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}
	return toApplications(modelList), nil
}

func (r *gormApplicationRepository) ListByFormation(ctx context.Context, formationID string) ([]*applications.Application, error) {
	var modelList []*models.ApplicationModel
	err := r.db.WithContext(ctx).
		Where("formation_id = ? AND status <> ?", formationID, string(applications.StatusDraft)).
		Order("submitted_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}
	return toApplications(modelList), nil
}

func (r *gormApplicationRepository) GetByID(ctx context.Context, applicationID string) (*applications.Application, error) {
	var model models.ApplicationModel
	err := r.db.WithContext(ctx).
		Preload("Formation.University").
		Where("id = ?", applicationID).
		First(&model).Error
	if err != nil {
		return nil, wrapFetchError(err, "application", applicationID)
	}
	return model.ToDomain(), nil
}

func (r *gormApplicationRepository) Exists(ctx context.Context, studentID, formationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ApplicationModel{}).
		Where("student_id = ? AND formation_id = ?", studentID, formationID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}
	return count > 0, nil
}

func (r *gormApplicationRepository) UpdateByID(ctx context.Context, application *applications.Application) error {
	if err := application.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.ApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Omit("Formation").Save(model).Error; err != nil {
		return wrapWriteError(err, "update", "application")
	}

	r.logger.Info("Updated application with id ", application.ID)
	return nil
}

func (r *gormApplicationRepository) DeleteByID(ctx context.Context, applicationID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", applicationID).Delete(&models.ApplicationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("application", applicationID)
	}

	r.logger.Info("Deleted application with id ", applicationID)
	return nil
}

type statusCount struct {
	Status string
	Count  int64
}

// CountByStatus counts the applications of a student, a formation, or both.
func (r *gormApplicationRepository) CountByStatus(ctx context.Context, studentID, formationID string) (map[applications.Status]int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.ApplicationModel{})
	if studentID != "" {
		dbQuery = dbQuery.Where("student_id = ?", studentID)
	}
	if formationID != "" {
		dbQuery = dbQuery.Where("formation_id = ?", formationID)
	}

	var rows []statusCount
	if err := dbQuery.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	counts := make(map[applications.Status]int64, len(rows))
	for _, row := range rows {
		counts[applications.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func toApplications(modelList []*models.ApplicationModel) []*applications.Application {
	domainList := make([]*applications.Application, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
