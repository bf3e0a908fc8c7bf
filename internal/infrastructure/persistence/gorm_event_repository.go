package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence/models"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEventRepository creates a new GORM-based EventRepository implementation
func NewGormEventRepository(db *gorm.DB, logger logger.Logger) (events.EventRepository, error) {
	return &gormEventRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEventRepository) Create(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.EventModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapWriteError(err, "create", "event")
	}

	r.logger.Info("Created event with id ", event.ID)
	return nil
}

func (r *gormEventRepository) List(ctx context.Context, query *events.Query, now time.Time) ([]*events.Event, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	var modelList []*models.EventModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EventModel{})

	if query.UniversityID != "" {
		dbQuery = dbQuery.Where("university_id = ?", query.UniversityID)
	}
	if query.EventType != "" {
		dbQuery = dbQuery.Where("event_type = ?", string(query.EventType))
	}
	if query.UpcomingOnly {
		dbQuery = dbQuery.Where("start_date >= ?", now)
	}
	if query.PublicOnly {
		dbQuery = dbQuery.Where("is_public = ?", true)
	}

	dbQuery = dbQuery.Order("start_date")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	domainList := make([]*events.Event, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEventRepository) GetByID(ctx context.Context, eventID string) (*events.Event, error) {
	var model models.EventModel
	if err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "event", eventID)
	}
	return model.ToDomain(), nil
}

func (r *gormEventRepository) Register(ctx context.Context, registration *events.Registration) error {
	if err := registration.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.RegistrationModel{}
	model.FromDomain(registration)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the seat is taken only while the event has room left
		result := tx.Model(&models.EventModel{}).
			Where("id = ?", registration.EventID).
			Where("max_participants IS NULL OR current_participants < max_participants").
			UpdateColumn("current_participants", gorm.Expr("current_participants + ?", 1))
		if result.Error != nil {
			return fmt.Errorf("failed to increment participants: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return events.ErrEventFull
		}

		if err := tx.Create(model).Error; err != nil {
			return wrapWriteError(err, "create", "registration")
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Registered user with id ", registration.UserID, " to event with id ", registration.EventID)
	return nil
}

func (r *gormEventRepository) IsRegistered(ctx context.Context, eventID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return count > 0, nil
}

func (r *gormEventRepository) ListRegisteredUserIDs(ctx context.Context, eventID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Where("event_id = ? AND status = ?", eventID, events.RegistrationStatusRegistered).
		Order("registered_at").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return ids, nil
}
