package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence/models"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

const notificationBatchSize = 200

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (notifications.NotificationRepository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationRepository) Create(ctx context.Context, notificationList ...*notifications.Notification) error {
	if len(notificationList) == 0 {
		return nil
	}

	modelList := make([]*models.NotificationModel, len(notificationList))
	for i, n := range notificationList {
		if err := n.Validate(); err != nil {
			return shared.Invalid(err)
		}
		modelList[i] = &models.NotificationModel{}
		modelList[i].FromDomain(n)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(modelList, notificationBatchSize).Error; err != nil {
		return wrapWriteError(err, "create", "notification")
	}

	r.logger.Info("Created notifications: ", len(modelList))
	return nil
}

func (r *gormNotificationRepository) List(ctx context.Context, userID string, query *notifications.Query) ([]*notifications.Notification, error) {
	if err := query.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	var modelList []*models.NotificationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.NotificationModel{}).Where("user_id = ?", userID)

	if query.IsRead != nil {
		dbQuery = dbQuery.Where("is_read = ?", *query.IsRead)
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", string(query.Type))
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.Since)
	}

	dbQuery = dbQuery.Order("created_at desc")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	domainList := make([]*notifications.Notification, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, notificationID string) (*notifications.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).Where("id = ?", notificationID).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "notification", notificationID)
	}
	return model.ToDomain(), nil
}

func (r *gormNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, notificationID, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ? AND is_read = ?", notificationID, userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": time.Now().UTC()})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": time.Now().UTC()})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", result.Error)
	}

	r.logger.Info("Marked notifications as read for user with id ", userID)
	return result.RowsAffected, nil
}

func (r *gormNotificationRepository) DeleteByID(ctx context.Context, notificationID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.NotificationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormNotificationRepository) DeleteRead(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, true).
		Delete(&models.NotificationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete read notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}
