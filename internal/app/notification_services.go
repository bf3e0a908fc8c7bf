package app

import (
	"context"
	"errors"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/google/uuid"
)

var errMissingRecipient = errors.New("notification recipient is required")

// notificationService implements the NotificationService interface
type notificationService struct {
	notificationRepo notifications.NotificationRepository
	profileRepo      users.ProfileRepository
	eventRepo        events.EventRepository
	publisher        realtime.Publisher
	logger           logger.Logger
	now              func() time.Time
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(
	notificationRepo notifications.NotificationRepository,
	profileRepo users.ProfileRepository,
	eventRepo events.EventRepository,
	publisher realtime.Publisher,
	logger logger.Logger,
) (notifications.NotificationService, error) {
	return &notificationService{
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		eventRepo:        eventRepo,
		publisher:        publisher,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}, nil
}

// List returns the notifications of a user, newest first
func (s *notificationService) List(ctx context.Context, userID string, query *notifications.Query) ([]*notifications.Notification, error) {
	if query == nil {
		query = &notifications.Query{}
	}
	if query.Limit <= 0 {
		query.Limit = shared.DefaultLimit
	}
	return s.notificationRepo.List(ctx, userID, query)
}

// ListRecent returns the notifications of the last 24 hours
func (s *notificationService) ListRecent(ctx context.Context, userID string) ([]*notifications.Notification, error) {
	return s.List(ctx, userID, &notifications.Query{Since: s.now().Add(-notifications.RecentWindow)})
}

// UnreadCount counts the unread notifications of a user
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkAsRead marks one notification as read. It returns false when it already was.
func (s *notificationService) MarkAsRead(ctx context.Context, notificationID, userID string) (bool, error) {
	changed, err := s.notificationRepo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return false, err
	}
	if changed {
		return true, nil
	}

	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return false, err
	}
	if n.UserID != userID {
		return false, shared.NotFound("notification", notificationID)
	}
	return false, nil
}

// MarkAllAsRead marks every unread notification of a user as read
func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Create stores a notification and publishes it to its recipient
func (s *notificationService) Create(ctx context.Context, input notifications.CreateInput) (*notifications.Notification, error) {
	if err := input.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	if input.UserID == "" {
		return nil, shared.Invalid(errMissingRecipient)
	}

	n := s.build(input.UserID, input)
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.publish(ctx, n)
	return n, nil
}

// DeleteByID removes a notification of the user
func (s *notificationService) DeleteByID(ctx context.Context, notificationID, userID string) error {
	deleted, err := s.notificationRepo.DeleteByID(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return shared.NotFound("notification", notificationID)
	}
	return nil
}

// DeleteRead removes every read notification of the user
func (s *notificationService) DeleteRead(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepo.DeleteRead(ctx, userID)
}

// BroadcastToUserType sends the same notification to every user of a type
func (s *notificationService) BroadcastToUserType(ctx context.Context, userType users.UserType, input notifications.CreateInput) (int, error) {
	input.UserID = ""
	if err := input.Validate(); err != nil {
		return 0, shared.Invalid(err)
	}

	userIDs, err := s.profileRepo.ListUserIDsByType(ctx, userType)
	if err != nil {
		return 0, err
	}

	notificationList := make([]*notifications.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notificationList = append(notificationList, s.build(userID, input))
	}
	if err := s.notificationRepo.Create(ctx, notificationList...); err != nil {
		return 0, err
	}

	for _, n := range notificationList {
		s.publish(ctx, n)
	}

	s.logger.Info("Broadcast notification to ", len(notificationList), " users of type ", userType)
	return len(notificationList), nil
}

// CreateEventReminder notifies userIDs that an event starts in hoursBefore hours
func (s *notificationService) CreateEventReminder(ctx context.Context, eventID string, userIDs []string, hoursBefore int) (int, error) {
	if hoursBefore <= 0 {
		hoursBefore = events.DefaultReminderHours
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return 0, err
	}

	notificationList := make([]*notifications.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		input := notifications.EventReminder(userID, event.ID, event.Title, hoursBefore)
		notificationList = append(notificationList, s.build(userID, input))
	}
	if err := s.notificationRepo.Create(ctx, notificationList...); err != nil {
		return 0, err
	}

	for _, n := range notificationList {
		s.publish(ctx, n)
	}

	s.logger.Info("Created ", len(notificationList), " reminders for event ", eventID)
	return len(notificationList), nil
}

func (s *notificationService) build(userID string, input notifications.CreateInput) *notifications.Notification {
	priority := input.Priority
	if priority == "" {
		priority = notifications.PriorityMedium
	}
	return &notifications.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		Priority:  priority,
		ActionURL: input.ActionURL,
		RelatedID: input.RelatedID,
		CreatedAt: s.now(),
	}
}

func (s *notificationService) publish(ctx context.Context, n *notifications.Notification) {
	change := realtime.NewInsert(realtime.TopicNotifications, realtime.TableNotifications, n)
	s.publisher.Publish(ctx, change, []string{n.UserID})
}
