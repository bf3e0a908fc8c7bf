package notifications

import (
	"context"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
)

// NotificationService covers user notifications.
type NotificationService interface {
	List(ctx context.Context, userID string, query *Query) ([]*Notification, error)
	ListRecent(ctx context.Context, userID string) ([]*Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	// MarkAsRead returns false when the notification was already read.
	MarkAsRead(ctx context.Context, notificationID, userID string) (bool, error)
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, input CreateInput) (*Notification, error)
	DeleteByID(ctx context.Context, notificationID, userID string) error
	DeleteRead(ctx context.Context, userID string) (int64, error)
	BroadcastToUserType(ctx context.Context, userType users.UserType, input CreateInput) (int, error)
	CreateEventReminder(ctx context.Context, eventID string, userIDs []string, hoursBefore int) (int, error)
}

// NotificationRepository defines the interface for Notification-related operations
type NotificationRepository interface {
	Create(ctx context.Context, notifications ...*Notification) error
	List(ctx context.Context, userID string, query *Query) ([]*Notification, error)
	GetByID(ctx context.Context, notificationID string) (*Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	// MarkRead reports whether an unread row was changed.
	MarkRead(ctx context.Context, notificationID, userID string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	DeleteByID(ctx context.Context, notificationID, userID string) (int64, error)
	DeleteRead(ctx context.Context, userID string) (int64, error)
}
