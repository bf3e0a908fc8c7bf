package models

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
)

// NotificationModel is the GORM model of the notifications table
type NotificationModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"not null;index;type:varchar(36)"`
	Type      string    `gorm:"not null;type:varchar(30)"`
	Title     string    `gorm:"not null;type:varchar(255)"`
	Message   string    `gorm:"not null;type:text"`
	Priority  string    `gorm:"not null;type:varchar(10)"`
	IsRead    bool      `gorm:"index"`
	ActionURL string    `gorm:"type:varchar(500)"`
	RelatedID *string   `gorm:"type:varchar(36)"`
	CreatedAt time.Time `gorm:"not null;index"`
	ReadAt    *time.Time
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationModel) ToDomain() *notifications.Notification {
	return &notifications.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      notifications.Type(m.Type),
		Title:     m.Title,
		Message:   m.Message,
		Priority:  notifications.Priority(m.Priority),
		IsRead:    m.IsRead,
		ActionURL: m.ActionURL,
		RelatedID: deref(m.RelatedID),
		CreatedAt: m.CreatedAt,
		ReadAt:    m.ReadAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationModel) FromDomain(n *notifications.Notification) {
	m.ID = n.ID
	m.UserID = n.UserID
	m.Type = string(n.Type)
	m.Title = n.Title
	m.Message = n.Message
	m.Priority = string(n.Priority)
	m.IsRead = n.IsRead
	m.ActionURL = n.ActionURL
	m.RelatedID = nullable(n.RelatedID)
	m.CreatedAt = n.CreatedAt
	m.ReadAt = n.ReadAt
}
