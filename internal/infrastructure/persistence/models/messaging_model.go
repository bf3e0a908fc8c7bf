package models

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
)

// ConversationModel is the GORM model of the conversations table
type ConversationModel struct {
	ID        string  `gorm:"primaryKey;type:varchar(36)"`
	Title     *string `gorm:"type:varchar(255)"`
	IsGroup   bool
	CreatedBy string    `gorm:"not null;type:varchar(36)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ConversationModel) TableName() string {
	return "conversations"
}

// ToDomain converts GORM model to domain entity
func (m *ConversationModel) ToDomain() *messaging.Conversation {
	return &messaging.Conversation{
		ID:        m.ID,
		Title:     m.Title,
		IsGroup:   m.IsGroup,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ConversationModel) FromDomain(c *messaging.Conversation) {
	m.ID = c.ID
	m.Title = c.Title
	m.IsGroup = c.IsGroup
	m.CreatedBy = c.CreatedBy
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ParticipantModel is the GORM model of the conversation_participants table
type ParticipantModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	ConversationID string    `gorm:"not null;uniqueIndex:idx_participants_conversation_user;type:varchar(36)"`
	UserID         string    `gorm:"not null;uniqueIndex:idx_participants_conversation_user;index;type:varchar(36)"`
	JoinedAt       time.Time `gorm:"not null"`
	LastReadAt     *time.Time
}

// TableName specifies the table name for GORM
func (ParticipantModel) TableName() string {
	return "conversation_participants"
}

// ToDomain converts GORM model to domain entity
func (m *ParticipantModel) ToDomain() *messaging.Participant {
	return &messaging.Participant{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		UserID:         m.UserID,
		JoinedAt:       m.JoinedAt,
		LastReadAt:     m.LastReadAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ParticipantModel) FromDomain(p *messaging.Participant) {
	m.ID = p.ID
	m.ConversationID = p.ConversationID
	m.UserID = p.UserID
	m.JoinedAt = p.JoinedAt
	m.LastReadAt = p.LastReadAt
}

// MessageModel is the GORM model of the messages table
type MessageModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	ConversationID string    `gorm:"not null;index;type:varchar(36)"`
	SenderID       string    `gorm:"not null;type:varchar(36)"`
	Content        string    `gorm:"not null;type:text"`
	MessageType    string    `gorm:"not null;type:varchar(20)"`
	Attachments    []string  `gorm:"serializer:json"`
	Status         string    `gorm:"not null;type:varchar(20)"`
	ReplyTo        *string   `gorm:"type:varchar(36)"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts GORM model to domain entity
func (m *MessageModel) ToDomain() *messaging.Message {
	return &messaging.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		MessageType:    m.MessageType,
		Attachments:    m.Attachments,
		Status:         messaging.MessageStatus(m.Status),
		ReplyTo:        m.ReplyTo,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageModel) FromDomain(msg *messaging.Message) {
	m.ID = msg.ID
	m.ConversationID = msg.ConversationID
	m.SenderID = msg.SenderID
	m.Content = msg.Content
	m.MessageType = msg.MessageType
	m.Attachments = msg.Attachments
	m.Status = string(msg.Status)
	m.ReplyTo = msg.ReplyTo
	m.CreatedAt = msg.CreatedAt
	m.UpdatedAt = msg.UpdatedAt
}
