package messaging

import (
	"context"
	"time"
)

// MessagingService covers conversations and messages.
type MessagingService interface {
	ListConversations(ctx context.Context, userID string) ([]*Conversation, error)
	GetConversation(ctx context.Context, conversationID, userID string) (*Conversation, error)
	ListMessages(ctx context.Context, conversationID, userID string, limit, offset int) ([]*Message, error)
	CreateConversation(ctx context.Context, creatorID string, input CreateConversationInput) (*Conversation, error)
	SendMessage(ctx context.Context, conversationID, senderID string, input SendInput) (*Message, error)
	MarkAsRead(ctx context.Context, conversationID, userID string) error
	// GetDirectConversation returns nil without error when none exists.
	GetDirectConversation(ctx context.Context, userID, otherUserID string) (*Conversation, error)
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
}

// ConversationRepository defines the interface for Conversation-related operations
type ConversationRepository interface {
	// Create stores the conversation and its participants atomically.
	Create(ctx context.Context, conversation *Conversation, participants []*Participant) error
	GetByID(ctx context.Context, conversationID string) (*Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]*Conversation, error)
	ListParticipants(ctx context.Context, conversationIDs []string) ([]*Participant, error)
	GetParticipant(ctx context.Context, conversationID, userID string) (*Participant, error)
	Touch(ctx context.Context, conversationID string, at time.Time) error
	MarkRead(ctx context.Context, conversationID, userID string, at time.Time) error
	// FindDirect returns nil without error when no direct conversation joins both users.
	FindDirect(ctx context.Context, userID, otherUserID string) (*Conversation, error)
}

// MessageRepository defines the interface for Message-related operations
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	List(ctx context.Context, conversationID string, limit, offset int) ([]*Message, error)
	Last(ctx context.Context, conversationID string) (*Message, error)
	// CountUnread counts messages of other users created after since; nil means all.
	CountUnread(ctx context.Context, conversationID, userID string, since *time.Time) (int64, error)
}
