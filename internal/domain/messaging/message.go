package messaging

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// MessageStatus is the delivery state of a message
type MessageStatus string

// Message statuses
const (
	MessageStatusSending   MessageStatus = "sending"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
)

// DefaultMessageType of messages sent without one
const DefaultMessageType = "text"

// Message entity
type Message struct {
	ID             string        `validate:"required,uuid4"`
	ConversationID string        `validate:"required,uuid4"`
	SenderID       string        `validate:"required,uuid4"`
	Content        string        `validate:"required,min=1,max=10000"`
	MessageType    string        `validate:"required,oneof=text image file system"`
	Attachments    []string      `validate:"omitempty,dive,url"`
	Status         MessageStatus `validate:"required,oneof=sending sent delivered read"`
	ReplyTo        *string       `validate:"omitempty,uuid4"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Sender *users.ProfileSummary `validate:"-"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	return validators.ValidateStruct(m)
}

// SendInput carries a new message
type SendInput struct {
	Content     string   `validate:"required,min=1,max=10000"`
	MessageType string   `validate:"omitempty,oneof=text image file system"`
	Attachments []string `validate:"omitempty,dive,url"`
	ReplyTo     *string  `validate:"omitempty,uuid4"`
}

// Validate for validating SendInput struct
func (in *SendInput) Validate() error {
	return validators.ValidateStruct(in)
}
