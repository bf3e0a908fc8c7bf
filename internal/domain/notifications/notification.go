package notifications

import (
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// Type of a notification
type Type string

// Notification types
const (
	TypeMessage           Type = "message"
	TypeApplicationUpdate Type = "application_update"
	TypeEventReminder     Type = "event_reminder"
	TypeSystem            Type = "system"
	TypeReminder          Type = "reminder"
)

// Priority of a notification
type Priority string

// Notification priorities
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// RecentWindow is how far back ListRecent looks
const RecentWindow = 24 * time.Hour

// Notification entity
type Notification struct {
	ID        string   `validate:"required,uuid4"`
	UserID    string   `validate:"required,uuid4"`
	Type      Type     `validate:"required,oneof=message application_update event_reminder system reminder"`
	Title     string   `validate:"required,min=1,max=255"`
	Message   string   `validate:"required,min=1,max=2000"`
	Priority  Priority `validate:"required,oneof=low medium high"`
	IsRead    bool
	ActionURL string `validate:"max=500"`
	RelatedID string `validate:"omitempty,uuid4"`
	CreatedAt time.Time
	ReadAt    *time.Time
}

// Validate for validating Notification struct
func (n *Notification) Validate() error {
	return validators.ValidateStruct(n)
}

// CreateInput carries a new notification
type CreateInput struct {
	UserID    string   `validate:"omitempty,uuid4"`
	Type      Type     `validate:"required,oneof=message application_update event_reminder system reminder"`
	Title     string   `validate:"required,min=1,max=255"`
	Message   string   `validate:"required,min=1,max=2000"`
	Priority  Priority `validate:"omitempty,oneof=low medium high"`
	ActionURL string   `validate:"max=500"`
	RelatedID string   `validate:"omitempty,uuid4"`
}

// Validate for validating CreateInput struct
func (in *CreateInput) Validate() error {
	return validators.ValidateStruct(in)
}

// Query filters a user's notifications. Results are newest first.
type Query struct {
	IsRead *bool
	Type   Type `validate:"omitempty,oneof=message application_update event_reminder system reminder"`
	Since  time.Time
	Limit  int `validate:"omitempty,gt=0,lte=200"`
	Offset int `validate:"omitempty,gte=0"`
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validators.ValidateStruct(q)
}

// EventReminder builds the reminder sent before an event starts
func EventReminder(userID, eventID, eventTitle string, hoursBefore int) CreateInput {
	return CreateInput{
		UserID:    userID,
		Type:      TypeEventReminder,
		Title:     "Rappel d'événement",
		Message:   fmt.Sprintf("L'événement \"%s\" commence dans %d heures", eventTitle, hoursBefore),
		Priority:  PriorityMedium,
		ActionURL: "/events/" + eventID,
		RelatedID: eventID,
	}
}
