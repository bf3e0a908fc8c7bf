package messaging

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// Conversation entity
type Conversation struct {
	ID        string  `validate:"required,uuid4"`
	Title     *string `validate:"omitempty,max=255"`
	IsGroup   bool
	CreatedBy string `validate:"required,uuid4"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Participants []*Participant `validate:"-"`
	LastMessage  *Message       `validate:"-"`
	UnreadCount  int64
}

// Validate for validating Conversation struct
func (c *Conversation) Validate() error {
	return validators.ValidateStruct(c)
}

// Participant links a user to a conversation
type Participant struct {
	ID             string `validate:"required,uuid4"`
	ConversationID string `validate:"required,uuid4"`
	UserID         string `validate:"required,uuid4"`
	JoinedAt       time.Time
	LastReadAt     *time.Time

	User *users.ProfileSummary `validate:"-"`
}

// ParticipantIDs returns the user ids of the participants
func (c *Conversation) ParticipantIDs() []string {
	ids := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		ids = append(ids, p.UserID)
	}
	return ids
}

// CreateConversationInput carries a new conversation
type CreateConversationInput struct {
	ParticipantIDs []string `validate:"required,min=1,dive,uuid4"`
	Title          *string  `validate:"omitempty,max=255"`
}

// Validate for validating CreateConversationInput struct
func (in *CreateConversationInput) Validate() error {
	return validators.ValidateStruct(in)
}

// Members returns the deduplicated participant ids with the creator first.
func (in *CreateConversationInput) Members(creatorID string) []string {
	seen := map[string]struct{}{creatorID: {}}
	members := []string{creatorID}
	for _, id := range in.ParticipantIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		members = append(members, id)
	}
	return members
}
