package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/google/uuid"
)

// messagePreviewLength bounds the message excerpt put in notifications, in runes
const messagePreviewLength = 100

// messagingService implements the MessagingService interface
type messagingService struct {
	conversationRepo    messaging.ConversationRepository
	messageRepo         messaging.MessageRepository
	profileRepo         users.ProfileRepository
	notificationService notifications.NotificationService
	publisher           realtime.Publisher
	logger              logger.Logger
	now                 func() time.Time
}

// NewMessagingService creates a new instance of MessagingService
func NewMessagingService(
	conversationRepo messaging.ConversationRepository,
	messageRepo messaging.MessageRepository,
	profileRepo users.ProfileRepository,
	notificationService notifications.NotificationService,
	publisher realtime.Publisher,
	logger logger.Logger,
) (messaging.MessagingService, error) {
	return &messagingService{
		conversationRepo:    conversationRepo,
		messageRepo:         messageRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
		publisher:           publisher,
		logger:              logger,
		now:                 func() time.Time { return time.Now().UTC() },
	}, nil
}

// ListConversations returns the conversations of a user, most recently active first
func (s *messagingService) ListConversations(ctx context.Context, userID string) ([]*messaging.Conversation, error) {
	conversations, err := s.conversationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.enrich(ctx, userID, conversations...); err != nil {
		return nil, err
	}
	return conversations, nil
}

// GetConversation returns a conversation the user participates in
func (s *messagingService) GetConversation(ctx context.Context, conversationID, userID string) (*messaging.Conversation, error) {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	conversation, err := s.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if err := s.enrich(ctx, userID, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// ListMessages returns the messages of a conversation, oldest first, with senders
func (s *messagingService) ListMessages(ctx context.Context, conversationID, userID string, limit, offset int) ([]*messaging.Message, error) {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = shared.DefaultLimit
	}
	if limit > shared.MaxLimit {
		limit = shared.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := s.messageRepo.List(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.embedSenders(ctx, messages...); err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateConversation opens a conversation between the creator and the participants.
// A direct conversation between the same two users is reused.
func (s *messagingService) CreateConversation(ctx context.Context, creatorID string, input messaging.CreateConversationInput) (*messaging.Conversation, error) {
	if err := input.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	members := input.Members(creatorID)
	if len(members) < 2 {
		return nil, shared.Invalid(errors.New("a conversation needs at least one other participant"))
	}

	summaries, err := s.profileRepo.Summaries(ctx, members)
	if err != nil {
		return nil, err
	}
	for _, id := range members {
		if _, ok := summaries[id]; !ok {
			return nil, shared.NotFound("user", id)
		}
	}

	isGroup := len(members) > 2
	if !isGroup && input.Title == nil {
		existing, err := s.conversationRepo.FindDirect(ctx, members[0], members[1])
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if err := s.enrich(ctx, creatorID, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	now := s.now()
	conversation := &messaging.Conversation{
		ID:        uuid.NewString(),
		Title:     input.Title,
		IsGroup:   isGroup,
		CreatedBy: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	participants := make([]*messaging.Participant, 0, len(members))
	for _, id := range members {
		participants = append(participants, &messaging.Participant{
			ID:             uuid.NewString(),
			ConversationID: conversation.ID,
			UserID:         id,
			JoinedAt:       now,
		})
	}

	if err := s.conversationRepo.Create(ctx, conversation, participants); err != nil {
		return nil, err
	}

	for _, p := range participants {
		p.User = summaries[p.UserID]
	}
	conversation.Participants = participants

	s.publisher.Publish(ctx, realtime.NewInsert(realtime.TopicConversations, realtime.TableConversations, conversation), members)

	s.logger.Info("Created conversation with id ", conversation.ID, " and ", len(members), " participants")
	return conversation, nil
}

// SendMessage stores a message, publishes it and notifies the other participants
func (s *messagingService) SendMessage(ctx context.Context, conversationID, senderID string, input messaging.SendInput) (*messaging.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}
	if err := s.requireParticipant(ctx, conversationID, senderID); err != nil {
		return nil, err
	}

	messageType := input.MessageType
	if messageType == "" {
		messageType = messaging.DefaultMessageType
	}

	now := s.now()
	message := &messaging.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        input.Content,
		MessageType:    messageType,
		Attachments:    input.Attachments,
		Status:         messaging.MessageStatusSent,
		ReplyTo:        input.ReplyTo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	if err := s.conversationRepo.Touch(ctx, conversationID, now); err != nil {
		return nil, err
	}
	if err := s.embedSenders(ctx, message); err != nil {
		return nil, err
	}

	participants, err := s.conversationRepo.ListParticipants(ctx, []string{conversationID})
	if err != nil {
		return nil, err
	}
	recipients := make([]string, 0, len(participants))
	for _, p := range participants {
		recipients = append(recipients, p.UserID)
	}

	s.publisher.Publish(ctx, realtime.NewInsert(realtime.MessagesTopic(conversationID), realtime.TableMessages, message), recipients)

	for _, userID := range recipients {
		if userID == senderID {
			continue
		}
		if _, err := s.notificationService.Create(ctx, messageNotification(userID, message)); err != nil {
			s.logger.Error("Failed to notify user ", userID, " of new message in conversation ", conversationID, ": ", err)
		}
	}

	return message, nil
}

// MarkAsRead records that the user has read the conversation up to now
func (s *messagingService) MarkAsRead(ctx context.Context, conversationID, userID string) error {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return err
	}
	return s.conversationRepo.MarkRead(ctx, conversationID, userID, s.now())
}

// GetDirectConversation returns the direct conversation between two users, or nil
func (s *messagingService) GetDirectConversation(ctx context.Context, userID, otherUserID string) (*messaging.Conversation, error) {
	conversation, err := s.conversationRepo.FindDirect(ctx, userID, otherUserID)
	if err != nil || conversation == nil {
		return nil, err
	}
	if err := s.enrich(ctx, userID, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// IsParticipant reports whether the user belongs to the conversation
func (s *messagingService) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	_, err := s.conversationRepo.GetParticipant(ctx, conversationID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *messagingService) requireParticipant(ctx context.Context, conversationID, userID string) error {
	ok, err := s.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		if _, err := s.conversationRepo.GetByID(ctx, conversationID); err != nil {
			return err
		}
		return shared.Forbidden("not a participant of this conversation")
	}
	return nil
}

// enrich embeds participants, the last message and the unread count of userID
func (s *messagingService) enrich(ctx context.Context, userID string, conversations ...*messaging.Conversation) error {
	if len(conversations) == 0 {
		return nil
	}

	ids := make([]string, 0, len(conversations))
	for _, c := range conversations {
		ids = append(ids, c.ID)
	}
	participants, err := s.conversationRepo.ListParticipants(ctx, ids)
	if err != nil {
		return err
	}

	userIDs := make([]string, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}
	summaries, err := s.profileRepo.Summaries(ctx, userIDs)
	if err != nil {
		return err
	}

	byConversation := make(map[string][]*messaging.Participant, len(conversations))
	for _, p := range participants {
		p.User = summaries[p.UserID]
		byConversation[p.ConversationID] = append(byConversation[p.ConversationID], p)
	}

	for _, c := range conversations {
		c.Participants = byConversation[c.ID]

		last, err := s.messageRepo.Last(ctx, c.ID)
		if err != nil {
			return err
		}
		if last != nil {
			last.Sender = summaries[last.SenderID]
		}
		c.LastMessage = last

		var since *time.Time
		for _, p := range c.Participants {
			if p.UserID == userID {
				since = p.LastReadAt
			}
		}
		c.UnreadCount, err = s.messageRepo.CountUnread(ctx, c.ID, userID, since)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *messagingService) embedSenders(ctx context.Context, messages ...*messaging.Message) error {
	if len(messages) == 0 {
		return nil
	}

	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.SenderID)
	}
	summaries, err := s.profileRepo.Summaries(ctx, ids)
	if err != nil {
		return err
	}
	for _, m := range messages {
		m.Sender = summaries[m.SenderID]
	}
	return nil
}

func messageNotification(userID string, message *messaging.Message) notifications.CreateInput {
	title := "Nouveau message"
	if message.Sender != nil {
		if name := strings.TrimSpace(message.Sender.FirstName + " " + message.Sender.LastName); name != "" {
			title = fmt.Sprintf("Message de %s", name)
		}
	}

	preview := message.Content
	if utf8.RuneCountInString(preview) > messagePreviewLength {
		preview = string([]rune(preview)[:messagePreviewLength]) + "…"
	}

	return notifications.CreateInput{
		UserID:    userID,
		Type:      notifications.TypeMessage,
		Title:     title,
		Message:   preview,
		Priority:  notifications.PriorityLow,
		ActionURL: "/messages?conversation=" + message.ConversationID,
		RelatedID: message.ConversationID,
	}
}
