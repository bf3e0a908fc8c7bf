package app

import (
	"context"
	"fmt"

	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
)

// subscriptionAuthorizer implements the SubscriptionAuthorizer interface
type subscriptionAuthorizer struct {
	messagingService messaging.MessagingService
}

// NewSubscriptionAuthorizer creates a SubscriptionAuthorizer.
// Per-user topics are always allowed, message topics require participation.
func NewSubscriptionAuthorizer(messagingService messaging.MessagingService) realtime.SubscriptionAuthorizer {
	return &subscriptionAuthorizer{messagingService: messagingService}
}

func (a *subscriptionAuthorizer) Authorize(ctx context.Context, userID, topic string) error {
	switch topic {
	case realtime.TopicNotifications, realtime.TopicConversations:
		return nil
	}

	conversationID, ok := realtime.ConversationOf(topic)
	if !ok {
		return shared.Invalid(fmt.Errorf("unknown topic %q", topic))
	}

	participant, err := a.messagingService.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if !participant {
		return shared.Forbidden("not a participant of this conversation")
	}
	return nil
}
