//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagingService_DirectConversation(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.MessagingService

	alice, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Alice", "Morel")
	bob, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeEstablishment, "Bob", "Petit")

	none, err := svc.GetDirectConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	conversation, err := svc.CreateConversation(ctx, alice.ID, messaging.CreateConversationInput{
		ParticipantIDs: []string{bob.ID, alice.ID, bob.ID},
	})
	require.NoError(t, err)
	assert.False(t, conversation.IsGroup)
	assert.Len(t, conversation.Participants, 2)

	published := ts.Publisher.ByTable(realtime.TableConversations)
	require.Len(t, published, 1)
	assert.ElementsMatch(t, []string{alice.ID, bob.ID}, published[0].Recipients)

	again, err := svc.CreateConversation(ctx, bob.ID, messaging.CreateConversationInput{ParticipantIDs: []string{alice.ID}})
	require.NoError(t, err)
	assert.Equal(t, conversation.ID, again.ID)

	direct, err := svc.GetDirectConversation(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, direct)
	assert.Equal(t, conversation.ID, direct.ID)

	_, err = svc.CreateConversation(ctx, alice.ID, messaging.CreateConversationInput{ParticipantIDs: []string{alice.ID}})
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.CreateConversation(ctx, alice.ID, messaging.CreateConversationInput{ParticipantIDs: []string{uuid.NewString()}})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMessagingService_SendAndRead(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.MessagingService

	alice, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Alice", "Morel")
	bob, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Bob", "Petit")
	carol, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Carol", "Henry")
	outsider, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Eve", "Noir")

	title := "Projet tutoré"
	group, err := svc.CreateConversation(ctx, alice.ID, messaging.CreateConversationInput{
		ParticipantIDs: []string{bob.ID, carol.ID},
		Title:          &title,
	})
	require.NoError(t, err)
	assert.True(t, group.IsGroup)

	message, err := svc.SendMessage(ctx, group.ID, alice.ID, messaging.SendInput{Content: "Bonjour à tous"})
	require.NoError(t, err)
	assert.Equal(t, messaging.DefaultMessageType, message.MessageType)
	assert.Equal(t, messaging.MessageStatusSent, message.Status)
	require.NotNil(t, message.Sender)
	assert.Equal(t, "Alice", message.Sender.FirstName)

	_, err = svc.SendMessage(ctx, group.ID, bob.ID, messaging.SendInput{Content: "Salut !"})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, group.ID, outsider.ID, messaging.SendInput{Content: "Intrus"})
	assert.ErrorIs(t, err, shared.ErrForbidden)

	published := ts.Publisher.ByTable(realtime.TableMessages)
	require.Len(t, published, 2)
	assert.Equal(t, realtime.MessagesTopic(group.ID), published[0].Change.Topic)
	assert.ElementsMatch(t, []string{alice.ID, bob.ID, carol.ID}, published[0].Recipients)

	// carol is notified of both messages, alice only of bob's
	carolNotifications, err := ts.NotificationService.List(ctx, carol.ID, nil)
	require.NoError(t, err)
	require.Len(t, carolNotifications, 2)
	assert.Equal(t, notifications.TypeMessage, carolNotifications[0].Type)
	assert.Equal(t, notifications.PriorityLow, carolNotifications[0].Priority)
	aliceUnread, err := ts.NotificationService.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), aliceUnread)

	messages, err := svc.ListMessages(ctx, group.ID, carol.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Bonjour à tous", messages[0].Content)
	require.NotNil(t, messages[1].Sender)
	assert.Equal(t, "Bob", messages[1].Sender.FirstName)

	_, err = svc.ListMessages(ctx, group.ID, outsider.ID, 0, 0)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	conversations, err := svc.ListConversations(ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, int64(2), conversations[0].UnreadCount)
	require.NotNil(t, conversations[0].LastMessage)
	assert.Equal(t, "Salut !", conversations[0].LastMessage.Content)
	assert.Len(t, conversations[0].Participants, 3)

	require.NoError(t, svc.MarkAsRead(ctx, group.ID, carol.ID))
	read, err := svc.GetConversation(ctx, group.ID, carol.ID)
	require.NoError(t, err)
	assert.Zero(t, read.UnreadCount)

	bobView, err := svc.GetConversation(ctx, group.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobView.UnreadCount)

	_, err = svc.GetConversation(ctx, group.ID, outsider.ID)
	assert.ErrorIs(t, err, shared.ErrForbidden)
	_, err = svc.GetConversation(ctx, uuid.NewString(), alice.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSubscriptionAuthorizer_Authorize(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	alice, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Alice", "Morel")
	bob, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Bob", "Petit")
	eve, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Eve", "Noir")
	conversation := persistence.CreateTestConversation(t, ts.DBContext, alice.ID, bob.ID)

	assert.NoError(t, ts.Authorizer.Authorize(ctx, eve.ID, realtime.TopicNotifications))
	assert.NoError(t, ts.Authorizer.Authorize(ctx, eve.ID, realtime.TopicConversations))
	assert.NoError(t, ts.Authorizer.Authorize(ctx, bob.ID, realtime.MessagesTopic(conversation.ID)))
	assert.ErrorIs(t, ts.Authorizer.Authorize(ctx, eve.ID, realtime.MessagesTopic(conversation.ID)), shared.ErrForbidden)
	assert.ErrorIs(t, ts.Authorizer.Authorize(ctx, eve.ID, "profiles"), shared.ErrValidation)
}
