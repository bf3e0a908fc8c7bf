//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationSqliteRepository_ListByUserOrdersByActivity(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lea, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	paul, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Paul", "Durand")
	claire, _ := CreateTestUser(t, ctx, users.UserTypeEstablishment, "Claire", "Petit")

	older := CreateTestConversation(t, ctx, lea.ID, paul.ID)
	newer := CreateTestConversation(t, ctx, lea.ID, claire.ID)
	CreateTestConversation(t, ctx, paul.ID, claire.ID)

	require.NoError(t, ctx.ConversationRepo.Touch(context.Background(), older.ID, time.Now().UTC().Add(time.Minute)))

	list, err := ctx.ConversationRepo.ListByUser(context.Background(), lea.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, older.ID, list[0].ID)
	assert.Equal(t, newer.ID, list[1].ID)

	participants, err := ctx.ConversationRepo.ListParticipants(context.Background(), []string{older.ID})
	require.NoError(t, err)
	assert.Len(t, participants, 2)
}

func TestConversationSqliteRepository_FindDirect(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lea, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	paul, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Paul", "Durand")
	claire, _ := CreateTestUser(t, ctx, users.UserTypeEstablishment, "Claire", "Petit")

	CreateTestConversation(t, ctx, lea.ID, paul.ID, claire.ID)

	direct, err := ctx.ConversationRepo.FindDirect(context.Background(), lea.ID, paul.ID)
	require.NoError(t, err)
	assert.Nil(t, direct)

	created := CreateTestConversation(t, ctx, paul.ID, lea.ID)
	direct, err = ctx.ConversationRepo.FindDirect(context.Background(), lea.ID, paul.ID)
	require.NoError(t, err)
	require.NotNil(t, direct)
	assert.Equal(t, created.ID, direct.ID)
}

func TestConversationSqliteRepository_MarkRead(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lea, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	paul, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Paul", "Durand")
	conversation := CreateTestConversation(t, ctx, lea.ID, paul.ID)

	now := time.Now().UTC()
	require.NoError(t, ctx.ConversationRepo.MarkRead(context.Background(), conversation.ID, lea.ID, now))

	participant, err := ctx.ConversationRepo.GetParticipant(context.Background(), conversation.ID, lea.ID)
	require.NoError(t, err)
	require.NotNil(t, participant.LastReadAt)

	err = ctx.ConversationRepo.MarkRead(context.Background(), conversation.ID, uuid.NewString(), now)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMessageSqliteRepository_ListLastAndUnread(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lea, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	paul, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Paul", "Durand")
	conversation := CreateTestConversation(t, ctx, lea.ID, paul.ID)

	base := time.Now().UTC().Add(-time.Hour)
	CreateTestMessage(t, ctx, conversation.ID, lea.ID, "Bonjour", base)
	CreateTestMessage(t, ctx, conversation.ID, paul.ID, "Salut", base.Add(time.Minute))
	last := CreateTestMessage(t, ctx, conversation.ID, paul.ID, "Ça va ?", base.Add(2*time.Minute))

	list, err := ctx.MessageRepo.List(context.Background(), conversation.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Bonjour", list[0].Content)

	list, err = ctx.MessageRepo.List(context.Background(), conversation.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Salut", list[0].Content)

	fetched, err := ctx.MessageRepo.Last(context.Background(), conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, last.ID, fetched.ID)

	unread, err := ctx.MessageRepo.CountUnread(context.Background(), conversation.ID, lea.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	since := base.Add(90 * time.Second)
	unread, err = ctx.MessageRepo.CountUnread(context.Background(), conversation.ID, lea.ID, &since)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestMessageSqliteRepository_LastOfEmptyConversation(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lea, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	conversation := CreateTestConversation(t, ctx, lea.ID)

	last, err := ctx.MessageRepo.Last(context.Background(), conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, last)
}
