//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

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

func systemNotice(userID string) notifications.CreateInput {
	return notifications.CreateInput{
		UserID:  userID,
		Type:    notifications.TypeSystem,
		Title:   "Maintenance",
		Message: "La plateforme sera indisponible dimanche matin",
	}
}

func TestNotificationService_CreateAndRead(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.NotificationService

	user, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Inès", "Bernard")
	other, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Hugo", "Lambert")

	first, err := svc.Create(ctx, systemNotice(user.ID))
	require.NoError(t, err)
	assert.Equal(t, notifications.PriorityMedium, first.Priority)
	assert.False(t, first.IsRead)

	published := ts.Publisher.ByTable(realtime.TableNotifications)
	require.Len(t, published, 1)
	assert.Equal(t, realtime.TopicNotifications, published[0].Change.Topic)
	assert.Equal(t, []string{user.ID}, published[0].Recipients)

	_, err = svc.Create(ctx, systemNotice(""))
	assert.ErrorIs(t, err, shared.ErrValidation)

	second, err := svc.Create(ctx, systemNotice(user.ID))
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	changed, err := svc.MarkAsRead(ctx, first.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = svc.MarkAsRead(ctx, first.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = svc.MarkAsRead(ctx, second.ID, other.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = svc.MarkAsRead(ctx, uuid.NewString(), user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	unread := false
	list, err := svc.List(ctx, user.ID, &notifications.Query{IsRead: &unread})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	marked, err := svc.MarkAllAsRead(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	removed, err := svc.DeleteRead(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	list, err = svc.List(ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationService_DeleteAndRecent(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.NotificationService

	user, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Inès", "Bernard")
	other, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Hugo", "Lambert")

	old := persistence.NewTestNotification(user.ID, notifications.TypeReminder, time.Now().UTC().Add(-48*time.Hour))
	require.NoError(t, ts.DBContext.NotificationRepo.Create(ctx, old))
	fresh, err := svc.Create(ctx, systemNotice(user.ID))
	require.NoError(t, err)

	recent, err := svc.ListRecent(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, fresh.ID, recent[0].ID)

	all, err := svc.List(ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.ErrorIs(t, svc.DeleteByID(ctx, fresh.ID, other.ID), shared.ErrNotFound)
	require.NoError(t, svc.DeleteByID(ctx, fresh.ID, user.ID))
	assert.ErrorIs(t, svc.DeleteByID(ctx, fresh.ID, user.ID), shared.ErrNotFound)
}

func TestNotificationService_Broadcast(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.NotificationService

	s1, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Inès", "Bernard")
	s2, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Hugo", "Lambert")
	uni, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeEstablishment, "Paul", "Garnier")

	input := systemNotice(uni.ID)
	input.Priority = notifications.PriorityHigh
	sent, err := svc.BroadcastToUserType(ctx, users.UserTypeStudent, input)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	for _, id := range []string{s1.ID, s2.ID} {
		list, err := svc.List(ctx, id, nil)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, notifications.PriorityHigh, list[0].Priority)
	}
	list, err := svc.List(ctx, uni.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.Len(t, ts.Publisher.ByTable(realtime.TableNotifications), 2)

	sent, err = svc.BroadcastToUserType(ctx, users.UserTypeAdmin, systemNotice(""))
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestNotificationService_CreateEventReminder(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.NotificationService

	organizer, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeEstablishment, "Paul", "Garnier")
	student, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Inès", "Bernard")
	event := persistence.CreateTestEvent(t, ts.DBContext, organizer.ID, time.Now().Add(48*time.Hour), nil)

	created, err := svc.CreateEventReminder(ctx, event.ID, []string{student.ID}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	list, err := svc.List(ctx, student.ID, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, notifications.TypeEventReminder, list[0].Type)
	assert.Equal(t, event.ID, list[0].RelatedID)
	assert.Contains(t, list[0].Message, "Journée portes ouvertes")
	assert.Contains(t, list[0].Message, "24 heures")

	_, err = svc.CreateEventReminder(ctx, uuid.NewString(), []string{student.ID}, 2)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
