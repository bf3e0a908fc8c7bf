//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateAndList(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.EventService

	organizer, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeEstablishment, "Paul", "Garnier")

	created, err := svc.Create(ctx, &events.Event{
		Title:               "Webinaire Master Data",
		EventType:           events.TypeWebinar,
		StartDate:           time.Now().UTC().Add(72 * time.Hour),
		IsOnline:            true,
		MeetingURL:          "https://visio.odyssea.test/master-data",
		OrganizerID:         organizer.ID,
		CurrentParticipants: 12,
		IsPublic:            true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.CurrentParticipants)

	persistence.CreateTestEvent(t, ts.DBContext, organizer.ID, time.Now().Add(-72*time.Hour), nil)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	upcoming, err := svc.List(ctx, &events.Query{UpcomingOnly: true})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, created.ID, upcoming[0].ID)

	webinars, err := svc.List(ctx, &events.Query{EventType: events.TypeWebinar})
	require.NoError(t, err)
	assert.Len(t, webinars, 1)

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEventService_Register(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.EventService

	organizer, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeEstablishment, "Paul", "Garnier")
	s1, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Inès", "Bernard")
	s2, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Hugo", "Lambert")

	one := 1
	event := persistence.CreateTestEvent(t, ts.DBContext, organizer.ID, time.Now().Add(48*time.Hour), &one)

	registration, err := svc.Register(ctx, event.ID, s1.ID)
	require.NoError(t, err)
	assert.Equal(t, events.RegistrationStatusRegistered, registration.Status)

	_, err = svc.Register(ctx, event.ID, s1.ID)
	assert.ErrorIs(t, err, events.ErrAlreadyRegistered)

	_, err = svc.Register(ctx, event.ID, s2.ID)
	assert.ErrorIs(t, err, events.ErrEventFull)

	fetched, err := svc.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.CurrentParticipants)

	deadline := time.Now().UTC().Add(-time.Hour)
	closed, err := svc.Create(ctx, &events.Event{
		Title:                "Entretiens de sélection",
		EventType:            events.TypeInterview,
		StartDate:            time.Now().UTC().Add(96 * time.Hour),
		OrganizerID:          organizer.ID,
		RegistrationRequired: true,
		RegistrationDeadline: &deadline,
	})
	require.NoError(t, err)
	_, err = svc.Register(ctx, closed.ID, s2.ID)
	assert.ErrorIs(t, err, events.ErrRegistrationClosed)

	_, err = svc.Register(ctx, uuid.NewString(), s2.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEventService_SendReminders(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	svc := ts.EventService

	organizer, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeEstablishment, "Paul", "Garnier")
	s1, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Inès", "Bernard")
	s2, _ := persistence.CreateTestUser(t, ts.DBContext, users.UserTypeStudent, "Hugo", "Lambert")
	event := persistence.CreateTestEvent(t, ts.DBContext, organizer.ID, time.Now().Add(5*time.Hour), nil)

	sent, err := svc.SendReminders(ctx, event.ID, 5)
	require.NoError(t, err)
	assert.Zero(t, sent)

	for _, id := range []string{s1.ID, s2.ID} {
		_, err := svc.Register(ctx, event.ID, id)
		require.NoError(t, err)
	}

	sent, err = svc.SendReminders(ctx, event.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	list, err := ts.NotificationService.List(ctx, s2.ID, &notifications.Query{Type: notifications.TypeEventReminder})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, list[0].Message, "5 heures")

	_, err = svc.SendReminders(ctx, uuid.NewString(), 5)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
