//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestPasswordHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3uX0Y9x0pQ1xkR0r5c5r5bW"
	TestCity         = "Lyon"
	TestDomain       = "Informatique"
	TestLevel        = "Licence"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	UserRepo         users.UserRepository
	ProfileRepo      users.ProfileRepository
	RevokedTokenRepo users.RevokedTokenRepository
	UniversityRepo   universities.UniversityRepository
	FormationRepo    universities.FormationRepository
	ApplicationRepo  applications.ApplicationRepository
	DocumentRepo     documents.DocumentRepository
	ConversationRepo messaging.ConversationRepository
	MessageRepo      messaging.MessageRepository
	NotificationRepo notifications.NotificationRepository
	EventRepo        events.EventRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			if err := DropDatabase(adminDSN, uniqueDBName); err != nil {
				t.Logf("failed to drop test database %s: %v", uniqueDBName, err)
			}
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.ProfileRepo, err = NewGormProfileRepository(db, log)
	require.NoError(t, err)
	tc.RevokedTokenRepo, err = NewGormRevokedTokenRepository(db, log)
	require.NoError(t, err)
	tc.UniversityRepo, err = NewGormUniversityRepository(db, log)
	require.NoError(t, err)
	tc.FormationRepo, err = NewGormFormationRepository(db, log)
	require.NoError(t, err)
	tc.ApplicationRepo, err = NewGormApplicationRepository(db, log)
	require.NoError(t, err)
	tc.DocumentRepo, err = NewGormDocumentRepository(db, log)
	require.NoError(t, err)
	tc.ConversationRepo, err = NewGormConversationRepository(db, log)
	require.NoError(t, err)
	tc.MessageRepo, err = NewGormMessageRepository(db, log)
	require.NoError(t, err)
	tc.NotificationRepo, err = NewGormNotificationRepository(db, log)
	require.NoError(t, err)
	tc.EventRepo, err = NewGormEventRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestUser stores a user with its profile
func CreateTestUser(t *testing.T, tc *TestContext, userType users.UserType, firstName, lastName string) (*users.User, *users.Profile) {
	t.Helper()

	now := time.Now().UTC()
	user := &users.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(firstName+"."+lastName) + "." + uuid.NewString()[:8] + "@odyssea.fr",
		PasswordHash: TestPasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &users.Profile{
		ID:                 uuid.NewString(),
		UserID:             user.ID,
		FirstName:          firstName,
		LastName:           lastName,
		UserType:           userType,
		IsActive:           true,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, tc.UserRepo.Create(context.Background(), user, profile))
	return user, profile
}

// CreateTestUniversity stores a public university in city
func CreateTestUniversity(t *testing.T, tc *TestContext, name, city string) *universities.University {
	t.Helper()

	now := time.Now().UTC()
	university := &universities.University{
		ID:             uuid.NewString(),
		Name:           name,
		City:           city,
		Type:           universities.TypePublic,
		Rating:         4.2,
		Accreditations: []string{"HCERES"},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, tc.UniversityRepo.Create(context.Background(), university))
	return university
}

// NewTestFormation returns an active formation with free places, not stored
func NewTestFormation(universityID, name string) *universities.Formation {
	now := time.Now().UTC()
	return &universities.Formation{
		ID:              uuid.NewString(),
		UniversityID:    universityID,
		Name:            name,
		Level:           TestLevel,
		Domain:          TestDomain,
		DurationYears:   3,
		TotalPlaces:     100,
		AvailablePlaces: 25,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CreateTestFormation stores an active formation with free places
func CreateTestFormation(t *testing.T, tc *TestContext, universityID, name string) *universities.Formation {
	t.Helper()

	formation := NewTestFormation(universityID, name)
	require.NoError(t, tc.FormationRepo.Create(context.Background(), formation))
	return formation
}

// CreateTestApplication stores an application with the given status
func CreateTestApplication(t *testing.T, tc *TestContext, studentID, formationID string, status applications.Status) *applications.Application {
	t.Helper()

	now := time.Now().UTC()
	application := &applications.Application{
		ID:               uuid.NewString(),
		StudentID:        studentID,
		FormationID:      formationID,
		Status:           status,
		MotivationLetter: "Je souhaite rejoindre cette formation.",
		Priority:         1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if status != applications.StatusDraft {
		application.SubmittedAt = &now
	}
	require.NoError(t, tc.ApplicationRepo.Create(context.Background(), application))
	return application
}

// CreateTestConversation stores a conversation between the given users
func CreateTestConversation(t *testing.T, tc *TestContext, creatorID string, others ...string) *messaging.Conversation {
	t.Helper()

	now := time.Now().UTC()
	conversation := &messaging.Conversation{
		ID:        uuid.NewString(),
		IsGroup:   len(others) > 1,
		CreatedBy: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	var participants []*messaging.Participant
	for _, userID := range append([]string{creatorID}, others...) {
		participants = append(participants, &messaging.Participant{
			ID:             uuid.NewString(),
			ConversationID: conversation.ID,
			UserID:         userID,
			JoinedAt:       now,
		})
	}
	require.NoError(t, tc.ConversationRepo.Create(context.Background(), conversation, participants))
	return conversation
}

// CreateTestMessage stores a text message sent at the given time
func CreateTestMessage(t *testing.T, tc *TestContext, conversationID, senderID, content string, at time.Time) *messaging.Message {
	t.Helper()

	message := &messaging.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		MessageType:    messaging.DefaultMessageType,
		Status:         messaging.MessageStatusSent,
		CreatedAt:      at.UTC(),
		UpdatedAt:      at.UTC(),
	}
	require.NoError(t, tc.MessageRepo.Create(context.Background(), message))
	return message
}

// NewTestNotification returns an unread notification, not stored
func NewTestNotification(userID string, notificationType notifications.Type, createdAt time.Time) *notifications.Notification {
	return &notifications.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notificationType,
		Title:     "Nouvelle notification",
		Message:   "Vous avez une nouvelle notification",
		Priority:  notifications.PriorityMedium,
		CreatedAt: createdAt.UTC(),
	}
}

// CreateTestEvent stores an event starting at start
func CreateTestEvent(t *testing.T, tc *TestContext, organizerID string, start time.Time, maxParticipants *int) *events.Event {
	t.Helper()

	now := time.Now().UTC()
	event := &events.Event{
		ID:              uuid.NewString(),
		Title:           "Journée portes ouvertes",
		EventType:       events.TypeOpenDay,
		StartDate:       start.UTC(),
		OrganizerID:     organizerID,
		MaxParticipants: maxParticipants,
		IsPublic:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, tc.EventRepo.Create(context.Background(), event))
	return event
}
