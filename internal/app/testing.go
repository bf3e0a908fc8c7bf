//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/auth"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/mailer"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test constants
const (
	TestJWTSecret = "0123456789abcdef0123456789abcdef"
	TestPassword  = "Orientation2024"
	TestResetURL  = "https://odyssea.test/reset-password"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService         users.AuthService
	ProfileService      users.ProfileService
	UniversityService   universities.UniversityService
	ApplicationService  applications.ApplicationService
	DocumentService     documents.DocumentService
	MessagingService    messaging.MessagingService
	NotificationService notifications.NotificationService
	EventService        events.EventService
	Authorizer          realtime.SubscriptionAuthorizer

	Tokens    *auth.JWTManager
	Mailer    *mailer.LogMailer
	Publisher *RecordingPublisher
	Connector *MemoryConnector

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	ts := &TestServices{
		Tokens:    auth.NewJWTManager(TestJWTSecret, "odyssea-test"),
		Mailer:    mailer.NewLogMailer(log),
		Publisher: &RecordingPublisher{},
		Connector: NewMemoryConnector(),
		DBContext: dbContext,
	}

	authSettings := &config.AuthSettings{
		JWTSecret:          TestJWTSecret,
		TokenDuration:      time.Hour,
		ResetTokenDuration: 15 * time.Minute,
		Issuer:             "odyssea-test",
	}

	var err error
	ts.AuthService, err = NewAuthService(
		dbContext.UserRepo,
		dbContext.ProfileRepo,
		dbContext.RevokedTokenRepo,
		ts.Tokens,
		auth.NewBcryptHasher(bcrypt.MinCost),
		ts.Mailer,
		authSettings,
		TestResetURL,
		log,
	)
	require.NoError(t, err, "Failed to create auth service")

	ts.ProfileService, err = NewProfileService(dbContext.ProfileRepo, log)
	require.NoError(t, err, "Failed to create profile service")

	ts.UniversityService, err = NewUniversityService(dbContext.UniversityRepo, dbContext.FormationRepo, log)
	require.NoError(t, err, "Failed to create university service")

	ts.NotificationService, err = NewNotificationService(dbContext.NotificationRepo, dbContext.ProfileRepo, dbContext.EventRepo, ts.Publisher, log)
	require.NoError(t, err, "Failed to create notification service")

	ts.DocumentService, err = NewDocumentService(ts.Connector, dbContext.DocumentRepo, dbContext.ApplicationRepo, dbContext.ProfileRepo, log)
	require.NoError(t, err, "Failed to create document service")

	ts.ApplicationService, err = NewApplicationService(
		dbContext.ApplicationRepo,
		dbContext.FormationRepo,
		dbContext.ProfileRepo,
		ts.NotificationService,
		ts.DocumentService,
		log,
	)
	require.NoError(t, err, "Failed to create application service")

	ts.MessagingService, err = NewMessagingService(
		dbContext.ConversationRepo,
		dbContext.MessageRepo,
		dbContext.ProfileRepo,
		ts.NotificationService,
		ts.Publisher,
		log,
	)
	require.NoError(t, err, "Failed to create messaging service")

	ts.EventService, err = NewEventService(dbContext.EventRepo, ts.NotificationService, log)
	require.NoError(t, err, "Failed to create event service")

	ts.Authorizer = NewSubscriptionAuthorizer(ts.MessagingService)

	return ts
}

// PublishedChange is a change recorded by RecordingPublisher
type PublishedChange struct {
	Change     realtime.Change
	Recipients []string
}

// RecordingPublisher keeps every published change
type RecordingPublisher struct {
	mu      sync.Mutex
	changes []PublishedChange
}

// Publish records the change
func (p *RecordingPublisher) Publish(_ context.Context, change realtime.Change, recipients []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, PublishedChange{Change: change, Recipients: append([]string(nil), recipients...)})
}

// ByTable returns the recorded changes of a table
func (p *RecordingPublisher) ByTable(table string) []PublishedChange {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []PublishedChange
	for _, c := range p.changes {
		if c.Change.Table == table {
			out = append(out, c)
		}
	}
	return out
}

// MemoryConnector keeps document content in memory
type MemoryConnector struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryConnector creates an empty MemoryConnector
func NewMemoryConnector() *MemoryConnector {
	return &MemoryConnector{blobs: make(map[string][]byte)}
}

func (c *MemoryConnector) Upload(_ context.Context, data []byte, blobName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blobs[blobName] = append([]byte(nil), data...)
	return nil
}

func (c *MemoryConnector) Download(_ context.Context, blobName string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.blobs[blobName]
	if !ok {
		return nil, shared.NotFound("blob", blobName)
	}
	return data, nil
}

func (c *MemoryConnector) Delete(_ context.Context, blobName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.blobs[blobName]; !ok {
		return shared.NotFound("blob", blobName)
	}
	delete(c.blobs, blobName)
	return nil
}

// Len returns the number of stored blobs
func (c *MemoryConnector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.blobs)
}

// SignUpTestUser registers a user through the auth service
func SignUpTestUser(t *testing.T, ts *TestServices, email string, userType users.UserType) (*users.User, *users.Profile) {
	t.Helper()

	user, profile, err := ts.AuthService.SignUp(context.Background(), users.SignUpInput{
		Email:     email,
		Password:  TestPassword,
		FirstName: "Camille",
		LastName:  "Rakoto",
		UserType:  userType,
	})
	require.NoError(t, err)
	return user, profile
}
