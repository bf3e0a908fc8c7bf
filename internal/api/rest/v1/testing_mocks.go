//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"

	"github.com/stretchr/testify/mock"
	"nhooyr.io/websocket"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, input users.SignUpInput) (*users.User, *users.Profile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*users.User), args.Get(1).(*users.Profile), args.Error(2)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*users.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockAuthService) GetSession(ctx context.Context, accessToken string) (*users.Session, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, accessToken string) (*users.Identity, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Identity), args.Error(1)
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	args := m.Called(ctx, resetToken, newPassword)
	return args.Error(0)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetByUserID(ctx context.Context, userID string) (*users.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateByUserID(ctx context.Context, userID string, update users.ProfileUpdate) (*users.Profile, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

func (m *MockProfileService) SearchUsers(ctx context.Context, query string, excludeIDs []string, limit int) ([]*users.ProfileSummary, error) {
	args := m.Called(ctx, query, excludeIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.ProfileSummary), args.Error(1)
}

// MockUniversityService is a mock implementation of UniversityService
type MockUniversityService struct {
	mock.Mock
}

func (m *MockUniversityService) List(ctx context.Context, query *universities.UniversityQuery) ([]*universities.University, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*universities.University), args.Error(1)
}

func (m *MockUniversityService) GetByID(ctx context.Context, universityID string) (*universities.University, error) {
	args := m.Called(ctx, universityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*universities.University), args.Error(1)
}

func (m *MockUniversityService) Create(ctx context.Context, university *universities.University) (*universities.University, error) {
	args := m.Called(ctx, university)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*universities.University), args.Error(1)
}

func (m *MockUniversityService) Update(ctx context.Context, universityID string, update universities.UniversityUpdate) (*universities.University, error) {
	args := m.Called(ctx, universityID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*universities.University), args.Error(1)
}

func (m *MockUniversityService) DeleteByID(ctx context.Context, universityID string) error {
	args := m.Called(ctx, universityID)
	return args.Error(0)
}

func (m *MockUniversityService) ListFormations(ctx context.Context, universityID string) ([]*universities.Formation, error) {
	args := m.Called(ctx, universityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*universities.Formation), args.Error(1)
}

func (m *MockUniversityService) SearchFormations(ctx context.Context, query *universities.FormationQuery) ([]*universities.Formation, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*universities.Formation), args.Error(1)
}

func (m *MockUniversityService) GetFormation(ctx context.Context, formationID string) (*universities.Formation, error) {
	args := m.Called(ctx, formationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*universities.Formation), args.Error(1)
}

func (m *MockUniversityService) CreateFormation(ctx context.Context, formation *universities.Formation) (*universities.Formation, error) {
	args := m.Called(ctx, formation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*universities.Formation), args.Error(1)
}

func (m *MockUniversityService) UpdateFormation(ctx context.Context, formationID string, update universities.FormationUpdate) (*universities.Formation, error) {
	args := m.Called(ctx, formationID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*universities.Formation), args.Error(1)
}

func (m *MockUniversityService) FilterOptions(ctx context.Context) (*universities.FilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*universities.FilterOptions), args.Error(1)
}

// MockApplicationService is a mock implementation of ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) ListByStudent(ctx context.Context, studentID string) ([]*applications.Application, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*applications.Application), args.Error(1)
}

func (m *MockApplicationService) ListByFormation(ctx context.Context, formationID string) ([]*applications.Application, error) {
	args := m.Called(ctx, formationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*applications.Application), args.Error(1)
}

func (m *MockApplicationService) GetByID(ctx context.Context, applicationID string) (*applications.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applications.Application), args.Error(1)
}

func (m *MockApplicationService) Create(ctx context.Context, studentID string, input applications.CreateInput) (*applications.Application, error) {
	args := m.Called(ctx, studentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applications.Application), args.Error(1)
}

func (m *MockApplicationService) Update(ctx context.Context, applicationID, studentID string, input applications.UpdateInput) (*applications.Application, error) {
	args := m.Called(ctx, applicationID, studentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applications.Application), args.Error(1)
}

func (m *MockApplicationService) Submit(ctx context.Context, applicationID, studentID string) (*applications.Application, error) {
	args := m.Called(ctx, applicationID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applications.Application), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, applicationID, reviewerID string, status applications.Status, notes string) (*applications.Application, error) {
	args := m.Called(ctx, applicationID, reviewerID, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applications.Application), args.Error(1)
}

func (m *MockApplicationService) DeleteByID(ctx context.Context, applicationID, studentID string) error {
	args := m.Called(ctx, applicationID, studentID)
	return args.Error(0)
}

func (m *MockApplicationService) StudentStats(ctx context.Context, studentID string) (*applications.Stats, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applications.Stats), args.Error(1)
}

func (m *MockApplicationService) FormationStats(ctx context.Context, formationID string) (*applications.Stats, error) {
	args := m.Called(ctx, formationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applications.Stats), args.Error(1)
}

func (m *MockApplicationService) CanApply(ctx context.Context, studentID, formationID string) (*applications.Eligibility, error) {
	args := m.Called(ctx, studentID, formationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applications.Eligibility), args.Error(1)
}

func (m *MockApplicationService) AttachDocument(ctx context.Context, applicationID, studentID string, file *multipart.FileHeader) (*documents.Document, error) {
	args := m.Called(ctx, applicationID, studentID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

// MockDocumentService is a mock implementation of DocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, ownerID, applicationID string, file *multipart.FileHeader) (*documents.Document, error) {
	args := m.Called(ctx, ownerID, applicationID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, documentID, requesterID string) (*documents.Document, []byte, error) {
	args := m.Called(ctx, documentID, requesterID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*documents.Document), args.Get(1).([]byte), args.Error(2)
}

func (m *MockDocumentService) DeleteByID(ctx context.Context, documentID, ownerID string) error {
	args := m.Called(ctx, documentID, ownerID)
	return args.Error(0)
}

// MockMessagingService is a mock implementation of MessagingService
type MockMessagingService struct {
	mock.Mock
}

func (m *MockMessagingService) ListConversations(ctx context.Context, userID string) ([]*messaging.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messaging.Conversation), args.Error(1)
}

func (m *MockMessagingService) GetConversation(ctx context.Context, conversationID, userID string) (*messaging.Conversation, error) {
	args := m.Called(ctx, conversationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Conversation), args.Error(1)
}

func (m *MockMessagingService) ListMessages(ctx context.Context, conversationID, userID string, limit, offset int) ([]*messaging.Message, error) {
	args := m.Called(ctx, conversationID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messaging.Message), args.Error(1)
}

func (m *MockMessagingService) CreateConversation(ctx context.Context, creatorID string, input messaging.CreateConversationInput) (*messaging.Conversation, error) {
	args := m.Called(ctx, creatorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Conversation), args.Error(1)
}

func (m *MockMessagingService) SendMessage(ctx context.Context, conversationID, senderID string, input messaging.SendInput) (*messaging.Message, error) {
	args := m.Called(ctx, conversationID, senderID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Message), args.Error(1)
}

func (m *MockMessagingService) MarkAsRead(ctx context.Context, conversationID, userID string) error {
	args := m.Called(ctx, conversationID, userID)
	return args.Error(0)
}

func (m *MockMessagingService) GetDirectConversation(ctx context.Context, userID, otherUserID string) (*messaging.Conversation, error) {
	args := m.Called(ctx, userID, otherUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Conversation), args.Error(1)
}

func (m *MockMessagingService) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	args := m.Called(ctx, conversationID, userID)
	return args.Bool(0), args.Error(1)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, userID string, query *notifications.Query) ([]*notifications.Notification, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) ListRecent(ctx context.Context, userID string) ([]*notifications.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, notificationID, userID string) (bool, error) {
	args := m.Called(ctx, notificationID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) Create(ctx context.Context, input notifications.CreateInput) (*notifications.Notification, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) DeleteByID(ctx context.Context, notificationID, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockNotificationService) DeleteRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) BroadcastToUserType(ctx context.Context, userType users.UserType, input notifications.CreateInput) (int, error) {
	args := m.Called(ctx, userType, input)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) CreateEventReminder(ctx context.Context, eventID string, userIDs []string, hoursBefore int) (int, error) {
	args := m.Called(ctx, eventID, userIDs, hoursBefore)
	return args.Int(0), args.Error(1)
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, event *events.Event) (*events.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) List(ctx context.Context, query *events.Query) ([]*events.Event, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*events.Event), args.Error(1)
}

func (m *MockEventService) GetByID(ctx context.Context, eventID string) (*events.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) Register(ctx context.Context, eventID, userID string) (*events.Registration, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Registration), args.Error(1)
}

func (m *MockEventService) SendReminders(ctx context.Context, eventID string, hoursBefore int) (int, error) {
	args := m.Called(ctx, eventID, hoursBefore)
	return args.Int(0), args.Error(1)
}

// MockConnectionServer is a mock implementation of ConnectionServer
type MockConnectionServer struct {
	mock.Mock
}

func (m *MockConnectionServer) Serve(ctx context.Context, userID string, conn *websocket.Conn) error {
	args := m.Called(ctx, userID, conn)
	return args.Error(0)
}

// MockPublisher is a mock implementation of realtime.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, change realtime.Change, recipients []string) {
	m.Called(ctx, change, recipients)
}
