package v1

import (
	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Services holds the application services the routes delegate to.
// DocumentService is nil when no document connector is configured.
type Services struct {
	AuthService         users.AuthService
	ProfileService      users.ProfileService
	UniversityService   universities.UniversityService
	ApplicationService  applications.ApplicationService
	DocumentService     documents.DocumentService
	MessagingService    messaging.MessagingService
	NotificationService notifications.NotificationService
	EventService        events.EventService
}

// SetupRoutes sets up all the API routes for version 1.
// The realtime endpoint is registered only when realtimeHandler is not nil.
func SetupRoutes(r *gin.Engine, services Services, realtimeHandler RealtimeHandler) {
	v1 := r.Group(BasePath) // lookup in version file

	student := RequireUserType(users.UserTypeStudent)
	reviewer := RequireUserType(users.UserTypeEstablishment, users.UserTypeAdmin)
	admin := RequireUserType(users.UserTypeAdmin)

	authHandler := NewAuthHandler(services.AuthService)
	profileHandler := NewProfileHandler(services.ProfileService)
	universityHandler := NewUniversityHandler(services.UniversityService)
	applicationHandler := NewApplicationHandler(services.ApplicationService)
	messagingHandler := NewMessagingHandler(services.MessagingService)
	notificationHandler := NewNotificationHandler(services.NotificationService)
	eventHandler := NewEventHandler(services.EventService)

	// Public routes
	v1.POST("/auth/signup", authHandler.SignUp)
	v1.POST("/auth/signin", authHandler.SignIn)
	v1.POST("/auth/password/reset", authHandler.RequestPasswordReset)
	v1.POST("/auth/password/reset/confirm", authHandler.ConfirmPasswordReset)

	v1.GET("/universities", universityHandler.List)
	v1.GET("/universities/:id", universityHandler.GetByID)
	v1.GET("/universities/:id/formations", universityHandler.ListFormations)
	v1.GET("/formations", universityHandler.SearchFormations)
	v1.GET("/formations/filters", universityHandler.FilterOptions)
	v1.GET("/formations/:id", universityHandler.GetFormation)

	// private events are listed for signed in users only
	v1.GET("/events", OptionalAuth(services.AuthService), eventHandler.List)
	v1.GET("/events/:id", OptionalAuth(services.AuthService), eventHandler.GetByID)

	if realtimeHandler != nil {
		v1.GET("/realtime", realtimeHandler.Connect)
	}

	// Authenticated routes
	authed := v1.Group("")
	authed.Use(AuthMiddleware(services.AuthService))

	authed.GET("/auth/session", authHandler.GetSession)
	authed.POST("/auth/signout", authHandler.SignOut)
	authed.PUT("/auth/password", authHandler.UpdatePassword)

	authed.GET("/profile", profileHandler.GetMine)
	authed.PATCH("/profile", profileHandler.UpdateMine)
	authed.GET("/users/search", profileHandler.Search)
	authed.GET("/users/:userId", profileHandler.GetByUserID)

	authed.POST("/universities", admin, universityHandler.Create)
	authed.PATCH("/universities/:id", admin, universityHandler.Update)
	authed.DELETE("/universities/:id", admin, universityHandler.DeleteByID)
	authed.POST("/formations", reviewer, universityHandler.CreateFormation)
	authed.PATCH("/formations/:id", reviewer, universityHandler.UpdateFormation)
	authed.GET("/formations/:id/applications", reviewer, applicationHandler.ListByFormation)
	authed.GET("/formations/:id/stats", reviewer, applicationHandler.FormationStats)

	authed.GET("/applications", student, applicationHandler.ListMine)
	authed.POST("/applications", student, applicationHandler.Create)
	authed.GET("/applications/stats", student, applicationHandler.MyStats)
	authed.GET("/applications/eligibility", student, applicationHandler.CanApply)
	authed.GET("/applications/:id", applicationHandler.GetByID)
	authed.PATCH("/applications/:id", student, applicationHandler.Update)
	authed.POST("/applications/:id/submit", student, applicationHandler.Submit)
	authed.PUT("/applications/:id/status", reviewer, applicationHandler.UpdateStatus)
	authed.DELETE("/applications/:id", student, applicationHandler.DeleteByID)

	if services.DocumentService != nil {
		documentHandler := NewDocumentHandler(services.DocumentService)
		authed.POST("/applications/:id/documents", student, applicationHandler.AttachDocument)
		authed.GET("/documents/:id/file", documentHandler.DownloadByID)
		authed.DELETE("/documents/:id", documentHandler.DeleteByID)
	}

	authed.GET("/conversations", messagingHandler.ListConversations)
	authed.POST("/conversations", messagingHandler.CreateConversation)
	authed.GET("/conversations/direct", messagingHandler.GetDirectConversation)
	authed.GET("/conversations/:id", messagingHandler.GetConversation)
	authed.GET("/conversations/:id/messages", messagingHandler.ListMessages)
	authed.POST("/conversations/:id/messages", messagingHandler.SendMessage)
	authed.POST("/conversations/:id/read", messagingHandler.MarkAsRead)

	authed.GET("/notifications", notificationHandler.List)
	authed.GET("/notifications/recent", notificationHandler.ListRecent)
	authed.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	authed.POST("/notifications/read-all", notificationHandler.MarkAllAsRead)
	authed.POST("/notifications/broadcast", admin, notificationHandler.Broadcast)
	authed.POST("/notifications/:id/read", notificationHandler.MarkAsRead)
	authed.DELETE("/notifications/read", notificationHandler.DeleteRead)
	authed.DELETE("/notifications/:id", notificationHandler.DeleteByID)

	authed.POST("/events", reviewer, eventHandler.Create)
	authed.POST("/events/:id/register", eventHandler.Register)
	authed.POST("/events/:id/reminders", reviewer, eventHandler.SendReminders)
}
