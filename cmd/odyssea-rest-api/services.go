package main

import (
	"fmt"

	v1 "github.com/Tsilavina4274/odyssea/internal/api/rest/v1"
	"github.com/Tsilavina4274/odyssea/internal/app"
	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/auth"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/mailer"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

type appRepositories struct {
	users         users.UserRepository
	profiles      users.ProfileRepository
	revokedTokens users.RevokedTokenRepository
	universities  universities.UniversityRepository
	formations    universities.FormationRepository
	applications  applications.ApplicationRepository
	documents     documents.DocumentRepository
	conversations messaging.ConversationRepository
	messages      messaging.MessageRepository
	notifications notifications.NotificationRepository
	events        events.EventRepository
}

// initializeRepositories sets up the GORM repositories
func initializeRepositories(db *gorm.DB, log logger.Logger) (*appRepositories, error) {
	var repos appRepositories
	var err error

	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.profiles, err = persistence.NewGormProfileRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	if repos.revokedTokens, err = persistence.NewGormRevokedTokenRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create revoked token repository: %w", err)
	}
	if repos.universities, err = persistence.NewGormUniversityRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create university repository: %w", err)
	}
	if repos.formations, err = persistence.NewGormFormationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create formation repository: %w", err)
	}
	if repos.applications, err = persistence.NewGormApplicationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create application repository: %w", err)
	}
	if repos.documents, err = persistence.NewGormDocumentRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create document repository: %w", err)
	}
	if repos.conversations, err = persistence.NewGormConversationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create conversation repository: %w", err)
	}
	if repos.messages, err = persistence.NewGormMessageRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}
	if repos.notifications, err = persistence.NewGormNotificationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	if repos.events, err = persistence.NewGormEventRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create event repository: %w", err)
	}

	return &repos, nil
}

// initializeApplicationServices sets up all application services.
// documentConnector may be nil, the document routes are then not registered.
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *appRepositories,
	documentConnector documents.DocumentConnector,
	publisher realtime.Publisher,
	log logger.Logger,
) (v1.Services, error) {
	var services v1.Services

	mail, err := mailer.NewMailer(&cfg.Mailer, log)
	if err != nil {
		return services, fmt.Errorf("failed to create mailer: %w", err)
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	hasher := auth.NewBcryptHasher(0)

	authService, err := app.NewAuthService(
		repos.users, repos.profiles, repos.revokedTokens,
		tokens, hasher, mail,
		&cfg.Auth, cfg.Mailer.ResetURL, log,
	)
	if err != nil {
		return services, fmt.Errorf("failed to create auth service: %w", err)
	}

	profileService, err := app.NewProfileService(repos.profiles, log)
	if err != nil {
		return services, fmt.Errorf("failed to create profile service: %w", err)
	}

	universityService, err := app.NewUniversityService(repos.universities, repos.formations, log)
	if err != nil {
		return services, fmt.Errorf("failed to create university service: %w", err)
	}

	notificationService, err := app.NewNotificationService(repos.notifications, repos.profiles, repos.events, publisher, log)
	if err != nil {
		return services, fmt.Errorf("failed to create notification service: %w", err)
	}

	var documentService documents.DocumentService
	if documentConnector != nil {
		documentService, err = app.NewDocumentService(documentConnector, repos.documents, repos.applications, repos.profiles, log)
		if err != nil {
			return services, fmt.Errorf("failed to create document service: %w", err)
		}
	}

	applicationService, err := app.NewApplicationService(
		repos.applications, repos.formations, repos.profiles,
		notificationService, documentService, log,
	)
	if err != nil {
		return services, fmt.Errorf("failed to create application service: %w", err)
	}

	messagingService, err := app.NewMessagingService(
		repos.conversations, repos.messages, repos.profiles,
		notificationService, publisher, log,
	)
	if err != nil {
		return services, fmt.Errorf("failed to create messaging service: %w", err)
	}

	eventService, err := app.NewEventService(repos.events, notificationService, log)
	if err != nil {
		return services, fmt.Errorf("failed to create event service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return v1.Services{
		AuthService:         authService,
		ProfileService:      profileService,
		UniversityService:   universityService,
		ApplicationService:  applicationService,
		DocumentService:     documentService,
		MessagingService:    messagingService,
		NotificationService: notificationService,
		EventService:        eventService,
	}, nil
}
