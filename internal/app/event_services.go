package app

import (
	"context"
	"errors"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/google/uuid"
)

// eventService implements the EventService interface
type eventService struct {
	eventRepo           events.EventRepository
	notificationService notifications.NotificationService
	logger              logger.Logger
	now                 func() time.Time
}

// NewEventService creates a new instance of EventService
func NewEventService(eventRepo events.EventRepository, notificationService notifications.NotificationService, logger logger.Logger) (events.EventService, error) {
	return &eventService{
		eventRepo:           eventRepo,
		notificationService: notificationService,
		logger:              logger,
		now:                 func() time.Time { return time.Now().UTC() },
	}, nil
}

// Create stores a new event
func (s *eventService) Create(ctx context.Context, event *events.Event) (*events.Event, error) {
	now := s.now()
	event.ID = uuid.NewString()
	event.CurrentParticipants = 0
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("Created event with id ", event.ID, " organized by ", event.OrganizerID)
	return s.eventRepo.GetByID(ctx, event.ID)
}

// List returns events ordered by start date
func (s *eventService) List(ctx context.Context, query *events.Query) ([]*events.Event, error) {
	if query == nil {
		query = &events.Query{}
	}
	if query.Limit <= 0 {
		query.Limit = shared.DefaultLimit
	}
	return s.eventRepo.List(ctx, query, s.now())
}

// GetByID fetches an event
func (s *eventService) GetByID(ctx context.Context, eventID string) (*events.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

// Register signs a user up for an event
func (s *eventService) Register(ctx context.Context, eventID, userID string) (*events.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	registered, err := s.eventRepo.IsRegistered(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, events.ErrAlreadyRegistered
	}

	now := s.now()
	if err := event.CheckRegistration(now); err != nil {
		return nil, err
	}

	registration := &events.Registration{
		ID:           uuid.NewString(),
		EventID:      eventID,
		UserID:       userID,
		RegisteredAt: now,
		Status:       events.RegistrationStatusRegistered,
	}
	if err := s.eventRepo.Register(ctx, registration); err != nil {
		if errors.Is(err, shared.ErrConflict) {
			return nil, events.ErrAlreadyRegistered
		}
		return nil, err
	}

	s.logger.Info("Registered user ", userID, " to event ", eventID)
	return registration, nil
}

// SendReminders notifies every registered user of the event
func (s *eventService) SendReminders(ctx context.Context, eventID string, hoursBefore int) (int, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return 0, err
	}

	userIDs, err := s.eventRepo.ListRegisteredUserIDs(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if len(userIDs) == 0 {
		return 0, nil
	}

	return s.notificationService.CreateEventReminder(ctx, eventID, userIDs, hoursBefore)
}
