package events

import (
	"context"
	"time"
)

// EventService covers events and registrations.
type EventService interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	List(ctx context.Context, query *Query) ([]*Event, error)
	GetByID(ctx context.Context, eventID string) (*Event, error)
	Register(ctx context.Context, eventID, userID string) (*Registration, error)
	// SendReminders notifies every registered user and returns how many were notified.
	SendReminders(ctx context.Context, eventID string, hoursBefore int) (int, error)
}

// EventRepository defines the interface for Event-related operations
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, query *Query, now time.Time) ([]*Event, error)
	GetByID(ctx context.Context, eventID string) (*Event, error)
	// Register stores the registration and increments the participant count atomically.
	Register(ctx context.Context, registration *Registration) error
	IsRegistered(ctx context.Context, eventID, userID string) (bool, error)
	ListRegisteredUserIDs(ctx context.Context, eventID string) ([]string, error)
}
