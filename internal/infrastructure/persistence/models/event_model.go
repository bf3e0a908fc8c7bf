package models

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/events"
)

// EventModel is the GORM model of the events table
type EventModel struct {
	ID                   string    `gorm:"primaryKey;type:varchar(36)"`
	Title                string    `gorm:"not null;type:varchar(255)"`
	Description          string    `gorm:"type:text"`
	EventType            string    `gorm:"not null;index;type:varchar(20)"`
	StartDate            time.Time `gorm:"not null;index"`
	EndDate              *time.Time
	Location             string `gorm:"type:varchar(255)"`
	IsOnline             bool
	MeetingURL           string `gorm:"type:varchar(500)"`
	MaxParticipants      *int
	CurrentParticipants  int
	OrganizerID          string  `gorm:"not null;type:varchar(36)"`
	UniversityID         *string `gorm:"index;type:varchar(36)"`
	FormationID          *string `gorm:"type:varchar(36)"`
	IsPublic             bool
	RegistrationRequired bool
	RegistrationDeadline *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *events.Event {
	return &events.Event{
		ID:                   m.ID,
		Title:                m.Title,
		Description:          m.Description,
		EventType:            events.Type(m.EventType),
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		Location:             m.Location,
		IsOnline:             m.IsOnline,
		MeetingURL:           m.MeetingURL,
		MaxParticipants:      m.MaxParticipants,
		CurrentParticipants:  m.CurrentParticipants,
		OrganizerID:          m.OrganizerID,
		UniversityID:         deref(m.UniversityID),
		FormationID:          deref(m.FormationID),
		IsPublic:             m.IsPublic,
		RegistrationRequired: m.RegistrationRequired,
		RegistrationDeadline: m.RegistrationDeadline,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *events.Event) {
	m.ID = e.ID
	m.Title = e.Title
	m.Description = e.Description
	m.EventType = string(e.EventType)
	m.StartDate = e.StartDate
	m.EndDate = e.EndDate
	m.Location = e.Location
	m.IsOnline = e.IsOnline
	m.MeetingURL = e.MeetingURL
	m.MaxParticipants = e.MaxParticipants
	m.CurrentParticipants = e.CurrentParticipants
	m.OrganizerID = e.OrganizerID
	m.UniversityID = nullable(e.UniversityID)
	m.FormationID = nullable(e.FormationID)
	m.IsPublic = e.IsPublic
	m.RegistrationRequired = e.RegistrationRequired
	m.RegistrationDeadline = e.RegistrationDeadline
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// RegistrationModel is the GORM model of the event_registrations table
type RegistrationModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	EventID      string    `gorm:"not null;uniqueIndex:idx_registrations_event_user;type:varchar(36)"`
	UserID       string    `gorm:"not null;uniqueIndex:idx_registrations_event_user;type:varchar(36)"`
	RegisteredAt time.Time `gorm:"not null"`
	Status       string    `gorm:"not null;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (RegistrationModel) TableName() string {
	return "event_registrations"
}

// ToDomain converts GORM model to domain entity
func (m *RegistrationModel) ToDomain() *events.Registration {
	return &events.Registration{
		ID:           m.ID,
		EventID:      m.EventID,
		UserID:       m.UserID,
		RegisteredAt: m.RegisteredAt,
		Status:       m.Status,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RegistrationModel) FromDomain(r *events.Registration) {
	m.ID = r.ID
	m.EventID = r.EventID
	m.UserID = r.UserID
	m.RegisteredAt = r.RegisteredAt
	m.Status = r.Status
}
