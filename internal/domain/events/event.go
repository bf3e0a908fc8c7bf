package events

import (
	"errors"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// Type of an event
type Type string

// Event types
const (
	TypeOpenDay    Type = "open_day"
	TypeConference Type = "conference"
	TypeWebinar    Type = "webinar"
	TypeDeadline   Type = "deadline"
	TypeExam       Type = "exam"
	TypeInterview  Type = "interview"
	TypeOther      Type = "other"
)

// RegistrationStatusRegistered is the status of a new registration
const RegistrationStatusRegistered = "registered"

// DefaultReminderHours before the start of an event
const DefaultReminderHours = 24

var (
	ErrEventFull          = errors.New("event is full")
	ErrRegistrationClosed = errors.New("registration deadline passed")
	ErrAlreadyRegistered  = errors.New("already registered to event")
	ErrEndBeforeStart     = errors.New("event ends before it starts")
)

// Event entity
type Event struct {
	ID                   string    `validate:"required,uuid4"`
	Title                string    `validate:"required,min=1,max=255"`
	Description          string    `validate:"max=5000"`
	EventType            Type      `validate:"required,oneof=open_day conference webinar deadline exam interview other"`
	StartDate            time.Time `validate:"required"`
	EndDate              *time.Time
	Location             string `validate:"max=255"`
	IsOnline             bool
	MeetingURL           string `validate:"omitempty,url"`
	MaxParticipants      *int   `validate:"omitempty,gt=0"`
	CurrentParticipants  int    `validate:"gte=0"`
	OrganizerID          string `validate:"required,uuid4"`
	UniversityID         string `validate:"omitempty,uuid4"`
	FormationID          string `validate:"omitempty,uuid4"`
	IsPublic             bool
	RegistrationRequired bool
	RegistrationDeadline *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate for validating Event struct
func (e *Event) Validate() error {
	if err := validators.ValidateStruct(e); err != nil {
		return err
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// CheckRegistration returns why a new registration is refused, if it is
func (e *Event) CheckRegistration(now time.Time) error {
	if e.RegistrationDeadline != nil && e.RegistrationDeadline.Before(now) {
		return ErrRegistrationClosed
	}
	if e.MaxParticipants != nil && e.CurrentParticipants >= *e.MaxParticipants {
		return ErrEventFull
	}
	return nil
}

// Registration of a user to an event
type Registration struct {
	ID           string `validate:"required,uuid4"`
	EventID      string `validate:"required,uuid4"`
	UserID       string `validate:"required,uuid4"`
	RegisteredAt time.Time
	Status       string `validate:"required,oneof=registered cancelled attended"`
}

// Validate for validating Registration struct
func (r *Registration) Validate() error {
	return validators.ValidateStruct(r)
}

// Query filters the event listing. Results are ordered by start date.
type Query struct {
	UniversityID string `validate:"omitempty,uuid4"`
	EventType    Type   `validate:"omitempty,oneof=open_day conference webinar deadline exam interview other"`
	UpcomingOnly bool
	PublicOnly   bool
	Limit        int `validate:"omitempty,gt=0,lte=200"`
	Offset       int `validate:"omitempty,gte=0"`
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validators.ValidateStruct(q)
}
