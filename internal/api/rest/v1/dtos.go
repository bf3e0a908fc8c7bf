package v1

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// SignUpRequest represents the registration form
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	UserType    string `json:"user_type" validate:"required,oneof=lyceen universite"`
	Institution string `json:"institution" validate:"omitempty,max=255"`
}

// Validate for validating SignUpRequest struct
func (r *SignUpRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToInput converts the request into the sign up input
func (r *SignUpRequest) ToInput() users.SignUpInput {
	return users.SignUpInput{
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		UserType:    users.UserType(r.UserType),
		Institution: r.Institution,
	}
}

// SignInRequest represents the sign in form
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating SignInRequest struct
func (r *SignInRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// UpdatePasswordRequest changes the password of the signed in user
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Validate for validating UpdatePasswordRequest struct
func (r *UpdatePasswordRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// PasswordResetRequest asks for a reset link
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Validate for validating PasswordResetRequest struct
func (r *PasswordResetRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// PasswordResetConfirmRequest sets a new password with a reset token
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// Validate for validating PasswordResetConfirmRequest struct
func (r *PasswordResetConfirmRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// UpdateProfileRequest is a partial profile update; absent fields are left untouched
type UpdateProfileRequest struct {
	FirstName          *string    `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName           *string    `json:"last_name" validate:"omitempty,min=1,max=100"`
	Institution        *string    `json:"institution" validate:"omitempty,max=255"`
	Phone              *string    `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth        *time.Time `json:"date_of_birth"`
	Address            *string    `json:"address" validate:"omitempty,max=255"`
	City               *string    `json:"city" validate:"omitempty,max=100"`
	PostalCode         *string    `json:"postal_code" validate:"omitempty,max=20"`
	Country            *string    `json:"country" validate:"omitempty,max=100"`
	AvatarURL          *string    `json:"avatar_url" validate:"omitempty,url"`
	Bio                *string    `json:"bio" validate:"omitempty,max=2000"`
	CurrentLevel       *string    `json:"current_level" validate:"omitempty,max=100"`
	Specialization     *string    `json:"specialization" validate:"omitempty,max=100"`
	GradeAverage       *float64   `json:"grade_average" validate:"omitempty,grade"`
	EmailNotifications *bool      `json:"email_notifications"`
	PushNotifications  *bool      `json:"push_notifications"`
}

// Validate for validating UpdateProfileRequest struct
func (r *UpdateProfileRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToUpdate converts the request into a profile update
func (r *UpdateProfileRequest) ToUpdate() users.ProfileUpdate {
	return users.ProfileUpdate{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Institution:        r.Institution,
		Phone:              r.Phone,
		DateOfBirth:        r.DateOfBirth,
		Address:            r.Address,
		City:               r.City,
		PostalCode:         r.PostalCode,
		Country:            r.Country,
		AvatarURL:          r.AvatarURL,
		Bio:                r.Bio,
		CurrentLevel:       r.CurrentLevel,
		Specialization:     r.Specialization,
		GradeAverage:       r.GradeAverage,
		EmailNotifications: r.EmailNotifications,
		PushNotifications:  r.PushNotifications,
	}
}

// UniversityRequest represents a new university
type UniversityRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=255"`
	Description     string   `json:"description" validate:"max=5000"`
	City            string   `json:"city" validate:"required,max=100"`
	Address         string   `json:"address" validate:"max=255"`
	Type            string   `json:"type" validate:"required,oneof=Public Privé"`
	Website         string   `json:"website" validate:"omitempty,url"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone" validate:"max=30"`
	EstablishedYear *int     `json:"established_year" validate:"omitempty,gte=800,lte=2100"`
	StudentCount    int      `json:"student_count" validate:"gte=0"`
	Rating          float64  `json:"rating" validate:"gte=0,lte=5"`
	ImageURL        string   `json:"image_url" validate:"omitempty,url"`
	LogoURL         string   `json:"logo_url" validate:"omitempty,url"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,longitude"`
	Accreditations  []string `json:"accreditations"`
}

// Validate for validating UniversityRequest struct
func (r *UniversityRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into a university
func (r *UniversityRequest) ToDomain() *universities.University {
	return &universities.University{
		Name:            r.Name,
		Description:     r.Description,
		City:            r.City,
		Address:         r.Address,
		Type:            r.Type,
		Website:         r.Website,
		Email:           r.Email,
		Phone:           r.Phone,
		EstablishedYear: r.EstablishedYear,
		StudentCount:    r.StudentCount,
		Rating:          r.Rating,
		ImageURL:        r.ImageURL,
		LogoURL:         r.LogoURL,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		Accreditations:  r.Accreditations,
	}
}

// UpdateUniversityRequest is a partial university update
type UpdateUniversityRequest struct {
	Name            *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string   `json:"description" validate:"omitempty,max=5000"`
	City            *string   `json:"city" validate:"omitempty,min=1,max=100"`
	Address         *string   `json:"address" validate:"omitempty,max=255"`
	Type            *string   `json:"type" validate:"omitempty,oneof=Public Privé"`
	Website         *string   `json:"website" validate:"omitempty,url"`
	Email           *string   `json:"email" validate:"omitempty,email"`
	Phone           *string   `json:"phone" validate:"omitempty,max=30"`
	EstablishedYear *int      `json:"established_year" validate:"omitempty,gte=800,lte=2100"`
	StudentCount    *int      `json:"student_count" validate:"omitempty,gte=0"`
	Rating          *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ImageURL        *string   `json:"image_url" validate:"omitempty,url"`
	LogoURL         *string   `json:"logo_url" validate:"omitempty,url"`
	Latitude        *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64  `json:"longitude" validate:"omitempty,longitude"`
	Accreditations  *[]string `json:"accreditations"`
}

// Validate for validating UpdateUniversityRequest struct
func (r *UpdateUniversityRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToUpdate converts the request into a university update
func (r *UpdateUniversityRequest) ToUpdate() universities.UniversityUpdate {
	return universities.UniversityUpdate{
		Name:            r.Name,
		Description:     r.Description,
		City:            r.City,
		Address:         r.Address,
		Type:            r.Type,
		Website:         r.Website,
		Email:           r.Email,
		Phone:           r.Phone,
		EstablishedYear: r.EstablishedYear,
		StudentCount:    r.StudentCount,
		Rating:          r.Rating,
		ImageURL:        r.ImageURL,
		LogoURL:         r.LogoURL,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		Accreditations:  r.Accreditations,
	}
}

// FormationRequest represents a new formation
type FormationRequest struct {
	UniversityID        string     `json:"university_id" validate:"required,uuid4"`
	Name                string     `json:"name" validate:"required,min=1,max=255"`
	Description         string     `json:"description" validate:"max=5000"`
	Level               string     `json:"level" validate:"required,max=100"`
	Domain              string     `json:"domain" validate:"required,max=100"`
	DurationYears       int        `json:"duration_years" validate:"gte=0,lte=15"`
	TotalPlaces         int        `json:"total_places" validate:"gte=0"`
	AvailablePlaces     int        `json:"available_places" validate:"gte=0,ltefield=TotalPlaces"`
	Requirements        string     `json:"requirements" validate:"max=5000"`
	AdmissionCriteria   string     `json:"admission_criteria" validate:"max=5000"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	TuitionFee          *float64   `json:"tuition_fee" validate:"omitempty,gte=0"`
	IsActive            *bool      `json:"is_active"`
}

// Validate for validating FormationRequest struct
func (r *FormationRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into a formation. Formations are active unless stated otherwise.
func (r *FormationRequest) ToDomain() *universities.Formation {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &universities.Formation{
		UniversityID:        r.UniversityID,
		Name:                r.Name,
		Description:         r.Description,
		Level:               r.Level,
		Domain:              r.Domain,
		DurationYears:       r.DurationYears,
		TotalPlaces:         r.TotalPlaces,
		AvailablePlaces:     r.AvailablePlaces,
		Requirements:        r.Requirements,
		AdmissionCriteria:   r.AdmissionCriteria,
		ApplicationDeadline: r.ApplicationDeadline,
		TuitionFee:          r.TuitionFee,
		IsActive:            active,
	}
}

// UpdateFormationRequest is a partial formation update
type UpdateFormationRequest struct {
	Name                *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Description         *string    `json:"description" validate:"omitempty,max=5000"`
	Level               *string    `json:"level" validate:"omitempty,min=1,max=100"`
	Domain              *string    `json:"domain" validate:"omitempty,min=1,max=100"`
	DurationYears       *int       `json:"duration_years" validate:"omitempty,gte=0,lte=15"`
	TotalPlaces         *int       `json:"total_places" validate:"omitempty,gte=0"`
	AvailablePlaces     *int       `json:"available_places" validate:"omitempty,gte=0"`
	Requirements        *string    `json:"requirements" validate:"omitempty,max=5000"`
	AdmissionCriteria   *string    `json:"admission_criteria" validate:"omitempty,max=5000"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	TuitionFee          *float64   `json:"tuition_fee" validate:"omitempty,gte=0"`
	IsActive            *bool      `json:"is_active"`
}

// Validate for validating UpdateFormationRequest struct
func (r *UpdateFormationRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToUpdate converts the request into a formation update
func (r *UpdateFormationRequest) ToUpdate() universities.FormationUpdate {
	return universities.FormationUpdate{
		Name:                r.Name,
		Description:         r.Description,
		Level:               r.Level,
		Domain:              r.Domain,
		DurationYears:       r.DurationYears,
		TotalPlaces:         r.TotalPlaces,
		AvailablePlaces:     r.AvailablePlaces,
		Requirements:        r.Requirements,
		AdmissionCriteria:   r.AdmissionCriteria,
		ApplicationDeadline: r.ApplicationDeadline,
		TuitionFee:          r.TuitionFee,
		IsActive:            r.IsActive,
	}
}

// CreateApplicationRequest represents a new draft application
type CreateApplicationRequest struct {
	FormationID      string   `json:"formation_id" validate:"required,uuid4"`
	MotivationLetter string   `json:"motivation_letter" validate:"max=10000"`
	GradeAverage     *float64 `json:"grade_average" validate:"omitempty,grade"`
	Priority         int      `json:"priority" validate:"omitempty,gte=1"`
}

// Validate for validating CreateApplicationRequest struct
func (r *CreateApplicationRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToInput converts the request into the application input
func (r *CreateApplicationRequest) ToInput() applications.CreateInput {
	return applications.CreateInput{
		FormationID:      r.FormationID,
		MotivationLetter: r.MotivationLetter,
		GradeAverage:     r.GradeAverage,
		Priority:         r.Priority,
	}
}

// UpdateApplicationRequest edits a draft application
type UpdateApplicationRequest struct {
	MotivationLetter *string  `json:"motivation_letter" validate:"omitempty,max=10000"`
	GradeAverage     *float64 `json:"grade_average" validate:"omitempty,grade"`
	Priority         *int     `json:"priority" validate:"omitempty,gte=1"`
}

// Validate for validating UpdateApplicationRequest struct
func (r *UpdateApplicationRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToInput converts the request into the application update
func (r *UpdateApplicationRequest) ToInput() applications.UpdateInput {
	return applications.UpdateInput{
		MotivationLetter: r.MotivationLetter,
		GradeAverage:     r.GradeAverage,
		Priority:         r.Priority,
	}
}

// UpdateStatusRequest carries a reviewer decision
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=under_review accepted rejected waitlisted"`
	Notes  string `json:"notes" validate:"max=5000"`
}

// Validate for validating UpdateStatusRequest struct
func (r *UpdateStatusRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// CreateConversationRequest opens a conversation
type CreateConversationRequest struct {
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=1,dive,uuid4"`
	Title          *string  `json:"title" validate:"omitempty,max=255"`
}

// Validate for validating CreateConversationRequest struct
func (r *CreateConversationRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToInput converts the request into the conversation input
func (r *CreateConversationRequest) ToInput() messaging.CreateConversationInput {
	return messaging.CreateConversationInput{
		ParticipantIDs: r.ParticipantIDs,
		Title:          r.Title,
	}
}

// SendMessageRequest carries a new message
type SendMessageRequest struct {
	Content     string   `json:"content" validate:"required,min=1,max=10000"`
	MessageType string   `json:"message_type" validate:"omitempty,oneof=text image file system"`
	Attachments []string `json:"attachments" validate:"omitempty,dive,url"`
	ReplyTo     *string  `json:"reply_to" validate:"omitempty,uuid4"`
}

// Validate for validating SendMessageRequest struct
func (r *SendMessageRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToInput converts the request into the message input
func (r *SendMessageRequest) ToInput() messaging.SendInput {
	return messaging.SendInput{
		Content:     r.Content,
		MessageType: r.MessageType,
		Attachments: r.Attachments,
		ReplyTo:     r.ReplyTo,
	}
}

// BroadcastRequest sends one notification to every user of a type
type BroadcastRequest struct {
	UserType  string `json:"user_type" validate:"required,usertype"`
	Type      string `json:"type" validate:"omitempty,oneof=message application_update event_reminder system reminder"`
	Title     string `json:"title" validate:"required,min=1,max=255"`
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	Priority  string `json:"priority" validate:"omitempty,oneof=low medium high"`
	ActionURL string `json:"action_url" validate:"max=500"`
}

// Validate for validating BroadcastRequest struct
func (r *BroadcastRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToInput converts the request into the notification input. The type defaults to system.
func (r *BroadcastRequest) ToInput() notifications.CreateInput {
	notificationType := notifications.Type(r.Type)
	if notificationType == "" {
		notificationType = notifications.TypeSystem
	}
	return notifications.CreateInput{
		Type:      notificationType,
		Title:     r.Title,
		Message:   r.Message,
		Priority:  notifications.Priority(r.Priority),
		ActionURL: r.ActionURL,
	}
}

// EventRequest represents a new event
type EventRequest struct {
	Title                string     `json:"title" validate:"required,min=1,max=255"`
	Description          string     `json:"description" validate:"max=5000"`
	EventType            string     `json:"event_type" validate:"required,oneof=open_day conference webinar deadline exam interview other"`
	StartDate            time.Time  `json:"start_date" validate:"required"`
	EndDate              *time.Time `json:"end_date"`
	Location             string     `json:"location" validate:"max=255"`
	IsOnline             bool       `json:"is_online"`
	MeetingURL           string     `json:"meeting_url" validate:"omitempty,url"`
	MaxParticipants      *int       `json:"max_participants" validate:"omitempty,gt=0"`
	UniversityID         string     `json:"university_id" validate:"omitempty,uuid4"`
	FormationID          string     `json:"formation_id" validate:"omitempty,uuid4"`
	IsPublic             *bool      `json:"is_public"`
	RegistrationRequired bool       `json:"registration_required"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
}

// Validate for validating EventRequest struct
func (r *EventRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into an event organized by organizerID. Events are public by default.
func (r *EventRequest) ToDomain(organizerID string) *events.Event {
	public := true
	if r.IsPublic != nil {
		public = *r.IsPublic
	}
	return &events.Event{
		Title:                r.Title,
		Description:          r.Description,
		EventType:            events.Type(r.EventType),
		StartDate:            r.StartDate.UTC(),
		EndDate:              r.EndDate,
		Location:             r.Location,
		IsOnline:             r.IsOnline,
		MeetingURL:           r.MeetingURL,
		MaxParticipants:      r.MaxParticipants,
		OrganizerID:          organizerID,
		UniversityID:         r.UniversityID,
		FormationID:          r.FormationID,
		IsPublic:             public,
		RegistrationRequired: r.RegistrationRequired,
		RegistrationDeadline: r.RegistrationDeadline,
	}
}

// SendRemindersRequest triggers the reminders of an event
type SendRemindersRequest struct {
	HoursBefore int `json:"hours_before" validate:"omitempty,gt=0,lte=720"`
}

// Validate for validating SendRemindersRequest struct
func (r *SendRemindersRequest) Validate() error {
	return validators.ValidateStruct(r)
}
