package v1

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
)

// UserResponse is the account part of a session. The password hash is never exposed.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse represents a full profile
type ProfileResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Institution        string     `json:"institution,omitempty"`
	UserType           string     `json:"user_type"`
	Phone              string     `json:"phone,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Address            string     `json:"address,omitempty"`
	City               string     `json:"city,omitempty"`
	PostalCode         string     `json:"postal_code,omitempty"`
	Country            string     `json:"country,omitempty"`
	AvatarURL          string     `json:"avatar_url,omitempty"`
	Bio                string     `json:"bio,omitempty"`
	CurrentLevel       string     `json:"current_level,omitempty"`
	Specialization     string     `json:"specialization,omitempty"`
	GradeAverage       *float64   `json:"grade_average,omitempty"`
	IsActive           bool       `json:"is_active"`
	EmailNotifications bool       `json:"email_notifications"`
	PushNotifications  bool       `json:"push_notifications"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ProfileSummaryResponse is the public part of a profile
type ProfileSummaryResponse struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	UserType    string `json:"user_type"`
	Institution string `json:"institution,omitempty"`
}

// SessionResponse is returned on sign in and session retrieval
type SessionResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresAt   time.Time        `json:"expires_at"`
	User        *UserResponse    `json:"user"`
	Profile     *ProfileResponse `json:"profile,omitempty"`
}

// SignUpResponse is returned on registration
type SignUpResponse struct {
	User    *UserResponse    `json:"user"`
	Profile *ProfileResponse `json:"profile"`
}

// UniversityResponse represents a university
type UniversityResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	City            string    `json:"city"`
	Address         string    `json:"address,omitempty"`
	Type            string    `json:"type"`
	Website         string    `json:"website,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	EstablishedYear *int      `json:"established_year,omitempty"`
	StudentCount    int       `json:"student_count"`
	Rating          float64   `json:"rating"`
	ImageURL        string    `json:"image_url,omitempty"`
	LogoURL         string    `json:"logo_url,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	Accreditations  []string  `json:"accreditations"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FormationResponse represents a formation, with its university when embedded
type FormationResponse struct {
	ID                  string              `json:"id"`
	UniversityID        string              `json:"university_id"`
	Name                string              `json:"name"`
	Description         string              `json:"description,omitempty"`
	Level               string              `json:"level"`
	Domain              string              `json:"domain"`
	DurationYears       int                 `json:"duration_years"`
	TotalPlaces         int                 `json:"total_places"`
	AvailablePlaces     int                 `json:"available_places"`
	Requirements        string              `json:"requirements,omitempty"`
	AdmissionCriteria   string              `json:"admission_criteria,omitempty"`
	ApplicationDeadline *time.Time          `json:"application_deadline,omitempty"`
	TuitionFee          *float64            `json:"tuition_fee,omitempty"`
	IsActive            bool                `json:"is_active"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
	University          *UniversityResponse `json:"university,omitempty"`
}

// FilterOptionsResponse lists the values accepted by the formation filters
type FilterOptionsResponse struct {
	Domains []string `json:"domains"`
	Levels  []string `json:"levels"`
	Cities  []string `json:"cities"`
}

// ApplicationResponse represents an application
type ApplicationResponse struct {
	ID                  string                  `json:"id"`
	StudentID           string                  `json:"student_id"`
	FormationID         string                  `json:"formation_id"`
	Status              string                  `json:"status"`
	MotivationLetter    string                  `json:"motivation_letter"`
	AdditionalDocuments []string                `json:"additional_documents"`
	GradeAverage        *float64                `json:"grade_average,omitempty"`
	Priority            int                     `json:"priority"`
	SubmittedAt         *time.Time              `json:"submitted_at,omitempty"`
	ReviewedAt          *time.Time              `json:"reviewed_at,omitempty"`
	ReviewerID          *string                 `json:"reviewer_id,omitempty"`
	ReviewNotes         string                  `json:"review_notes,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
	Formation           *FormationResponse      `json:"formation,omitempty"`
	Student             *ProfileSummaryResponse `json:"student,omitempty"`
}

// StatsResponse counts applications per status
type StatsResponse struct {
	Total       int64 `json:"total"`
	Draft       int64 `json:"draft"`
	Submitted   int64 `json:"submitted"`
	UnderReview int64 `json:"under_review"`
	Accepted    int64 `json:"accepted"`
	Rejected    int64 `json:"rejected"`
	Waitlisted  int64 `json:"waitlisted"`
}

// EligibilityResponse tells whether a student may apply
type EligibilityResponse struct {
	CanApply bool   `json:"can_apply"`
	Reason   string `json:"reason,omitempty"`
}

// DocumentResponse represents stored document metadata
type DocumentResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	ApplicationID string    `json:"application_id,omitempty"`
	Name          string    `json:"name"`
	Size          int64     `json:"size"`
	ContentType   string    `json:"content_type"`
	CreatedAt     time.Time `json:"created_at"`
}

// ParticipantResponse represents a conversation member
type ParticipantResponse struct {
	ID             string                  `json:"id"`
	ConversationID string                  `json:"conversation_id"`
	UserID         string                  `json:"user_id"`
	JoinedAt       time.Time               `json:"joined_at"`
	LastReadAt     *time.Time              `json:"last_read_at,omitempty"`
	User           *ProfileSummaryResponse `json:"user,omitempty"`
}

// MessageResponse represents a message
type MessageResponse struct {
	ID             string                  `json:"id"`
	ConversationID string                  `json:"conversation_id"`
	SenderID       string                  `json:"sender_id"`
	Content        string                  `json:"content"`
	MessageType    string                  `json:"message_type"`
	Attachments    []string                `json:"attachments"`
	Status         string                  `json:"status"`
	ReplyTo        *string                 `json:"reply_to,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	Sender         *ProfileSummaryResponse `json:"sender,omitempty"`
}

// ConversationResponse represents a conversation with its participants
type ConversationResponse struct {
	ID           string                `json:"id"`
	Title        *string               `json:"title,omitempty"`
	IsGroup      bool                  `json:"is_group"`
	CreatedBy    string                `json:"created_by"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Participants []ParticipantResponse `json:"participants"`
	LastMessage  *MessageResponse      `json:"last_message,omitempty"`
	UnreadCount  int64                 `json:"unread_count"`
}

// NotificationResponse represents a notification
type NotificationResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Priority  string     `json:"priority"`
	IsRead    bool       `json:"is_read"`
	ActionURL string     `json:"action_url,omitempty"`
	RelatedID string     `json:"related_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

// EventResponse represents an event
type EventResponse struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	EventType            string     `json:"event_type"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	Location             string     `json:"location,omitempty"`
	IsOnline             bool       `json:"is_online"`
	MeetingURL           string     `json:"meeting_url,omitempty"`
	MaxParticipants      *int       `json:"max_participants,omitempty"`
	CurrentParticipants  int        `json:"current_participants"`
	OrganizerID          string     `json:"organizer_id"`
	UniversityID         string     `json:"university_id,omitempty"`
	FormationID          string     `json:"formation_id,omitempty"`
	IsPublic             bool       `json:"is_public"`
	RegistrationRequired bool       `json:"registration_required"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// RegistrationResponse represents an event registration
type RegistrationResponse struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`
	Status       string    `json:"status"`
}

// CountResponse carries a count, e.g. unread notifications or rows changed
type CountResponse struct {
	Count int64 `json:"count"`
}

// MarkReadResponse tells whether a notification changed state
type MarkReadResponse struct {
	Updated bool `json:"updated"`
}

func toUserResponse(u *users.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toProfileResponse(p *users.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Institution:        p.Institution,
		UserType:           string(p.UserType),
		Phone:              p.Phone,
		DateOfBirth:        p.DateOfBirth,
		Address:            p.Address,
		City:               p.City,
		PostalCode:         p.PostalCode,
		Country:            p.Country,
		AvatarURL:          p.AvatarURL,
		Bio:                p.Bio,
		CurrentLevel:       p.CurrentLevel,
		Specialization:     p.Specialization,
		GradeAverage:       p.GradeAverage,
		IsActive:           p.IsActive,
		EmailNotifications: p.EmailNotifications,
		PushNotifications:  p.PushNotifications,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toProfileSummaryResponse(s *users.ProfileSummary) *ProfileSummaryResponse {
	if s == nil {
		return nil
	}
	return &ProfileSummaryResponse{
		UserID:      s.UserID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		AvatarURL:   s.AvatarURL,
		UserType:    string(s.UserType),
		Institution: s.Institution,
	}
}

func toSessionResponse(s *users.Session) SessionResponse {
	return SessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   s.TokenType,
		ExpiresAt:   s.ExpiresAt,
		User:        toUserResponse(s.User),
		Profile:     toProfileResponse(s.Profile),
	}
}

func toUniversityResponse(u *universities.University) *UniversityResponse {
	if u == nil {
		return nil
	}
	accreditations := u.Accreditations
	if accreditations == nil {
		accreditations = []string{}
	}
	return &UniversityResponse{
		ID:              u.ID,
		Name:            u.Name,
		Description:     u.Description,
		City:            u.City,
		Address:         u.Address,
		Type:            u.Type,
		Website:         u.Website,
		Email:           u.Email,
		Phone:           u.Phone,
		EstablishedYear: u.EstablishedYear,
		StudentCount:    u.StudentCount,
		Rating:          u.Rating,
		ImageURL:        u.ImageURL,
		LogoURL:         u.LogoURL,
		Latitude:        u.Latitude,
		Longitude:       u.Longitude,
		Accreditations:  accreditations,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func toFormationResponse(f *universities.Formation) *FormationResponse {
	if f == nil {
		return nil
	}
	return &FormationResponse{
		ID:                  f.ID,
		UniversityID:        f.UniversityID,
		Name:                f.Name,
		Description:         f.Description,
		Level:               f.Level,
		Domain:              f.Domain,
		DurationYears:       f.DurationYears,
		TotalPlaces:         f.TotalPlaces,
		AvailablePlaces:     f.AvailablePlaces,
		Requirements:        f.Requirements,
		AdmissionCriteria:   f.AdmissionCriteria,
		ApplicationDeadline: f.ApplicationDeadline,
		TuitionFee:          f.TuitionFee,
		IsActive:            f.IsActive,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
		University:          toUniversityResponse(f.University),
	}
}

func toApplicationResponse(a *applications.Application) *ApplicationResponse {
	documentIDs := a.AdditionalDocuments
	if documentIDs == nil {
		documentIDs = []string{}
	}
	return &ApplicationResponse{
		ID:                  a.ID,
		StudentID:           a.StudentID,
		FormationID:         a.FormationID,
		Status:              string(a.Status),
		MotivationLetter:    a.MotivationLetter,
		AdditionalDocuments: documentIDs,
		GradeAverage:        a.GradeAverage,
		Priority:            a.Priority,
		SubmittedAt:         a.SubmittedAt,
		ReviewedAt:          a.ReviewedAt,
		ReviewerID:          a.ReviewerID,
		ReviewNotes:         a.ReviewNotes,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
		Formation:           toFormationResponse(a.Formation),
		Student:             toProfileSummaryResponse(a.Student),
	}
}

func toStatsResponse(s *applications.Stats) StatsResponse {
	return StatsResponse{
		Total:       s.Total,
		Draft:       s.Draft,
		Submitted:   s.Submitted,
		UnderReview: s.UnderReview,
		Accepted:    s.Accepted,
		Rejected:    s.Rejected,
		Waitlisted:  s.Waitlisted,
	}
}

func toDocumentResponse(d *documents.Document) DocumentResponse {
	return DocumentResponse{
		ID:            d.ID,
		OwnerID:       d.OwnerID,
		ApplicationID: d.ApplicationID,
		Name:          d.Name,
		Size:          d.Size,
		ContentType:   d.ContentType,
		CreatedAt:     d.CreatedAt,
	}
}

func toMessageResponse(m *messaging.Message) *MessageResponse {
	if m == nil {
		return nil
	}
	attachments := m.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		MessageType:    m.MessageType,
		Attachments:    attachments,
		Status:         string(m.Status),
		ReplyTo:        m.ReplyTo,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Sender:         toProfileSummaryResponse(m.Sender),
	}
}

func toConversationResponse(c *messaging.Conversation) *ConversationResponse {
	participants := make([]ParticipantResponse, 0, len(c.Participants))
	for _, p := range c.Participants {
		participants = append(participants, ParticipantResponse{
			ID:             p.ID,
			ConversationID: p.ConversationID,
			UserID:         p.UserID,
			JoinedAt:       p.JoinedAt,
			LastReadAt:     p.LastReadAt,
			User:           toProfileSummaryResponse(p.User),
		})
	}
	return &ConversationResponse{
		ID:           c.ID,
		Title:        c.Title,
		IsGroup:      c.IsGroup,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Participants: participants,
		LastMessage:  toMessageResponse(c.LastMessage),
		UnreadCount:  c.UnreadCount,
	}
}

func toNotificationResponse(n *notifications.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Priority:  string(n.Priority),
		IsRead:    n.IsRead,
		ActionURL: n.ActionURL,
		RelatedID: n.RelatedID,
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
	}
}

func toEventResponse(e *events.Event) *EventResponse {
	return &EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		EventType:            string(e.EventType),
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		Location:             e.Location,
		IsOnline:             e.IsOnline,
		MeetingURL:           e.MeetingURL,
		MaxParticipants:      e.MaxParticipants,
		CurrentParticipants:  e.CurrentParticipants,
		OrganizerID:          e.OrganizerID,
		UniversityID:         e.UniversityID,
		FormationID:          e.FormationID,
		IsPublic:             e.IsPublic,
		RegistrationRequired: e.RegistrationRequired,
		RegistrationDeadline: e.RegistrationDeadline,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func toRegistrationResponse(r *events.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		UserID:       r.UserID,
		RegisteredAt: r.RegisteredAt,
		Status:       r.Status,
	}
}

// mapList converts every element of items with convert, never returning nil
func mapList[T any, R any](items []T, convert func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}
