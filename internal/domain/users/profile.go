package users

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// Profile entity, one per user
type Profile struct {
	ID                 string   `validate:"required,uuid4"`
	UserID             string   `validate:"required,uuid4"`
	FirstName          string   `validate:"max=100"`
	LastName           string   `validate:"max=100"`
	Institution        string   `validate:"max=255"`
	UserType           UserType `validate:"required,usertype"`
	Phone              string   `validate:"max=30"`
	DateOfBirth        *time.Time
	Address            string   `validate:"max=255"`
	City               string   `validate:"max=100"`
	PostalCode         string   `validate:"max=20"`
	Country            string   `validate:"max=100"`
	AvatarURL          string   `validate:"omitempty,url"`
	Bio                string   `validate:"max=2000"`
	CurrentLevel       string   `validate:"max=100"`
	Specialization     string   `validate:"max=100"`
	GradeAverage       *float64 `validate:"omitempty,grade"`
	IsActive           bool
	EmailNotifications bool
	PushNotifications  bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate for validating Profile struct
func (p *Profile) Validate() error {
	return validators.ValidateStruct(p)
}

// Summary returns the public part of the profile
func (p *Profile) Summary() *ProfileSummary {
	return &ProfileSummary{
		UserID:      p.UserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		AvatarURL:   p.AvatarURL,
		UserType:    p.UserType,
		Institution: p.Institution,
	}
}

// ProfileSummary is embedded in conversations, messages and applications
type ProfileSummary struct {
	UserID      string
	FirstName   string
	LastName    string
	AvatarURL   string
	UserType    UserType
	Institution string
}

// ProfileUpdate is a partial update; nil fields are left untouched
type ProfileUpdate struct {
	FirstName          *string    `validate:"omitempty,min=1,max=100"`
	LastName           *string    `validate:"omitempty,min=1,max=100"`
	Institution        *string    `validate:"omitempty,max=255"`
	Phone              *string    `validate:"omitempty,max=30"`
	DateOfBirth        *time.Time `validate:"omitempty"`
	Address            *string    `validate:"omitempty,max=255"`
	City               *string    `validate:"omitempty,max=100"`
	PostalCode         *string    `validate:"omitempty,max=20"`
	Country            *string    `validate:"omitempty,max=100"`
	AvatarURL          *string    `validate:"omitempty,url"`
	Bio                *string    `validate:"omitempty,max=2000"`
	CurrentLevel       *string    `validate:"omitempty,max=100"`
	Specialization     *string    `validate:"omitempty,max=100"`
	GradeAverage       *float64   `validate:"omitempty,grade"`
	EmailNotifications *bool
	PushNotifications  *bool
}

// Validate for validating ProfileUpdate struct
func (u *ProfileUpdate) Validate() error {
	return validators.ValidateStruct(u)
}

// Apply copies the set fields of u onto p
func (u *ProfileUpdate) Apply(p *Profile) {
	setString(&p.FirstName, u.FirstName)
	setString(&p.LastName, u.LastName)
	setString(&p.Institution, u.Institution)
	setString(&p.Phone, u.Phone)
	setString(&p.Address, u.Address)
	setString(&p.City, u.City)
	setString(&p.PostalCode, u.PostalCode)
	setString(&p.Country, u.Country)
	setString(&p.AvatarURL, u.AvatarURL)
	setString(&p.Bio, u.Bio)
	setString(&p.CurrentLevel, u.CurrentLevel)
	setString(&p.Specialization, u.Specialization)
	if u.DateOfBirth != nil {
		p.DateOfBirth = u.DateOfBirth
	}
	if u.GradeAverage != nil {
		p.GradeAverage = u.GradeAverage
	}
	if u.EmailNotifications != nil {
		p.EmailNotifications = *u.EmailNotifications
	}
	if u.PushNotifications != nil {
		p.PushNotifications = *u.PushNotifications
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
