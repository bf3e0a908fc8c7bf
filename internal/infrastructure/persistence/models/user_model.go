package models

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/users"
)

// UserModel is the GORM model of the users table
type UserModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// ProfileModel is the GORM model of the profiles table
type ProfileModel struct {
	ID                 string `gorm:"primaryKey;type:varchar(36)"`
	UserID             string `gorm:"not null;uniqueIndex;type:varchar(36)"`
	FirstName          string `gorm:"type:varchar(100)"`
	LastName           string `gorm:"type:varchar(100)"`
	Institution        string `gorm:"type:varchar(255)"`
	UserType           string `gorm:"not null;index;type:varchar(20)"`
	Phone              string `gorm:"type:varchar(30)"`
	DateOfBirth        *time.Time
	Address            string `gorm:"type:varchar(255)"`
	City               string `gorm:"type:varchar(100)"`
	PostalCode         string `gorm:"type:varchar(20)"`
	Country            string `gorm:"type:varchar(100)"`
	AvatarURL          string `gorm:"type:varchar(500)"`
	Bio                string `gorm:"type:text"`
	CurrentLevel       string `gorm:"type:varchar(100)"`
	Specialization     string `gorm:"type:varchar(100)"`
	GradeAverage       *float64
	IsActive           bool
	EmailNotifications bool
	PushNotifications  bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts GORM model to domain entity
func (m *ProfileModel) ToDomain() *users.Profile {
	return &users.Profile{
		ID:                 m.ID,
		UserID:             m.UserID,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Institution:        m.Institution,
		UserType:           users.UserType(m.UserType),
		Phone:              m.Phone,
		DateOfBirth:        m.DateOfBirth,
		Address:            m.Address,
		City:               m.City,
		PostalCode:         m.PostalCode,
		Country:            m.Country,
		AvatarURL:          m.AvatarURL,
		Bio:                m.Bio,
		CurrentLevel:       m.CurrentLevel,
		Specialization:     m.Specialization,
		GradeAverage:       m.GradeAverage,
		IsActive:           m.IsActive,
		EmailNotifications: m.EmailNotifications,
		PushNotifications:  m.PushNotifications,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProfileModel) FromDomain(p *users.Profile) {
	m.ID = p.ID
	m.UserID = p.UserID
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Institution = p.Institution
	m.UserType = string(p.UserType)
	m.Phone = p.Phone
	m.DateOfBirth = p.DateOfBirth
	m.Address = p.Address
	m.City = p.City
	m.PostalCode = p.PostalCode
	m.Country = p.Country
	m.AvatarURL = p.AvatarURL
	m.Bio = p.Bio
	m.CurrentLevel = p.CurrentLevel
	m.Specialization = p.Specialization
	m.GradeAverage = p.GradeAverage
	m.IsActive = p.IsActive
	m.EmailNotifications = p.EmailNotifications
	m.PushNotifications = p.PushNotifications
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// Summary builds the public summary of the profile
func (m *ProfileModel) Summary() *users.ProfileSummary {
	return &users.ProfileSummary{
		UserID:      m.UserID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		AvatarURL:   m.AvatarURL,
		UserType:    users.UserType(m.UserType),
		Institution: m.Institution,
	}
}

// RevokedTokenModel keeps the ids of signed out tokens until they expire
type RevokedTokenModel struct {
	TokenID   string    `gorm:"primaryKey;type:varchar(64)"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
