package models

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
)

// UniversityModel is the GORM model of the universities table
type UniversityModel struct {
	ID              string `gorm:"primaryKey;type:varchar(36)"`
	Name            string `gorm:"not null;index;type:varchar(255)"`
	Description     string `gorm:"type:text"`
	City            string `gorm:"not null;index;type:varchar(100)"`
	Address         string `gorm:"type:varchar(255)"`
	Type            string `gorm:"not null;type:varchar(20)"`
	Website         string `gorm:"type:varchar(500)"`
	Email           string `gorm:"type:varchar(255)"`
	Phone           string `gorm:"type:varchar(30)"`
	EstablishedYear *int
	StudentCount    int
	Rating          float64
	ImageURL        string `gorm:"type:varchar(500)"`
	LogoURL         string `gorm:"type:varchar(500)"`
	Latitude        *float64
	Longitude       *float64
	Accreditations  []string `gorm:"serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (UniversityModel) TableName() string {
	return "universities"
}

// ToDomain converts GORM model to domain entity
func (m *UniversityModel) ToDomain() *universities.University {
	return &universities.University{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		City:            m.City,
		Address:         m.Address,
		Type:            m.Type,
		Website:         m.Website,
		Email:           m.Email,
		Phone:           m.Phone,
		EstablishedYear: m.EstablishedYear,
		StudentCount:    m.StudentCount,
		Rating:          m.Rating,
		ImageURL:        m.ImageURL,
		LogoURL:         m.LogoURL,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		Accreditations:  m.Accreditations,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UniversityModel) FromDomain(u *universities.University) {
	m.ID = u.ID
	m.Name = u.Name
	m.Description = u.Description
	m.City = u.City
	m.Address = u.Address
	m.Type = u.Type
	m.Website = u.Website
	m.Email = u.Email
	m.Phone = u.Phone
	m.EstablishedYear = u.EstablishedYear
	m.StudentCount = u.StudentCount
	m.Rating = u.Rating
	m.ImageURL = u.ImageURL
	m.LogoURL = u.LogoURL
	m.Latitude = u.Latitude
	m.Longitude = u.Longitude
	m.Accreditations = u.Accreditations
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// FormationModel is the GORM model of the formations table
type FormationModel struct {
	ID                  string `gorm:"primaryKey;type:varchar(36)"`
	UniversityID        string `gorm:"not null;index;type:varchar(36)"`
	Name                string `gorm:"not null;type:varchar(255)"`
	Description         string `gorm:"type:text"`
	Level               string `gorm:"not null;index;type:varchar(100)"`
	Domain              string `gorm:"not null;index;type:varchar(100)"`
	DurationYears       int
	TotalPlaces         int
	AvailablePlaces     int
	Requirements        string `gorm:"type:text"`
	AdmissionCriteria   string `gorm:"type:text"`
	ApplicationDeadline *time.Time
	TuitionFee          *float64
	IsActive            bool `gorm:"index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	University *UniversityModel `gorm:"foreignKey:UniversityID"`
}

// TableName specifies the table name for GORM
func (FormationModel) TableName() string {
	return "formations"
}

// ToDomain converts GORM model to domain entity
func (m *FormationModel) ToDomain() *universities.Formation {
	f := &universities.Formation{
		ID:                  m.ID,
		UniversityID:        m.UniversityID,
		Name:                m.Name,
		Description:         m.Description,
		Level:               m.Level,
		Domain:              m.Domain,
		DurationYears:       m.DurationYears,
		TotalPlaces:         m.TotalPlaces,
		AvailablePlaces:     m.AvailablePlaces,
		Requirements:        m.Requirements,
		AdmissionCriteria:   m.AdmissionCriteria,
		ApplicationDeadline: m.ApplicationDeadline,
		TuitionFee:          m.TuitionFee,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.University != nil {
		f.University = m.University.ToDomain()
	}
	return f
}

// FromDomain converts domain entity to GORM model. The university is not copied.
func (m *FormationModel) FromDomain(f *universities.Formation) {
	m.ID = f.ID
	m.UniversityID = f.UniversityID
	m.Name = f.Name
	m.Description = f.Description
	m.Level = f.Level
	m.Domain = f.Domain
	m.DurationYears = f.DurationYears
	m.TotalPlaces = f.TotalPlaces
	m.AvailablePlaces = f.AvailablePlaces
	m.Requirements = f.Requirements
	m.AdmissionCriteria = f.AdmissionCriteria
	m.ApplicationDeadline = f.ApplicationDeadline
	m.TuitionFee = f.TuitionFee
	m.IsActive = f.IsActive
	m.CreatedAt = f.CreatedAt
	m.UpdatedAt = f.UpdatedAt
}
