package models

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
)

// ApplicationModel is the GORM model of the applications table
type ApplicationModel struct {
	ID                  string   `gorm:"primaryKey;type:varchar(36)"`
	StudentID           string   `gorm:"not null;uniqueIndex:idx_applications_student_formation;type:varchar(36)"`
	FormationID         string   `gorm:"not null;uniqueIndex:idx_applications_student_formation;index;type:varchar(36)"`
	Status              string   `gorm:"not null;index;type:varchar(20)"`
	MotivationLetter    string   `gorm:"type:text"`
	AdditionalDocuments []string `gorm:"serializer:json"`
	GradeAverage        *float64
	Priority            int `gorm:"not null"`
	SubmittedAt         *time.Time
	ReviewedAt          *time.Time
	ReviewerID          *string `gorm:"type:varchar(36)"`
	ReviewNotes         string  `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Formation *FormationModel `gorm:"foreignKey:FormationID"`
}

// TableName specifies the table name for GORM
func (ApplicationModel) TableName() string {
	return "applications"
}

// ToDomain converts GORM model to domain entity
func (m *ApplicationModel) ToDomain() *applications.Application {
	a := &applications.Application{
		ID:                  m.ID,
		StudentID:           m.StudentID,
		FormationID:         m.FormationID,
		Status:              applications.Status(m.Status),
		MotivationLetter:    m.MotivationLetter,
		AdditionalDocuments: m.AdditionalDocuments,
		GradeAverage:        m.GradeAverage,
		Priority:            m.Priority,
		SubmittedAt:         m.SubmittedAt,
		ReviewedAt:          m.ReviewedAt,
		ReviewerID:          m.ReviewerID,
		ReviewNotes:         m.ReviewNotes,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.Formation != nil {
		a.Formation = m.Formation.ToDomain()
	}
	return a
}

// FromDomain converts domain entity to GORM model. Embedded rows are not copied.
func (m *ApplicationModel) FromDomain(a *applications.Application) {
	m.ID = a.ID
	m.StudentID = a.StudentID
	m.FormationID = a.FormationID
	m.Status = string(a.Status)
	m.MotivationLetter = a.MotivationLetter
	m.AdditionalDocuments = a.AdditionalDocuments
	m.GradeAverage = a.GradeAverage
	m.Priority = a.Priority
	m.SubmittedAt = a.SubmittedAt
	m.ReviewedAt = a.ReviewedAt
	m.ReviewerID = a.ReviewerID
	m.ReviewNotes = a.ReviewNotes
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}
