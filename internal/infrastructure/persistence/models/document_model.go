package models

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
)

// DocumentModel is the GORM model of the documents table
type DocumentModel struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	OwnerID       string    `gorm:"not null;index;type:varchar(36)"`
	ApplicationID *string   `gorm:"index;type:varchar(36)"`
	Name          string    `gorm:"not null;type:varchar(255)"`
	Size          int64     `gorm:"not null"`
	ContentType   string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts GORM model to domain entity
func (m *DocumentModel) ToDomain() *documents.Document {
	return &documents.Document{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		ApplicationID: deref(m.ApplicationID),
		Name:          m.Name,
		Size:          m.Size,
		ContentType:   m.ContentType,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DocumentModel) FromDomain(d *documents.Document) {
	m.ID = d.ID
	m.OwnerID = d.OwnerID
	m.ApplicationID = nullable(d.ApplicationID)
	m.Name = d.Name
	m.Size = d.Size
	m.ContentType = d.ContentType
	m.CreatedAt = d.CreatedAt
}
