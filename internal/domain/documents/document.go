package documents

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/pkg/validators"
)

// Document entity, metadata of a stored supporting file
type Document struct {
	ID            string `validate:"required,uuid4"`
	OwnerID       string `validate:"required,uuid4"`
	ApplicationID string `validate:"omitempty,uuid4"`
	Name          string `validate:"required,min=1,max=255"`
	Size          int64  `validate:"gte=0"`
	ContentType   string `validate:"max=255"`
	CreatedAt     time.Time
}

// Validate for validating Document struct
func (d *Document) Validate() error {
	return validators.ValidateStruct(d)
}

// BlobName is the object name of the document content
func (d *Document) BlobName() string {
	return d.ID + "/" + d.Name
}

// DocumentService stores and serves supporting documents.
type DocumentService interface {
	Upload(ctx context.Context, ownerID, applicationID string, file *multipart.FileHeader) (*Document, error)
	// Download returns metadata and content. Owners and reviewers may download.
	Download(ctx context.Context, documentID, requesterID string) (*Document, []byte, error)
	DeleteByID(ctx context.Context, documentID, ownerID string) error
}

// DocumentRepository defines the interface for Document-related operations
type DocumentRepository interface {
	Create(ctx context.Context, document *Document) error
	GetByID(ctx context.Context, documentID string) (*Document, error)
	DeleteByID(ctx context.Context, documentID string) error
}

// DocumentConnector stores document content in an object store.
type DocumentConnector interface {
	Upload(ctx context.Context, data []byte, blobName string) error
	Download(ctx context.Context, blobName string) ([]byte, error)
	Delete(ctx context.Context, blobName string) error
}
