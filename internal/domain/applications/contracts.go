package applications

import (
	"context"
	"mime/multipart"

	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
)

// ApplicationService covers the candidature lifecycle.
type ApplicationService interface {
	ListByStudent(ctx context.Context, studentID string) ([]*Application, error)
	// ListByFormation excludes drafts.
	ListByFormation(ctx context.Context, formationID string) ([]*Application, error)
	GetByID(ctx context.Context, applicationID string) (*Application, error)
	Create(ctx context.Context, studentID string, input CreateInput) (*Application, error)
	Update(ctx context.Context, applicationID, studentID string, input UpdateInput) (*Application, error)
	Submit(ctx context.Context, applicationID, studentID string) (*Application, error)
	UpdateStatus(ctx context.Context, applicationID, reviewerID string, status Status, notes string) (*Application, error)
	DeleteByID(ctx context.Context, applicationID, studentID string) error
	StudentStats(ctx context.Context, studentID string) (*Stats, error)
	FormationStats(ctx context.Context, formationID string) (*Stats, error)
	CanApply(ctx context.Context, studentID, formationID string) (*Eligibility, error)
	AttachDocument(ctx context.Context, applicationID, studentID string, file *multipart.FileHeader) (*documents.Document, error)
}

// ApplicationRepository defines the interface for Application-related operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	// ListByStudent embeds formation and university, newest first.
	ListByStudent(ctx context.Context, studentID string) ([]*Application, error)
	// ListByFormation embeds nothing; drafts are excluded.
	ListByFormation(ctx context.Context, formationID string) ([]*Application, error)
	GetByID(ctx context.Context, applicationID string) (*Application, error)
	Exists(ctx context.Context, studentID, formationID string) (bool, error)
	UpdateByID(ctx context.Context, application *Application) error
	DeleteByID(ctx context.Context, applicationID string) error
	CountByStatus(ctx context.Context, studentID, formationID string) (map[Status]int64, error)
}
