package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/google/uuid"
)

// MaxDocumentSize is the largest accepted upload, in bytes
const MaxDocumentSize = 10 << 20

// documentService implements the DocumentService interface
type documentService struct {
	connector       documents.DocumentConnector
	documentRepo    documents.DocumentRepository
	applicationRepo applications.ApplicationRepository
	profileRepo     users.ProfileRepository
	logger          logger.Logger
}

// NewDocumentService creates a new instance of DocumentService
func NewDocumentService(
	connector documents.DocumentConnector,
	documentRepo documents.DocumentRepository,
	applicationRepo applications.ApplicationRepository,
	profileRepo users.ProfileRepository,
	logger logger.Logger,
) (documents.DocumentService, error) {
	if connector == nil {
		return nil, ErrDocumentsDisabled
	}
	return &documentService{
		connector:       connector,
		documentRepo:    documentRepo,
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
		logger:          logger,
	}, nil
}

// Upload stores the file content and its metadata
func (s *documentService) Upload(ctx context.Context, ownerID, applicationID string, file *multipart.FileHeader) (*documents.Document, error) {
	if file == nil {
		return nil, shared.Invalid(errors.New("no file provided"))
	}
	if file.Size > MaxDocumentSize {
		return nil, shared.Invalid(fmt.Errorf("file exceeds %d bytes", MaxDocumentSize))
	}

	if applicationID != "" {
		application, err := s.applicationRepo.GetByID(ctx, applicationID)
		if err != nil {
			return nil, err
		}
		if application.StudentID != ownerID {
			return nil, shared.Forbidden("application belongs to another student")
		}
	}

	data, err := readFile(file)
	if err != nil {
		return nil, err
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	document := &documents.Document{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		ApplicationID: applicationID,
		Name:          filepath.Base(file.Filename),
		Size:          int64(len(data)),
		ContentType:   contentType,
		CreatedAt:     time.Now().UTC(),
	}
	if err := document.Validate(); err != nil {
		return nil, shared.Invalid(err)
	}

	if err := s.connector.Upload(ctx, data, document.BlobName()); err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}
	if err := s.documentRepo.Create(ctx, document); err != nil {
		if delErr := s.connector.Delete(ctx, document.BlobName()); delErr != nil {
			s.logger.Error("Failed to remove orphan blob ", document.BlobName(), ": ", delErr)
		}
		return nil, err
	}

	s.logger.Info("Uploaded document with id ", document.ID, " (", document.Size, " bytes)")
	return document, nil
}

// Download returns the document and its content to its owner, or to a reviewer
// when the document is attached to a submitted application.
func (s *documentService) Download(ctx context.Context, documentID, requesterID string) (*documents.Document, []byte, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}

	if document.OwnerID != requesterID {
		if err := s.checkReviewerAccess(ctx, document, requesterID); err != nil {
			return nil, nil, err
		}
	}

	data, err := s.connector.Download(ctx, document.BlobName())
	if err != nil {
		return nil, nil, err
	}
	return document, data, nil
}

// DeleteByID removes a document of the owner and unlinks it from its application
func (s *documentService) DeleteByID(ctx context.Context, documentID, ownerID string) error {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document.OwnerID != ownerID {
		return shared.Forbidden("document belongs to another user")
	}

	if err := s.connector.Delete(ctx, document.BlobName()); err != nil && !errors.Is(err, shared.ErrNotFound) {
		return fmt.Errorf("failed to delete document content: %w", err)
	}
	if err := s.documentRepo.DeleteByID(ctx, documentID); err != nil {
		return err
	}

	if document.ApplicationID != "" {
		if err := s.unlink(ctx, document); err != nil {
			return err
		}
	}

	s.logger.Info("Deleted document with id ", documentID)
	return nil
}

func (s *documentService) checkReviewerAccess(ctx context.Context, document *documents.Document, requesterID string) error {
	profile, err := s.profileRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		return err
	}
	if !profile.UserType.IsReviewer() {
		return shared.Forbidden("document belongs to another user")
	}

	if document.ApplicationID == "" {
		return shared.NotFound("document", document.ID)
	}
	application, err := s.applicationRepo.GetByID(ctx, document.ApplicationID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("document", document.ID)
		}
		return err
	}
	if application.Status == applications.StatusDraft {
		return shared.NotFound("document", document.ID)
	}
	return nil
}

func (s *documentService) unlink(ctx context.Context, document *documents.Document) error {
	application, err := s.applicationRepo.GetByID(ctx, document.ApplicationID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	kept := make([]string, 0, len(application.AdditionalDocuments))
	for _, id := range application.AdditionalDocuments {
		if id != document.ID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(application.AdditionalDocuments) {
		return nil
	}

	application.AdditionalDocuments = kept
	application.UpdatedAt = time.Now().UTC()
	return s.applicationRepo.UpdateByID(ctx, application)
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", file.Filename, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(f, MaxDocumentSize+1)); err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", file.Filename, err)
	}
	if buf.Len() > MaxDocumentSize {
		return nil, shared.Invalid(fmt.Errorf("file exceeds %d bytes", MaxDocumentSize))
	}
	return buf.Bytes(), nil
}
