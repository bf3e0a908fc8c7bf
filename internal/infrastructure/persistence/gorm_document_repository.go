package persistence

import (
	"context"
	"fmt"

	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence/models"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDocumentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository implementation
func NewGormDocumentRepository(db *gorm.DB, logger logger.Logger) (documents.DocumentRepository, error) {
	return &gormDocumentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDocumentRepository) Create(ctx context.Context, document *documents.Document) error {
	if err := document.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.DocumentModel{}
	model.FromDomain(document)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapWriteError(err, "create", "document")
	}

	r.logger.Info("Created document metadata with id ", document.ID)
	return nil
}

func (r *gormDocumentRepository) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	var model models.DocumentModel
	if err := r.db.WithContext(ctx).Where("id = ?", documentID).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "document", documentID)
	}
	return model.ToDomain(), nil
}

func (r *gormDocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", documentID).Delete(&models.DocumentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	r.logger.Info("Deleted document metadata with id ", documentID)
	return nil
}
